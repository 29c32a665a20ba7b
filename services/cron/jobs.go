package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/response"
)

// Retention windows for enquiry housekeeping.
const (
	staleResolvedAfter = 30 * 24 * time.Hour
	purgeClosedAfter   = 180 * 24 * time.Hour
)

// CloseStaleEnquiries moves resolved enquiries with no activity for 30
// days to closed.
func (m *CronManager) CloseStaleEnquiries() {
	jobName := "close_stale_enquiries"
	start := time.Now()

	cutoff := start.Add(-staleResolvedAfter)
	result := m.db.Model(&model.Enquiry{}).
		Where("status = ? AND updated_at < ?", model.EnquiryStatusResolved, cutoff).
		Update("status", model.EnquiryStatusClosed)

	if result.Error != nil {
		m.logJobError(jobName, start, result.Error)
		return
	}

	m.logJobComplete(jobName, start,
		fmt.Sprintf("Closed %d stale enquiries", result.RowsAffected),
		map[string]interface{}{"closed": result.RowsAffected})
}

// PurgeOldEnquiries deletes closed enquiries past the retention window.
func (m *CronManager) PurgeOldEnquiries() {
	jobName := "purge_old_enquiries"
	start := time.Now()

	cutoff := start.Add(-purgeClosedAfter)
	result := m.db.
		Where("status = ? AND updated_at < ?", model.EnquiryStatusClosed, cutoff).
		Delete(&model.Enquiry{})

	if result.Error != nil {
		m.logJobError(jobName, start, result.Error)
		return
	}

	m.logJobComplete(jobName, start,
		fmt.Sprintf("Purged %d old enquiries", result.RowsAffected),
		map[string]interface{}{"purged": result.RowsAffected})
}

// WarmListCaches refreshes the default (no query) public list cache
// for the heavily read collections so the first visitor after an
// invalidation does not pay the database round-trip.
func (m *CronManager) WarmListCaches() {
	jobName := "warm_list_caches"
	start := time.Now()

	if m.cache == nil {
		m.logJobComplete(jobName, start, "Cache unavailable, skipped", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	warmed := 0

	var colleges []model.College
	var total int64
	if err := m.db.Model(&model.College{}).Count(&total).Error; err == nil {
		if err := m.db.Order("name ASC").Limit(9).Find(&colleges).Error; err == nil {
			payload := map[string]interface{}{
				"items":      colleges,
				"pagination": response.CalculatePagination(1, 9, total),
			}
			if err := m.cache.SetList(ctx, "colleges", "", payload); err == nil {
				warmed++
			}
		}
	}

	var exams []model.Exam
	if err := m.db.Model(&model.Exam{}).Count(&total).Error; err == nil {
		if err := m.db.Order("display_order ASC, name ASC").Limit(9).Find(&exams).Error; err == nil {
			payload := map[string]interface{}{
				"items":      exams,
				"pagination": response.CalculatePagination(1, 9, total),
			}
			if err := m.cache.SetList(ctx, "exams", "", payload); err == nil {
				warmed++
			}
		}
	}

	m.logJobComplete(jobName, start,
		fmt.Sprintf("Warmed %d list caches", warmed),
		map[string]interface{}{"warmed": warmed})
}

func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] %s started", jobName)
}

func (m *CronManager) logJobComplete(jobName string, start time.Time, message string, details map[string]interface{}) {
	completed := time.Now()
	entry := model.CronJobLog{
		JobName:     jobName,
		Status:      "completed",
		StartedAt:   start,
		CompletedAt: &completed,
		Duration:    int(completed.Sub(start).Milliseconds()),
		Message:     message,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.Details = datatypes.JSON(raw)
		}
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] %s: failed to record job log: %v", jobName, err)
	}
	log.Printf("[CRON] %s completed: %s", jobName, message)
}

func (m *CronManager) logJobError(jobName string, start time.Time, jobErr error) {
	completed := time.Now()
	entry := model.CronJobLog{
		JobName:     jobName,
		Status:      "failed",
		StartedAt:   start,
		CompletedAt: &completed,
		Duration:    int(completed.Sub(start).Milliseconds()),
		ErrorMsg:    jobErr.Error(),
	}
	if err := m.db.Create(&entry).Error; err != nil {
		log.Printf("[CRON] %s: failed to record job log: %v", jobName, err)
	}
	log.Printf("[CRON] %s failed: %v", jobName, jobErr)
}
