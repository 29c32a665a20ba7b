package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/globaledge/consult-api/utils/cache"
)

// CronManager manages all scheduled housekeeping jobs
type CronManager struct {
	cron  *cron.Cron
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB, redisCache *cache.RedisCache) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:  c,
		db:    db,
		cache: redisCache,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Every day at 02:00: close resolved enquiries that went quiet
	_, err := m.cron.AddFunc("0 0 2 * * *", func() {
		m.logJobStart("close_stale_enquiries")
		m.CloseStaleEnquiries()
	})
	if err != nil {
		return err
	}

	// Every day at 03:00: purge closed enquiries past the retention window
	_, err = m.cron.AddFunc("0 0 3 * * *", func() {
		m.logJobStart("purge_old_enquiries")
		m.PurgeOldEnquiries()
	})
	if err != nil {
		return err
	}

	// Every 10 minutes: warm the public collection caches
	_, err = m.cron.AddFunc("0 */10 * * * *", func() {
		m.logJobStart("warm_list_caches")
		m.WarmListCaches()
	})
	if err != nil {
		return err
	}

	return nil
}
