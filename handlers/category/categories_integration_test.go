package category

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/globaledge/consult-api/model"
)

func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run.")
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.Category{}, &model.College{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

// Deleting a category must remove only the category row. Colleges keep
// their slug reference; it simply stops resolving.
func TestDeleteCategoryLeavesCollegeReferences(t *testing.T) {
	db := openIntegrationDB(t)

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	categorySlug := "civil-engineering-" + suffix

	category := model.Category{
		Name:     "Civil Engineering " + suffix,
		Slug:     categorySlug,
		IsActive: true,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	college := model.College{
		Name:        "Delta Engineering College " + suffix,
		Slug:        "delta-engineering-college-" + suffix,
		CountrySlug: "united-kingdom",
		Exams:       pq.StringArray{"ielts"},
		Categories:  pq.StringArray{categorySlug, "business"},
		IsActive:    true,
	}
	if err := db.Create(&college).Error; err != nil {
		t.Fatalf("failed to create college: %v", err)
	}
	t.Cleanup(func() {
		db.Delete(&college)
		db.Where("slug = ?", categorySlug).Delete(&model.Category{})
	})

	handler := NewCategoryHandler(db, nil)
	app := fiber.New()
	app.Delete("/api/admin/categories/:id", handler.DeleteCategory)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/admin/categories/%d", category.ID), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var gone model.Category
	if err := db.First(&gone, category.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("category row still present after delete (err=%v)", err)
	}

	var reloaded model.College
	if err := db.First(&reloaded, college.ID).Error; err != nil {
		t.Fatalf("failed to reload college: %v", err)
	}
	if len(reloaded.Categories) != 2 || reloaded.Categories[0] != categorySlug {
		t.Errorf("college categories changed by category delete: %v", reloaded.Categories)
	}
}
