package database

import (
	"errors"
	"log"

	"github.com/globaledge/consult-api/config"
	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/auth"
	"github.com/globaledge/consult-api/utils/slug"
	"gorm.io/gorm"
)

// SeedDefaults creates the admin account from the environment and a
// starter set of countries and categories when the tables are empty.
// Safe to run on every boot.
func SeedDefaults(db *gorm.DB) error {
	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	if getEnv.ADMIN_EMAIL != "" && getEnv.ADMIN_PASSWORD != "" {
		var existing model.AdminUser
		err := db.Where("email = ?", getEnv.ADMIN_EMAIL).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, err := auth.HashPassword(getEnv.ADMIN_PASSWORD)
			if err != nil {
				return err
			}
			admin := model.AdminUser{
				Email:        getEnv.ADMIN_EMAIL,
				PasswordHash: hash,
				Name:         "Administrator",
				Role:         "admin",
			}
			if err := db.Create(&admin).Error; err != nil {
				return err
			}
			log.Println("Seeded default admin user:", getEnv.ADMIN_EMAIL)
		} else if err != nil {
			return err
		}
	}

	var countryCount int64
	if err := db.Model(&model.Country{}).Count(&countryCount).Error; err != nil {
		return err
	}
	if countryCount == 0 {
		for _, c := range defaultCountries() {
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		}
		log.Println("Seeded starter countries")
	}

	var categoryCount int64
	if err := db.Model(&model.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		for _, c := range defaultCategories() {
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		}
		log.Println("Seeded starter categories")
	}

	return nil
}

func defaultCountries() []model.Country {
	names := []struct {
		name string
		flag string
	}{
		{"United Kingdom", "\U0001F1EC\U0001F1E7"},
		{"United States", "\U0001F1FA\U0001F1F8"},
		{"Canada", "\U0001F1E8\U0001F1E6"},
		{"Australia", "\U0001F1E6\U0001F1FA"},
		{"Germany", "\U0001F1E9\U0001F1EA"},
	}
	countries := make([]model.Country, 0, len(names))
	for _, n := range names {
		countries = append(countries, model.Country{
			Name:     n.name,
			Slug:     slug.Slugify(n.name),
			Flag:     n.flag,
			IsActive: true,
		})
	}
	return countries
}

func defaultCategories() []model.Category {
	names := []string{"Engineering", "Medical", "Business", "Arts and Humanities", "Law"}
	categories := make([]model.Category, 0, len(names))
	for _, n := range names {
		categories = append(categories, model.Category{
			Name:     n,
			Slug:     slug.Slugify(n),
			IsActive: true,
		})
	}
	return categories
}
