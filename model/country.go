package model

import "time"

// Country is a study destination listed on the public site.
type Country struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug            string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Flag            string    `gorm:"type:varchar(16)" json:"flag"`
	Description     string    `gorm:"type:text" json:"description"`
	MetaTitle       string    `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string    `gorm:"type:varchar(512)" json:"meta_description"`
	IsActive        bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for Country
func (Country) TableName() string {
	return "countries"
}
