package model

import (
	"time"

	"github.com/lib/pq"
)

// Blog is an article on the public site. Category is free text (the
// admin form constrains it to a fixed list client-side); related exams
// are loose slug references.
type Blog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug         string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Category     string         `gorm:"type:varchar(100);index" json:"category"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	Content      string         `gorm:"type:text" json:"content"`
	Image        string         `gorm:"type:varchar(512)" json:"image"`
	RelatedExams pq.StringArray `gorm:"type:text[]" json:"related_exams"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// TableName specifies the table name for Blog
func (Blog) TableName() string {
	return "blogs"
}
