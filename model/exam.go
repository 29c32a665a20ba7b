package model

import (
	"time"
)

// HeroSection is the banner block at the top of an exam detail page.
type HeroSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

// ExamOverview summarizes an exam with a list of key highlights.
type ExamOverview struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	KeyHighlights []string `json:"key_highlights"`
}

// ExamRegistration describes how to register, as bullet points.
type ExamRegistration struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	BulletPoints []string `json:"bullet_points"`
}

// PatternRow is one row of the exam pattern table.
type PatternRow struct {
	Section      string `json:"section"`
	Questions    int    `json:"questions"`
	DurationMins int    `json:"duration_mins"`
}

// ExamPattern describes the structure of the exam paper.
type ExamPattern struct {
	Duration   string       `json:"duration"`
	ScoreRange string       `json:"score_range"`
	TableData  []PatternRow `json:"table_data"`
}

// ExamDate is a single dated event in the exam calendar.
type ExamDate struct {
	Event string `json:"event"`
	Date  string `json:"date"`
}

// ResultStatistics carries scoring and passing information.
type ResultStatistics struct {
	TotalMarks      string `json:"total_marks"`
	PassingMarks    string `json:"passing_marks"`
	PassingCriteria string `json:"passing_criteria"`
}

// Exam represents an entrance exam (e.g. NEET, IELTS) with its
// structured detail-page sections. Slug is the public URL key and must
// be unique.
type Exam struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	ShortName      string `gorm:"type:varchar(50)" json:"short_name"`
	ExamType       string `gorm:"type:varchar(100)" json:"exam_type"`
	ConductingBody string `gorm:"type:varchar(255)" json:"conducting_body"`
	ExamMode       string `gorm:"type:varchar(50)" json:"exam_mode"`
	Frequency      string `gorm:"type:varchar(100)" json:"frequency"`
	Description    string `gorm:"type:text" json:"description"`
	IsActive       bool   `gorm:"default:true;index" json:"is_active"`
	DisplayOrder   int    `gorm:"default:0;index" json:"display_order"`

	HeroSection      HeroSection      `gorm:"serializer:json;type:jsonb" json:"hero_section"`
	Overview         ExamOverview     `gorm:"serializer:json;type:jsonb" json:"overview"`
	Registration     ExamRegistration `gorm:"serializer:json;type:jsonb" json:"registration"`
	ExamPattern      ExamPattern      `gorm:"serializer:json;type:jsonb" json:"exam_pattern"`
	ExamDates        []ExamDate       `gorm:"serializer:json;type:jsonb" json:"exam_dates"`
	ResultStatistics ResultStatistics `gorm:"serializer:json;type:jsonb" json:"result_statistics"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Exam
func (Exam) TableName() string {
	return "exams"
}
