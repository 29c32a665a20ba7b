package model

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// Section is a named content block shown on detail pages: a title, a
// description, and an optional list of bullet points.
type Section struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Points      []string `json:"points,omitempty"`
}

// IsEmpty reports whether the section carries no content at all.
func (s Section) IsEmpty() bool {
	return s.Title == "" && s.Description == "" && len(s.Points) == 0
}

// FeeRow is one course entry in a college fee table.
type FeeRow struct {
	CourseName       string `json:"course_name"`
	Duration         string `json:"duration"`
	AnnualTuitionFee string `json:"annual_tuition_fee"`
}

// Ranking normalizes the two historical shapes a college ranking was
// stored in: a plain display string or a structured object with
// country/world ranks and an accreditation list. Legacy string
// documents decode into the Simple form; marshaling always emits the
// normalized object.
type Ranking struct {
	Simple        string   `json:"simple,omitempty"`
	CountryRank   string   `json:"country_rank,omitempty"`
	WorldRank     string   `json:"world_rank,omitempty"`
	Accreditation []string `json:"accreditation,omitempty"`
}

// UnmarshalJSON accepts either a bare string (legacy documents) or the
// structured object form.
func (r *Ranking) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.Simple)
	}
	type plain Ranking
	return json.Unmarshal(data, (*plain)(r))
}

// IsStructured reports whether the ranking carries structured fields
// rather than only a legacy display string.
func (r Ranking) IsStructured() bool {
	return r.CountryRank != "" || r.WorldRank != "" || len(r.Accreditation) > 0
}

// College represents an institution listed on the public site.
// Country, exams and categories are loose slug references; a college
// may keep referencing a category slug that was since deleted.
type College struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug              string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	CountrySlug       string         `gorm:"type:varchar(100);index;not null" json:"country"`
	City              string         `gorm:"type:varchar(100)" json:"city"`
	Exams             pq.StringArray `gorm:"type:text[]" json:"exams"`
	Categories        pq.StringArray `gorm:"type:text[]" json:"categories"`
	BannerURL         string         `gorm:"type:varchar(512)" json:"banner_url"`
	EstablishmentYear int            `json:"establishment_year"`
	IsActive          bool           `gorm:"default:true;index" json:"is_active"`

	Overview          Section  `gorm:"serializer:json;type:jsonb" json:"overview"`
	KeyHighlights     Section  `gorm:"serializer:json;type:jsonb" json:"key_highlights"`
	WhyChooseUs       Section  `gorm:"serializer:json;type:jsonb" json:"why_choose_us"`
	Ranking           Ranking  `gorm:"serializer:json;type:jsonb" json:"ranking"`
	AdmissionProcess  Section  `gorm:"serializer:json;type:jsonb" json:"admission_process"`
	DocumentsRequired Section  `gorm:"serializer:json;type:jsonb" json:"documents_required"`
	FeesStructure     []FeeRow `gorm:"serializer:json;type:jsonb" json:"fees_structure"`
	CampusHighlights  Section  `gorm:"serializer:json;type:jsonb" json:"campus_highlights"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for College
func (College) TableName() string {
	return "colleges"
}
