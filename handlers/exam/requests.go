package exam

import (
	"fmt"

	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/slug"
	"github.com/globaledge/consult-api/utils/validation"
)

// ExamRequest is the admin-form payload combining all exam sections.
type ExamRequest struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	ShortName      string `json:"short_name"`
	ExamType       string `json:"exam_type"`
	ConductingBody string `json:"conducting_body"`
	ExamMode       string `json:"exam_mode"`
	Frequency      string `json:"frequency"`
	Description    string `json:"description"`
	IsActive       *bool  `json:"is_active"`
	DisplayOrder   int    `json:"display_order"`

	HeroSection      model.HeroSection      `json:"hero_section"`
	Overview         model.ExamOverview     `json:"overview"`
	Registration     model.ExamRegistration `json:"registration"`
	ExamPattern      model.ExamPattern      `json:"exam_pattern"`
	ExamDates        []model.ExamDate       `json:"exam_dates"`
	ResultStatistics model.ResultStatistics `json:"result_statistics"`
}

// Normalize trims inputs and derives the slug from the name when no
// slug was supplied.
func (r *ExamRequest) Normalize() {
	r.Name = validation.SanitizeString(r.Name)
	r.Slug = validation.SanitizeString(r.Slug)
	r.ShortName = validation.SanitizeString(r.ShortName)
	r.ConductingBody = validation.SanitizeString(r.ConductingBody)
	if r.Slug == "" {
		r.Slug = slug.Slugify(r.Name)
	}
}

// Validate collects every violation before reporting.
func (r *ExamRequest) Validate() []string {
	var c validation.Collector

	c.Require(r.Name, "name is required")
	c.Require(r.Slug, "slug is required")
	c.Require(r.Description, "description is required")
	c.URL(r.HeroSection.ImageURL, "hero_section image_url must be a valid URL")

	if r.Overview.Title != "" || len(r.Overview.KeyHighlights) > 0 {
		c.Require(r.Overview.Description, "overview description is required")
	}
	if r.Registration.Title != "" || len(r.Registration.BulletPoints) > 0 {
		c.Require(r.Registration.Description, "registration description is required")
	}
	for i, d := range r.ExamDates {
		c.Require(d.Event, fmt.Sprintf("exam_dates row %d event is required", i+1))
		c.Require(d.Date, fmt.Sprintf("exam_dates row %d date is required", i+1))
	}
	for i, row := range r.ExamPattern.TableData {
		c.Require(row.Section, fmt.Sprintf("exam_pattern row %d section is required", i+1))
	}

	return c.Errors()
}

func (r *ExamRequest) apply(m *model.Exam) {
	m.Name = r.Name
	m.Slug = r.Slug
	m.ShortName = r.ShortName
	m.ExamType = r.ExamType
	m.ConductingBody = r.ConductingBody
	m.ExamMode = r.ExamMode
	m.Frequency = r.Frequency
	m.Description = r.Description
	m.DisplayOrder = r.DisplayOrder
	m.HeroSection = r.HeroSection
	m.Overview = r.Overview
	m.Registration = r.Registration
	m.ExamPattern = r.ExamPattern
	m.ExamDates = r.ExamDates
	m.ResultStatistics = r.ResultStatistics
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
