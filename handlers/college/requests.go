package college

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/slug"
	"github.com/globaledge/consult-api/utils/validation"
)

// CollegeRequest is the single admin-form payload combining every
// section sub-object. The same shape serves create and update; the
// identifier travels in the URL, not the body.
type CollegeRequest struct {
	Name              string         `json:"name"`
	Slug              string         `json:"slug"`
	Country           string         `json:"country"`
	City              string         `json:"city"`
	Exams             []string       `json:"exams"`
	Categories        []string       `json:"categories"`
	BannerURL         string         `json:"banner_url"`
	EstablishmentYear int            `json:"establishment_year"`
	IsActive          *bool          `json:"is_active"`
	Overview          model.Section  `json:"overview"`
	KeyHighlights     model.Section  `json:"key_highlights"`
	WhyChooseUs       model.Section  `json:"why_choose_us"`
	Ranking           model.Ranking  `json:"ranking"`
	AdmissionProcess  model.Section  `json:"admission_process"`
	DocumentsRequired model.Section  `json:"documents_required"`
	FeesStructure     []model.FeeRow `json:"fees_structure"`
	CampusHighlights  model.Section  `json:"campus_highlights"`
}

// Normalize trims inputs and derives the slug from the name when no
// slug was supplied.
func (r *CollegeRequest) Normalize() {
	r.Name = validation.SanitizeString(r.Name)
	r.Slug = validation.SanitizeString(r.Slug)
	r.Country = validation.SanitizeString(r.Country)
	r.City = validation.SanitizeString(r.City)
	r.BannerURL = validation.SanitizeString(r.BannerURL)
	if r.Slug == "" {
		r.Slug = slug.Slugify(r.Name)
	}
}

// Validate collects every violation before reporting; nothing is
// written when the list is non-empty.
func (r *CollegeRequest) Validate() []string {
	var c validation.Collector

	c.Require(r.Name, "name is required")
	c.Require(r.Slug, "slug is required")
	c.Require(r.Country, "country is required")
	c.RequireURL(r.BannerURL, "banner_url is required", "banner_url must be a valid URL")
	c.RequireList(r.Exams, "exams must contain at least one exam")
	c.RequireList(r.Categories, "categories must contain at least one category")

	sections := []struct {
		name    string
		section model.Section
	}{
		{"overview", r.Overview},
		{"key_highlights", r.KeyHighlights},
		{"why_choose_us", r.WhyChooseUs},
		{"admission_process", r.AdmissionProcess},
		{"documents_required", r.DocumentsRequired},
		{"campus_highlights", r.CampusHighlights},
	}
	for _, s := range sections {
		if s.section.IsEmpty() {
			continue
		}
		c.Require(s.section.Title, fmt.Sprintf("%s title is required", s.name))
		c.Require(s.section.Description, fmt.Sprintf("%s description is required", s.name))
	}

	for i, row := range r.FeesStructure {
		c.Require(row.CourseName, fmt.Sprintf("fees_structure row %d course_name is required", i+1))
	}

	return c.Errors()
}

func (r *CollegeRequest) apply(m *model.College) {
	m.Name = r.Name
	m.Slug = r.Slug
	m.CountrySlug = r.Country
	m.City = r.City
	m.Exams = pq.StringArray(r.Exams)
	m.Categories = pq.StringArray(r.Categories)
	m.BannerURL = r.BannerURL
	m.EstablishmentYear = r.EstablishmentYear
	m.Overview = r.Overview
	m.KeyHighlights = r.KeyHighlights
	m.WhyChooseUs = r.WhyChooseUs
	m.Ranking = r.Ranking
	m.AdmissionProcess = r.AdmissionProcess
	m.DocumentsRequired = r.DocumentsRequired
	m.FeesStructure = r.FeesStructure
	m.CampusHighlights = r.CampusHighlights
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
