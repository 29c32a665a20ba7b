package college

import (
	"sort"
	"testing"

	"github.com/globaledge/consult-api/model"
)

func TestValidateReportsEveryMissingField(t *testing.T) {
	req := CollegeRequest{
		Name:    "Alpha Institute of Tech",
		Country: "united-kingdom",
	}
	req.Normalize()

	errs := req.Validate()
	want := []string{
		"banner_url is required",
		"categories must contain at least one category",
		"exams must contain at least one exam",
	}

	got := append([]string(nil), errs...)
	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("expected exactly %d violations, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("violation %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	req := CollegeRequest{
		Name:       "Alpha Institute of Tech",
		Country:    "united-kingdom",
		BannerURL:  "https://cdn.example.com/alpha.png",
		Exams:      []string{"IELTS"},
		Categories: []string{"engineering"},
	}
	req.Normalize()

	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("valid request rejected: %v", errs)
	}
	// Submitting the same valid form again introduces no new errors.
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("second validation of unchanged form failed: %v", errs)
	}
}

func TestNormalizeDerivesSlugFromName(t *testing.T) {
	req := CollegeRequest{Name: "Alpha Institute of Tech"}
	req.Normalize()
	if req.Slug != "alpha-institute-of-tech" {
		t.Errorf("derived slug = %q, want %q", req.Slug, "alpha-institute-of-tech")
	}

	manual := CollegeRequest{Name: "Alpha Institute of Tech", Slug: "custom-slug"}
	manual.Normalize()
	if manual.Slug != "custom-slug" {
		t.Errorf("supplied slug was overwritten: %q", manual.Slug)
	}
}

func TestValidateFlagsPartialSections(t *testing.T) {
	req := CollegeRequest{
		Name:       "Alpha Institute of Tech",
		Country:    "united-kingdom",
		BannerURL:  "https://cdn.example.com/alpha.png",
		Exams:      []string{"IELTS"},
		Categories: []string{"engineering"},
		Overview:   model.Section{Title: "About Alpha"}, // no description
	}
	req.Normalize()

	errs := req.Validate()
	if len(errs) != 1 || errs[0] != "overview description is required" {
		t.Fatalf("unexpected violations: %v", errs)
	}
}

func TestApplyRoundTripsEveryField(t *testing.T) {
	req := CollegeRequest{
		Name:              "Alpha Institute of Tech",
		Country:           "united-kingdom",
		City:              "London",
		Exams:             []string{"IELTS", "TOEFL"},
		Categories:        []string{"engineering", "business"},
		BannerURL:         "https://cdn.example.com/alpha.png",
		EstablishmentYear: 1968,
		Overview:          model.Section{Title: "About", Description: "An institute."},
		KeyHighlights:     model.Section{Title: "Highlights", Description: "Top ranked.", Points: []string{"95% placement"}},
		Ranking:           model.Ranking{CountryRank: "12", WorldRank: "210", Accreditation: []string{"AACSB"}},
		FeesStructure: []model.FeeRow{
			{CourseName: "MSc Computer Science", Duration: "2 years", AnnualTuitionFee: "£18,000"},
		},
	}
	req.Normalize()

	var college model.College
	req.apply(&college)

	if college.Name != req.Name || college.Slug != "alpha-institute-of-tech" {
		t.Errorf("identity fields lost: %+v", college)
	}
	if college.CountrySlug != "united-kingdom" || college.City != "London" {
		t.Errorf("location fields lost: %+v", college)
	}
	if len(college.Exams) != 2 || len(college.Categories) != 2 {
		t.Errorf("list fields lost: exams=%v categories=%v", college.Exams, college.Categories)
	}
	if college.KeyHighlights.Points[0] != "95% placement" {
		t.Errorf("section points lost: %+v", college.KeyHighlights)
	}
	if !college.Ranking.IsStructured() || college.Ranking.WorldRank != "210" {
		t.Errorf("ranking lost: %+v", college.Ranking)
	}
	if len(college.FeesStructure) != 1 || college.FeesStructure[0].AnnualTuitionFee != "£18,000" {
		t.Errorf("fees structure lost: %+v", college.FeesStructure)
	}
}
