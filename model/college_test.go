package model

import (
	"encoding/json"
	"testing"
)

func TestRankingDecodesLegacyString(t *testing.T) {
	var r Ranking
	if err := json.Unmarshal([]byte(`"Ranked #3 in the UK"`), &r); err != nil {
		t.Fatalf("legacy string failed to decode: %v", err)
	}
	if r.Simple != "Ranked #3 in the UK" {
		t.Errorf("Simple = %q", r.Simple)
	}
	if r.IsStructured() {
		t.Error("legacy ranking reports structured")
	}
}

func TestRankingDecodesStructuredObject(t *testing.T) {
	raw := `{"country_rank":"3","world_rank":"150","accreditation":["NAAC A+","UGC"]}`
	var r Ranking
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("structured ranking failed to decode: %v", err)
	}
	if !r.IsStructured() {
		t.Error("structured ranking reports legacy")
	}
	if r.CountryRank != "3" || r.WorldRank != "150" || len(r.Accreditation) != 2 {
		t.Errorf("fields lost: %+v", r)
	}
}

func TestRankingMarshalIsNormalized(t *testing.T) {
	var legacy Ranking
	if err := json.Unmarshal([]byte(`"Top 10"`), &legacy); err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(legacy)
	if err != nil {
		t.Fatal(err)
	}
	// Always the object form, never a bare string.
	if out[0] != '{' {
		t.Errorf("marshal emitted non-object form: %s", out)
	}

	var round Ranking
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatal(err)
	}
	if round.Simple != "Top 10" {
		t.Errorf("round trip lost value: %+v", round)
	}
}

func TestCollegeSectionsRoundTrip(t *testing.T) {
	college := College{
		Name:        "Alpha Institute of Tech",
		Slug:        "alpha-institute-of-tech",
		CountrySlug: "united-kingdom",
		Overview:    Section{Title: "About", Description: "An institute.", Points: []string{"Founded 1968"}},
		FeesStructure: []FeeRow{
			{CourseName: "BSc Physics", Duration: "3 years", AnnualTuitionFee: "£12,500"},
			{CourseName: "MSc Physics", Duration: "1 year", AnnualTuitionFee: "£16,000"},
		},
		Ranking: Ranking{CountryRank: "12"},
	}

	raw, err := json.Marshal(college)
	if err != nil {
		t.Fatal(err)
	}

	var loaded College
	if err := json.Unmarshal(raw, &loaded); err != nil {
		t.Fatal(err)
	}

	if loaded.Overview.Points[0] != "Founded 1968" {
		t.Errorf("overview lost: %+v", loaded.Overview)
	}
	if len(loaded.FeesStructure) != 2 || loaded.FeesStructure[1].AnnualTuitionFee != "£16,000" {
		t.Errorf("fees structure lost: %+v", loaded.FeesStructure)
	}
	if loaded.Ranking.CountryRank != "12" {
		t.Errorf("ranking lost: %+v", loaded.Ranking)
	}
}

func TestSectionIsEmpty(t *testing.T) {
	if !(Section{}).IsEmpty() {
		t.Error("zero section reports non-empty")
	}
	if (Section{Title: "x"}).IsEmpty() {
		t.Error("titled section reports empty")
	}
	if (Section{Points: []string{"a"}}).IsEmpty() {
		t.Error("section with points reports empty")
	}
}
