package validation

import (
	"testing"
)

func TestIsURL(t *testing.T) {
	valid := []string{
		"https://example.com/banner.png",
		"http://cdn.example.com/a/b?c=d",
	}
	for _, u := range valid {
		if !IsURL(u) {
			t.Errorf("IsURL(%q) = false, want true", u)
		}
	}

	invalid := []string{
		"",
		"not a url",
		"ftp://example.com/file",
		"/relative/path.png",
		"example.com/no-scheme",
	}
	for _, u := range invalid {
		if IsURL(u) {
			t.Errorf("IsURL(%q) = true, want false", u)
		}
	}
}

func TestCollectorGathersAllViolations(t *testing.T) {
	var c Collector
	c.Require("", "name is required")
	c.Require("ok", "should not appear")
	c.RequireList(nil, "exams must contain at least one exam")
	c.RequireURL("nonsense", "banner_url is required", "banner_url must be a valid URL")

	errs := c.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(errs), errs)
	}
	if c.Valid() {
		t.Error("collector with violations reports valid")
	}
}

func TestCollectorURLOnlyFlagsNonBlank(t *testing.T) {
	var c Collector
	c.URL("", "should not appear")
	c.URL("https://example.com/x.png", "should not appear")
	c.URL("garbage", "image must be a valid URL")

	errs := c.Errors()
	if len(errs) != 1 || errs[0] != "image must be a valid URL" {
		t.Fatalf("unexpected violations: %v", errs)
	}
}

func TestFormatValidationErrorsListsEveryField(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
		Image string `validate:"omitempty,url"`
	}

	v := NewValidator()
	err := v.ValidateStruct(form{Image: "not-a-url"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msgs := FormatValidationErrors(err)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d: %v", len(msgs), msgs)
	}
}
