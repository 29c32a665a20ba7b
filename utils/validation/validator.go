package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationErrors converts validation errors into the list of
// human-readable messages the API returns in the errors array.
func FormatValidationErrors(err error) []string {
	var messages []string

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email address", e.Field()))
			case "url":
				messages = append(messages, fmt.Sprintf("%s must be a valid URL", e.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			case "oneof":
				messages = append(messages, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
	} else if err != nil {
		messages = append(messages, err.Error())
	}

	return messages
}

// IsURL reports whether s parses as an absolute http(s) URL.
func IsURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SanitizeString removes potentially dangerous characters
func SanitizeString(s string) string {
	// Remove null bytes
	s = strings.ReplaceAll(s, "\x00", "")
	// Trim whitespace
	s = strings.TrimSpace(s)
	return s
}

// Collector gathers required-field violations so that every problem is
// reported in a single pass instead of failing on the first.
type Collector struct {
	errs []string
}

// Require records a violation when value is blank.
func (c *Collector) Require(value, message string) {
	if strings.TrimSpace(value) == "" {
		c.errs = append(c.errs, message)
	}
}

// RequireList records a violation when the list has no entries.
func (c *Collector) RequireList(values []string, message string) {
	if len(values) == 0 {
		c.errs = append(c.errs, message)
	}
}

// RequireURL records a violation when value is blank or not a
// well-formed http(s) URL.
func (c *Collector) RequireURL(value, missing, malformed string) {
	if strings.TrimSpace(value) == "" {
		c.errs = append(c.errs, missing)
		return
	}
	if !IsURL(value) {
		c.errs = append(c.errs, malformed)
	}
}

// URL records a violation only when a non-blank value is malformed.
func (c *Collector) URL(value, malformed string) {
	if strings.TrimSpace(value) != "" && !IsURL(value) {
		c.errs = append(c.errs, malformed)
	}
}

// Add records an arbitrary violation message.
func (c *Collector) Add(message string) {
	c.errs = append(c.errs, message)
}

// Errors returns every collected violation, in the order recorded.
func (c *Collector) Errors() []string {
	return c.errs
}

// Valid reports whether no violations were collected.
func (c *Collector) Valid() bool {
	return len(c.errs) == 0
}
