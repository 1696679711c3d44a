// Package validate performs schema checks on inbound payloads before they
// reach the repositories. Checks are pure and collect every violated field,
// not just the first one.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validator accumulates field errors across checks.
type Validator struct {
	errs Errors
}

func (v *Validator) Add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

func (v *Validator) Require(field, value string) {
	if value == "" {
		v.Add(field, fmt.Sprintf("%s is required", field))
	}
}

func (v *Validator) MinLen(field, value string, min int) {
	if len(value) < min {
		v.Add(field, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
}

func (v *Validator) MaxLen(field, value string, max int) {
	if len(value) > max {
		v.Add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}

func (v *Validator) Email(field, value string) {
	if !emailRe.MatchString(value) {
		v.Add(field, "invalid email format")
	}
}

func (v *Validator) HexColor(field, value string) {
	if !hexColorRe.MatchString(value) {
		v.Add(field, "invalid color format")
	}
}

func (v *Validator) Enum(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, fmt.Sprintf("%s must be one of %s", field, strings.Join(allowed, ", ")))
}

func (v *Validator) PositiveID(field string, value int64) {
	if value <= 0 {
		v.Add(field, fmt.Sprintf("%s must be a positive integer", field))
	}
}

func (v *Validator) Date(field, value string) {
	if _, err := ParseDate(value); err != nil {
		v.Add(field, "invalid date format")
	}
}

// Err returns the accumulated errors, or nil when every check passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// ParseID coerces a path or query parameter into a positive integer id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// ParseDate accepts RFC 3339 timestamps and plain dates.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
