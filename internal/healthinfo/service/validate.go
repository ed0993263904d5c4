package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"slices"
	"time"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
)

// ErrInvalidInput wraps every payload validation failure.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError carries the first rule a payload broke.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Accepted date of birth layouts, tried in order: ISO 8601 calendar dates
// in extended and basic format, optionally with a time joined by "T" or a
// space. Fractional seconds are accepted wherever seconds are.
var dobLayouts = []string{
	time.DateOnly,
	"2006-01",
	"20060102",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"20060102T1504",
	"20060102T150405",
	"20060102T150405Z0700",
}

// body is a decoded JSON object whose fields have not been typed yet.
type body map[string]json.RawMessage

func decodeObject(data []byte) (body, error) {
	var b body
	if err := json.Unmarshal(data, &b); err != nil || b == nil {
		return nil, invalid("request body must be a JSON object")
	}
	return b, nil
}

// requiredString reads a non-empty string field.
func (b body) requiredString(key string) (string, error) {
	raw, ok := b[key]
	if !ok {
		return "", invalid("%q is required", key)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || string(raw) == "null" {
		return "", invalid("%q must be a string", key)
	}
	if s == "" {
		return "", invalid("%q is not allowed to be empty", key)
	}
	return s, nil
}

// onlyKeys rejects the first key, in sorted order, that is not in allowed.
func (b body) onlyKeys(allowed ...string) error {
	var unknown []string
	for k := range b {
		if !slices.Contains(allowed, k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return invalid("%q is not allowed", unknown[0])
}

// ValidDOB reports whether s is an ISO 8601 date or date-time.
func ValidDOB(s string) bool {
	for _, layout := range dobLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Sanitize escapes the HTML special characters & < > " and '.
func Sanitize(s string) string {
	return html.EscapeString(s)
}

// ParseProgram validates a program payload and returns the sanitized program.
func ParseProgram(data []byte) (domain.Program, error) {
	b, err := decodeObject(data)
	if err != nil {
		return domain.Program{}, err
	}

	id, err := b.requiredString("id")
	if err != nil {
		return domain.Program{}, err
	}
	name, err := b.requiredString("name")
	if err != nil {
		return domain.Program{}, err
	}
	if err := b.onlyKeys("id", "name"); err != nil {
		return domain.Program{}, err
	}

	return domain.Program{
		ID:   Sanitize(id),
		Name: Sanitize(name),
	}, nil
}

// ParseClient validates a client payload and returns the sanitized client.
func ParseClient(data []byte) (domain.Client, error) {
	b, err := decodeObject(data)
	if err != nil {
		return domain.Client{}, err
	}

	id, err := b.requiredString("id")
	if err != nil {
		return domain.Client{}, err
	}
	name, err := b.requiredString("name")
	if err != nil {
		return domain.Client{}, err
	}
	dob, err := b.requiredString("dob")
	if err != nil {
		return domain.Client{}, err
	}
	if !ValidDOB(dob) {
		return domain.Client{}, invalid("%q must be in ISO 8601 date format", "dob")
	}
	if err := b.onlyKeys("id", "name", "dob"); err != nil {
		return domain.Client{}, err
	}

	return domain.Client{
		ID:   Sanitize(id),
		Name: Sanitize(name),
		DOB:  Sanitize(dob),
	}, nil
}

// ParseEnrollment validates an enroll payload for the client named in the
// path. Only the body is sanitized; clientID is a lookup key and is matched
// exactly like any other path id.
func ParseEnrollment(clientID string, data []byte) (domain.Enrollment, error) {
	if clientID == "" {
		return domain.Enrollment{}, invalid("%q is not allowed to be empty", "clientId")
	}

	b, err := decodeObject(data)
	if err != nil {
		return domain.Enrollment{}, err
	}

	programID, err := b.requiredString("programId")
	if err != nil {
		return domain.Enrollment{}, err
	}
	if err := b.onlyKeys("programId"); err != nil {
		return domain.Enrollment{}, err
	}

	return domain.Enrollment{
		ClientID:  clientID,
		ProgramID: Sanitize(programID),
	}, nil
}
