// Package validation checks request payloads and records against
// declarative per-field rule tables before anything touches the database.
package validation

import (
	"regexp"

	"github.com/gofrs/uuid"
)

// URLPattern accepts any scheme://... shaped value.
var URLPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://.+`)

// FieldError reports a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule describes one check on one field. Exactly one of Required,
// Pattern or OneOf is set per rule; a field with several constraints
// gets several rules. Pattern and OneOf apply only when the value is
// present, so optional fields stay optional.
type Rule struct {
	Field    string
	Message  string
	Required bool
	Pattern  *regexp.Regexp
	OneOf    []string
}

// Validate runs rules against fields and returns the violations in rule
// declaration order. An empty result means the record is valid. Rules on
// fields missing from the map behave as if the value were absent.
func Validate(fields map[string]any, rules []Rule) []FieldError {
	var errs []FieldError
	for _, rule := range rules {
		value, present := stringValue(fields[rule.Field])
		if violated(rule, value, present) {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}

// ValidatePatch runs rules against a partial update, skipping every rule
// whose field was not provided. Provided fields are held to the full rule
// set, so a patch cannot blank out a required field.
func ValidatePatch(fields map[string]any, rules []Rule) []FieldError {
	var errs []FieldError
	for _, rule := range rules {
		value, present, provided := patchValue(fields[rule.Field])
		if !provided {
			continue
		}
		// An explicitly empty value is never a member of an enum.
		if len(rule.OneOf) > 0 && !present {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
			continue
		}
		if violated(rule, value, present) {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}

func violated(rule Rule, value string, present bool) bool {
	switch {
	case rule.Required:
		return !present
	case rule.Pattern != nil:
		return present && !rule.Pattern.MatchString(value)
	case len(rule.OneOf) > 0:
		if !present {
			return false
		}
		for _, allowed := range rule.OneOf {
			if value == allowed {
				return false
			}
		}
		return true
	}
	return false
}

// stringValue reduces the supported field representations to a string and
// a presence flag. nil pointers and empty strings both count as absent.
func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, s != ""
	case *string:
		if s == nil {
			return "", false
		}
		return *s, *s != ""
	case uuid.UUID:
		return s.String(), s != uuid.Nil
	}
	return "", false
}

// patchValue additionally reports whether the field was provided at all:
// a nil pointer means the client omitted it, an empty string means the
// client explicitly set it to empty.
func patchValue(v any) (value string, present, provided bool) {
	switch s := v.(type) {
	case string:
		return s, s != "", true
	case *string:
		if s == nil {
			return "", false, false
		}
		return *s, *s != "", true
	}
	return "", false, false
}
