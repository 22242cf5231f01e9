package resume

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// ValidatePersonalField checks one personal-info field and returns a
// human-readable problem, or "" when the value is acceptable. Validation is
// advisory only: callers surface the message but still apply the update.
func ValidatePersonalField(field, value string) string {
	switch field {
	case "firstName", "lastName", "title":
		if strings.TrimSpace(value) == "" {
			return "This field is required"
		}
	case "email":
		if strings.TrimSpace(value) == "" {
			return "This field is required"
		}
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email address"
		}
	case "phone":
		if value != "" && !phonePattern.MatchString(value) {
			return "Please enter a valid phone number"
		}
	}
	return ""
}
