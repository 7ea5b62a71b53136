package utils

import (
	"net/url"
	"strings"
)

// SanitizeFormValues trims surrounding whitespace from every submitted value.
func SanitizeFormValues(values url.Values) url.Values {
	sanitized := make(url.Values, len(values))
	for key, list := range values {
		trimmed := make([]string, len(list))
		for i, value := range list {
			trimmed[i] = strings.TrimSpace(value)
		}
		sanitized[key] = trimmed
	}
	return sanitized
}
