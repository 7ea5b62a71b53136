package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFormValues(t *testing.T) {
	t.Run("Trims Every Value", func(t *testing.T) {
		values := url.Values{
			"description": {"  yearly control  "},
			"specialist":  {"\tDr. House\n"},
		}

		sanitized := SanitizeFormValues(values)

		assert.Equal(t, "yearly control", sanitized.Get("description"), "description should be trimmed")
		assert.Equal(t, "Dr. House", sanitized.Get("specialist"), "specialist should be trimmed")
	})

	t.Run("Keeps Multiple Values", func(t *testing.T) {
		values := url.Values{
			"diagnosisCodes": {" M24.2 ", "Z57.1"},
		}

		sanitized := SanitizeFormValues(values)

		assert.Equal(t, []string{"M24.2", "Z57.1"}, sanitized["diagnosisCodes"], "each code should be trimmed")
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		values := url.Values{"date": {" 2024-01-01 "}}

		SanitizeFormValues(values)

		assert.Equal(t, " 2024-01-01 ", values.Get("date"), "input values should stay untouched")
	})

	t.Run("Empty Values", func(t *testing.T) {
		sanitized := SanitizeFormValues(url.Values{})

		assert.Empty(t, sanitized, "empty input should give empty output")
	})
}

func TestValidateISODate(t *testing.T) {
	assert.NoError(t, ValidateVar("2024-01-05", "iso_date"))
	assert.NoError(t, ValidateVar("", "iso_date"))
	assert.Error(t, ValidateVar("05/01/2024", "iso_date"))
	assert.Error(t, ValidateVar("2024-13-01", "iso_date"))
}
