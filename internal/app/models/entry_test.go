package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const patientEntriesJSON = `[
	{"id":"e1","type":"HealthCheck","date":"2019-10-20","description":"Yearly control visit.","specialist":"MD House","healthCheckRating":1},
	{"id":"e2","type":"Hospital","date":"2015-01-02","description":"Healing time appr. 2 weeks.","specialist":"MD House","diagnosisCodes":["S62.5"],"discharge":{"date":"2015-01-16","criteria":"Thumb has healed."}},
	{"id":"e3","type":"OccupationalHealthcare","date":"2019-08-05","description":"Patient mistakenly found himself in a nuclear plant waste site.","specialist":"MD House","employerName":"HyPD","sickLeave":{"startDate":"2019-08-05","endDate":"2019-08-28"}},
	{"id":"e4","type":"OccupationalHealthcare","date":"2019-09-10","description":"Prescriptions renewed.","specialist":"MD House","employerName":"FBI"}
]`

func TestEntriesUnmarshalJSON(t *testing.T) {
	t.Run("Decodes Every Variant", func(t *testing.T) {
		var entries Entries
		require.NoError(t, json.Unmarshal([]byte(patientEntriesJSON), &entries))
		require.Len(t, entries, 4)

		healthCheck, ok := entries[0].(HealthCheckEntry)
		require.True(t, ok, "first entry should be a health check")
		assert.Equal(t, "e1", healthCheck.ID)
		assert.Equal(t, HealthCheckRatingLowRisk, healthCheck.HealthCheckRating)

		hospital, ok := entries[1].(HospitalEntry)
		require.True(t, ok, "second entry should be a hospital entry")
		assert.Equal(t, []string{"S62.5"}, hospital.DiagnosisCodes)
		assert.Equal(t, Discharge{Date: "2015-01-16", Criteria: "Thumb has healed."}, hospital.Discharge)

		occupational, ok := entries[2].(OccupationalHealthcareEntry)
		require.True(t, ok, "third entry should be occupational healthcare")
		assert.Equal(t, "HyPD", occupational.EmployerName)
		require.NotNil(t, occupational.SickLeave)
		assert.Equal(t, "2019-08-28", occupational.SickLeave.EndDate)

		withoutLeave, ok := entries[3].(OccupationalHealthcareEntry)
		require.True(t, ok)
		assert.Nil(t, withoutLeave.SickLeave, "sick leave is optional")
	})

	t.Run("Keeps Unknown Tag", func(t *testing.T) {
		var entries Entries
		raw := `[{"id":"x1","type":"Dental","date":"2020-01-01","description":"cleaning","specialist":"DDS"}]`
		require.NoError(t, json.Unmarshal([]byte(raw), &entries))
		require.Len(t, entries, 1)

		unknown, ok := entries[0].(UnrecognizedEntry)
		require.True(t, ok, "unknown tags should decode as UnrecognizedEntry")
		assert.Equal(t, EntryType("Dental"), unknown.EntryType())
		assert.Equal(t, "x1", unknown.Common().ID)
		assert.False(t, unknown.EntryType().IsValid())
	})

	t.Run("Rejects Rating Outside Enum", func(t *testing.T) {
		var entries Entries
		raw := `[{"id":"e1","type":"HealthCheck","date":"2019-10-20","description":"x","specialist":"y","healthCheckRating":7}]`
		err := json.Unmarshal([]byte(raw), &entries)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entries[0]")
	})

	t.Run("Rejects Missing Rating", func(t *testing.T) {
		for name, raw := range map[string]string{
			"absent": `{"id":"e1","type":"HealthCheck","date":"2019-10-20","description":"x","specialist":"y"}`,
			"null":   `{"id":"e1","type":"HealthCheck","date":"2019-10-20","description":"x","specialist":"y","healthCheckRating":null}`,
		} {
			_, err := DecodeEntry([]byte(raw))
			require.Error(t, err, name)
			assert.Contains(t, err.Error(), "rating missing", name)
		}
	})

	t.Run("Healthy Rating Is Kept", func(t *testing.T) {
		entry, err := DecodeEntry([]byte(`{"id":"e1","type":"HealthCheck","date":"2019-10-20","description":"x","specialist":"y","healthCheckRating":0}`))
		require.NoError(t, err)
		assert.Equal(t, HealthCheckRatingHealthy, entry.(HealthCheckEntry).HealthCheckRating)
	})

	t.Run("Missing Type Is Unrecognized", func(t *testing.T) {
		entry, err := DecodeEntry([]byte(`{"id":"e9","date":"2020-01-01"}`))
		require.NoError(t, err)
		assert.Equal(t, EntryType(""), entry.EntryType())
	})

	t.Run("Rejects Malformed Entry", func(t *testing.T) {
		_, err := DecodeEntry([]byte(`{"id":"e1","type":"Hospital","discharge":"soon"}`))
		assert.Error(t, err)
	})
}

func TestEntryTypes(t *testing.T) {
	for _, entryType := range EntryTypes() {
		assert.True(t, entryType.IsValid(), "%s should be valid", entryType)
	}
	assert.False(t, EntryType("healthcheck").IsValid(), "tags are case sensitive")
	assert.False(t, EntryType("").IsValid())
}
