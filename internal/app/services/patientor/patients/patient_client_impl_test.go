package patients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const alicePatientJSON = `{
	"id":"p1","name":"Alice","gender":"female","ssn":"090786-122X","occupation":"Engineer",
	"entries":[{"id":"e1","type":"Hospital","date":"2024-01-01","description":"x","specialist":"Dr. Y","discharge":{"date":"2024-01-05","criteria":"recovered"}}]
}`

func newTestClient(server *httptest.Server) *patientClient {
	return NewPatientClient(server.URL+"/api", server.Client(), zap.NewNop()).(*patientClient)
}

func requestContext() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "PTNTR_WEB_test")
}

func TestFindPatientByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/patients/p1", r.URL.Path)
			assert.Equal(t, "PTNTR_WEB_test", r.Header.Get(constvars.HeaderXRequestID))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(alicePatientJSON))
		}))
		defer server.Close()

		patient, err := newTestClient(server).FindPatientByID(requestContext(), "p1")
		require.NoError(t, err)

		assert.Equal(t, "Alice", patient.Name)
		assert.Equal(t, models.GenderFemale, patient.Gender)
		require.Len(t, patient.Entries, 1)
		assert.IsType(t, models.HospitalEntry{}, patient.Entries[0])
	})

	t.Run("Backend Rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Patient not found"}`))
		}))
		defer server.Close()

		patient, err := newTestClient(server).FindPatientByID(requestContext(), "missing")
		assert.Nil(t, patient)

		var backendErr *exceptions.BackendError
		require.True(t, errors.As(err, &backendErr))
		assert.Equal(t, http.StatusNotFound, backendErr.StatusCode)
		assert.Equal(t, "Patient not found", backendErr.RawMessage())
	})

	t.Run("Contract Violation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"p1","name":"Alice","gender":"unknown","entries":[]}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).FindPatientByID(requestContext(), "p1")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientUnexpected, customErr.ClientMessage)
	})

	t.Run("Undecodable Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		_, err := newTestClient(server).FindPatientByID(requestContext(), "p1")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, "failed to decode")
	})

	t.Run("Transport Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		client := newTestClient(server)
		server.Close()

		_, err := client.FindPatientByID(requestContext(), "p1")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientUnexpected, customErr.ClientMessage)
	})

	t.Run("Deadline Exceeded", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(requestContext(), 20*time.Millisecond)
		defer cancel()

		_, err := newTestClient(server).FindPatientByID(ctx, "p1")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
	})
}

func TestAddEntry(t *testing.T) {
	t.Run("Posts Draft And Returns Patient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/patients/p1/entries", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			var fields map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &fields))
			assert.Equal(t, "Hospital", fields["type"])
			assert.Equal(t, map[string]interface{}{"date": "2024-01-05", "criteria": "recovered"}, fields["discharge"])
			assert.NotContains(t, fields, "id")

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(alicePatientJSON))
		}))
		defer server.Close()

		draft := models.HospitalDraft{}.WithDischargeDate("2024-01-05").WithDischargeCriteria("recovered")
		patient, err := newTestClient(server).AddEntry(requestContext(), "p1", draft)
		require.NoError(t, err)
		assert.Equal(t, "p1", patient.ID)
	})

	t.Run("Validation Rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":[{"code":"invalid_union","message":"Invalid input","path":[],"unionErrors":[{"issues":[{"code":"invalid_type","path":["healthCheckRating"],"message":"Required"}]}]}]}`))
		}))
		defer server.Close()

		draft := models.BlankDraft().(models.HealthCheckDraft).WithoutRating()
		_, err := newTestClient(server).AddEntry(requestContext(), "p1", draft)

		var backendErr *exceptions.BackendError
		require.True(t, errors.As(err, &backendErr))
		issue, ok := backendErr.UnionIssue()
		require.True(t, ok)
		require.Len(t, issue.UnionErrors, 1)
		assert.Equal(t, "healthCheckRating", issue.UnionErrors[0].Issues[0].Path.Head())
	})
}
