package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"patientor-service/internal/app/config"
	"patientor-service/internal/app/delivery/http/forms"
	"patientor-service/internal/app/delivery/http/views"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) LoadPatientPage(ctx context.Context, patientID string) *models.PatientPage {
	args := m.Called(ctx, patientID)
	return args.Get(0).(*models.PatientPage)
}

func (m *MockPatientUsecase) SelectEntryType(ctx context.Context, patientID string, entryType models.EntryType) (*models.PatientPage, error) {
	args := m.Called(ctx, patientID, entryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientPage), args.Error(1)
}

func (m *MockPatientUsecase) SubmitEntry(ctx context.Context, patientID string, draft models.Draft) *models.PatientPage {
	args := m.Called(ctx, patientID, draft)
	return args.Get(0).(*models.PatientPage)
}

func (m *MockPatientUsecase) CancelEntry(ctx context.Context, patientID string) *models.PatientPage {
	args := m.Called(ctx, patientID)
	return args.Get(0).(*models.PatientPage)
}

func loadedPage(patient *models.Patient) *models.PatientPage {
	return models.NewPatientPage(patient.ID).Loaded(patient, models.Diagnoses{{Code: "Z57.1", Name: "Occupational exposure to radiation"}})
}

func newTestRouter(usecase *MockPatientUsecase) http.Handler {
	internalConfig := &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 5}}
	controller := NewPatientController(zap.NewNop(), usecase, views.NewRenderer("app"), internalConfig)

	router := chi.NewRouter()
	router.Get("/app/patients/{id}", controller.GetPatientPage)
	router.Post("/app/patients/{id}/entries/type", controller.SelectEntryType)
	router.Post("/app/patients/{id}/entries/cancel", controller.CancelEntry)
	router.Post("/app/patients/{id}/entries", controller.SubmitEntry)
	return router
}

func postForm(handler http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(constvars.HeaderContentType, "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

var alice = &models.Patient{ID: "p1", Name: "Alice", Gender: models.GenderFemale}

func TestGetPatientPage(t *testing.T) {
	t.Run("Loaded", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("LoadPatientPage", mock.Anything, "p1").Return(loadedPage(alice))
		rr := httptest.NewRecorder()
		newTestRouter(usecase).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/patients/p1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.MIMETextHTMLCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
		assert.Contains(t, rr.Body.String(), "Alice")
		usecase.AssertExpectations(t)
	})

	t.Run("Load Failure", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("LoadPatientPage", mock.Anything, "p1").Return(models.NewPatientPage("p1").Failed([]string{"Unexpected error occurred."}))
		rr := httptest.NewRecorder()
		newTestRouter(usecase).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/patients/p1", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), "Unexpected error occurred.")
		assert.Contains(t, rr.Body.String(), "Loading...")
	})

	t.Run("Patient ID Too Long", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		rr := httptest.NewRecorder()
		newTestRouter(usecase).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/patients/"+strings.Repeat("a", 65), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "LoadPatientPage", mock.Anything, mock.Anything)
	})
}

func TestSelectEntryType(t *testing.T) {
	t.Run("Valid Type", func(t *testing.T) {
		page, err := loadedPage(alice).SelectEntryType(models.EntryTypeOccupationalHealthcare)
		require.NoError(t, err)
		usecase := new(MockPatientUsecase)
		usecase.On("SelectEntryType", mock.Anything, "p1", models.EntryTypeOccupationalHealthcare).Return(page, nil)

		rr := postForm(newTestRouter(usecase), "/app/patients/p1/entries/type", url.Values{"type": {"OccupationalHealthcare"}})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `name="employerName"`)
		usecase.AssertExpectations(t)
	})

	t.Run("Unknown Type", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		rr := postForm(newTestRouter(usecase), "/app/patients/p1/entries/type", url.Values{"type": {"Dental"}})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "SelectEntryType", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSubmitEntry(t *testing.T) {
	form := url.Values{
		"type":              {"HealthCheck"},
		"description":       {"checkup"},
		"date":              {"2024-02-01"},
		"specialist":        {"Dr. Y"},
		"healthCheckRating": {"1"},
	}
	submittedDraft := mock.MatchedBy(func(draft models.Draft) bool {
		healthCheck, ok := draft.(models.HealthCheckDraft)
		return ok && healthCheck.Common().Description == "checkup"
	})

	t.Run("Accepted", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("SubmitEntry", mock.Anything, "p1", submittedDraft).Return(loadedPage(alice).EntryAdded(alice))

		rr := postForm(newTestRouter(usecase), "/app/patients/p1/entries", form)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), `value="checkup"`, "form is reset after success")
		usecase.AssertExpectations(t)
	})

	t.Run("Rejected Keeps Draft", func(t *testing.T) {
		draft, err := forms.DecodeDraft(form)
		require.NoError(t, err)
		usecase := new(MockPatientUsecase)
		usecase.On("SubmitEntry", mock.Anything, "p1", draft).Return(loadedPage(alice).WithDraft(draft).Failed([]string{"Please provide the specialist's name."}))

		rr := postForm(newTestRouter(usecase), "/app/patients/p1/entries", form)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), `value="checkup"`)
		assert.Contains(t, rr.Body.String(), "specialist&#39;s name")
	})

	t.Run("Unknown Type", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		rr := postForm(newTestRouter(usecase), "/app/patients/p1/entries", url.Values{"type": {"Dental"}})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "SubmitEntry", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCancelEntry(t *testing.T) {
	usecase := new(MockPatientUsecase)
	usecase.On("CancelEntry", mock.Anything, "p1").Return(loadedPage(alice).CancelDraft())

	rr := postForm(newTestRouter(usecase), "/app/patients/p1/entries/cancel", url.Values{})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `<option value="HealthCheck" selected>`)
	usecase.AssertExpectations(t)
}

func TestUnhandledEntryRendersErrorPage(t *testing.T) {
	patient := &models.Patient{ID: "p1", Name: "Alice", Gender: models.GenderFemale, Entries: models.Entries{
		models.UnrecognizedEntry{BaseEntry: models.BaseEntry{ID: "x1"}, Type: "Dental"},
	}}
	usecase := new(MockPatientUsecase)
	usecase.On("LoadPatientPage", mock.Anything, "p1").Return(loadedPage(patient))
	rr := httptest.NewRecorder()
	newTestRouter(usecase).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/patients/p1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "Alice")
}
