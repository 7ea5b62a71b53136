package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"patientor-service/internal/app/config"
	"patientor-service/internal/app/delivery/http/controllers"
	"patientor-service/internal/app/delivery/http/middlewares"
	"patientor-service/internal/app/delivery/http/views"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func newTestRouter(patientUsecase *MockPatientUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "app",
			MaxRequests:                100,
			RequestTimeoutInSeconds:    5,
			SubmitRequestsPerMinute:    10,
			SubmitBlockTimeInSeconds:   60,
			RequestBodyLimitInKilobyte: 64,
		},
	}
	renderer := views.NewRenderer(internalConfig.App.EndpointPrefix)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		logger,
		internalConfig,
		middlewares.NewMiddlewares(logger, renderer, internalConfig),
		controllers.NewPatientController(logger, patientUsecase, renderer, internalConfig),
		controllers.NewHealthController(logger, nil, internalConfig),
	)
	return router
}

func TestSetupRoutes(t *testing.T) {
	page := models.NewPatientPage("p1").Loaded(&models.Patient{ID: "p1", Name: "Alice", Gender: models.GenderFemale}, nil)
	patientUsecase := new(MockPatientUsecase)
	patientUsecase.On("LoadPatientPage", mock.Anything, "p1").Return(page)
	patientUsecase.On("CancelEntry", mock.Anything, "p1").Return(page.CancelDraft())
	router := newTestRouter(patientUsecase)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"Patient Page", http.MethodGet, "/app/patients/p1", http.StatusOK},
		{"Cancel Entry", http.MethodPost, "/app/patients/p1/entries/cancel", http.StatusOK},
		{"Health", http.MethodGet, "/healthz", http.StatusOK},
		{"Metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"Without Prefix", http.MethodGet, "/patients/p1", http.StatusNotFound},
		{"Wrong Method", http.MethodDelete, "/app/patients/p1", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), "every response carries a request id")
		})
	}
	patientUsecase.AssertExpectations(t)
}
