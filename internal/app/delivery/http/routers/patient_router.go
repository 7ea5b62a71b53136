package routers

import (
	"patientor-service/internal/app/delivery/http/controllers"
	"patientor-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	submitLimiter := middlewares.SubmitRateLimiter()

	router.Get("/{id}", patientController.GetPatientPage)
	router.Post("/{id}/entries/type", patientController.SelectEntryType)
	router.Post("/{id}/entries/cancel", patientController.CancelEntry)
	router.With(submitLimiter.Limit).Post("/{id}/entries", patientController.SubmitEntry)
}
