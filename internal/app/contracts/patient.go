package contracts

import (
	"context"
	"patientor-service/internal/app/models"
)

// PatientUsecase drives the patient detail page. Every transition starts
// from a fresh load, so failures come back inside the page rather than as
// errors.
type PatientUsecase interface {
	LoadPatientPage(ctx context.Context, patientID string) *models.PatientPage
	SelectEntryType(ctx context.Context, patientID string, entryType models.EntryType) (*models.PatientPage, error)
	SubmitEntry(ctx context.Context, patientID string, draft models.Draft) *models.PatientPage
	CancelEntry(ctx context.Context, patientID string) *models.PatientPage
}

type PatientClient interface {
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	AddEntry(ctx context.Context, patientID string, draft models.Draft) (*models.Patient, error)
}
