package patients

import (
	"context"
	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/models"
	"patientor-service/internal/app/services/shared/metrics"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type patientUsecase struct {
	PatientClient    contracts.PatientClient
	DiagnosisUsecase contracts.DiagnosisUsecase
	Log              *zap.Logger
}

func NewPatientUsecase(
	patientClient contracts.PatientClient,
	diagnosisUsecase contracts.DiagnosisUsecase,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientClient:    patientClient,
		DiagnosisUsecase: diagnosisUsecase,
		Log:              logger,
	}
}

// LoadPatientPage fetches the patient and the diagnosis catalog together.
// If either fails the page stays in the loading state with the mapped
// error messages.
func (uc *patientUsecase) LoadPatientPage(ctx context.Context, patientID string) *models.PatientPage {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("patientUsecase.LoadPatientPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	page := models.NewPatientPage(patientID)

	var (
		patient   *models.Patient
		diagnoses models.Diagnoses
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		patient, err = uc.PatientClient.FindPatientByID(gctx, patientID)
		return err
	})
	g.Go(func() error {
		var err error
		diagnoses, err = uc.DiagnosisUsecase.FindAllDiagnoses(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.Log.Error("patientUsecase.LoadPatientPage error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return page.Failed(MapPageError(err, constvars.ErrClientFetchPatientFailed))
	}

	uc.Log.Info("patientUsecase.LoadPatientPage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingEntryCountKey, len(patient.Entries)),
		zap.Int(constvars.LoggingDiagnosisCountKey, len(diagnoses)),
	)
	return page.Loaded(patient, diagnoses)
}

func (uc *patientUsecase) SelectEntryType(ctx context.Context, patientID string, entryType models.EntryType) (*models.PatientPage, error) {
	page := uc.LoadPatientPage(ctx, patientID)
	return page.SelectEntryType(entryType)
}

func (uc *patientUsecase) CancelEntry(ctx context.Context, patientID string) *models.PatientPage {
	return uc.LoadPatientPage(ctx, patientID).CancelDraft()
}

// SubmitEntry sends draft to the backend. On rejection the draft is kept
// on the page so it can be corrected and sent again.
func (uc *patientUsecase) SubmitEntry(ctx context.Context, patientID string, draft models.Draft) *models.PatientPage {
	requestID := utils.RequestIDFromContext(ctx)
	entryType := string(draft.DraftType())
	uc.Log.Info("patientUsecase.SubmitEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingEntryTypeKey, entryType),
	)

	page := uc.LoadPatientPage(ctx, patientID).WithDraft(draft)
	if !page.IsLoaded() {
		return page
	}

	patient, err := uc.PatientClient.AddEntry(ctx, patientID, draft)
	if err != nil {
		messages := MapPageError(err, constvars.ErrClientAddEntryFailed)
		metrics.RecordEntrySubmitted(entryType, false)
		utils.LogBusinessEvent(uc.Log, constvars.BusinessEventEntryRejected, requestID,
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.String(constvars.LoggingEntryTypeKey, entryType),
			zap.Int(constvars.LoggingIssueCountKey, len(messages)),
			zap.Error(err),
		)
		return page.Failed(messages)
	}

	metrics.RecordEntrySubmitted(entryType, true)
	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventEntryAdded, requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingEntryTypeKey, entryType),
		zap.Int(constvars.LoggingEntryCountKey, len(patient.Entries)),
	)
	return page.EntryAdded(patient)
}
