package patients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/models"
	"patientor-service/internal/app/services/shared/metrics"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/exceptions"
	"patientor-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPatientClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.PatientClient {
	return &patientClient{
		BaseUrl:    baseUrl + constvars.ResourcePatients,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *patientClient) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.patientURL(patientID), nil)
	if err != nil {
		c.Log.Error("patientClient.FindPatientByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	bodyBytes, err := c.send(req, "FindPatientByID", constvars.StatusOK)
	if err != nil {
		c.Log.Error("patientClient.FindPatientByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	patient, err := c.decodePatient(bodyBytes)
	if err != nil {
		c.Log.Error("patientClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.Int(constvars.LoggingEntryCountKey, len(patient.Entries)),
	)
	return patient, nil
}

func (c *patientClient) AddEntry(ctx context.Context, patientID string, draft models.Draft) (*models.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.AddEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingEntryTypeKey, string(draft.DraftType())),
	)

	requestJSON, err := json.Marshal(draft)
	if err != nil {
		c.Log.Error("patientClient.AddEntry error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	entriesURL := fmt.Sprintf("%s/%s", c.patientURL(patientID), constvars.ResourceEntries)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, entriesURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientClient.AddEntry error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	bodyBytes, err := c.send(req, "AddEntry", constvars.StatusOK, constvars.StatusCreated)
	if err != nil {
		c.Log.Error("patientClient.AddEntry error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	patient, err := c.decodePatient(bodyBytes)
	if err != nil {
		c.Log.Error("patientClient.AddEntry error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.AddEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.Int(constvars.LoggingEntryCountKey, len(patient.Entries)),
	)
	return patient, nil
}

func (c *patientClient) patientURL(patientID string) string {
	return fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(patientID))
}

// send executes req and returns the body when the status is one of
// accepted. Any other status becomes a *exceptions.BackendError.
func (c *patientClient) send(req *http.Request, operation string, accepted ...int) ([]byte, error) {
	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.RecordBackendRequest(operation, 0, time.Since(start))
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	metrics.RecordBackendRequest(operation, resp.StatusCode, time.Since(start))

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadResponseBody(err)
	}

	for _, status := range accepted {
		if resp.StatusCode == status {
			return bodyBytes, nil
		}
	}
	return nil, exceptions.ErrBackendRejected(resp.StatusCode, constvars.ResourcePatients, bodyBytes)
}

func (c *patientClient) decodePatient(bodyBytes []byte) (*models.Patient, error) {
	patient := new(models.Patient)
	if err := json.Unmarshal(bodyBytes, patient); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}
	if err := utils.ValidateStruct(patient); err != nil {
		return nil, exceptions.ErrBackendContractViolation(errors.New(exceptions.FormatFirstValidationError(err)), constvars.ResourcePatients)
	}
	return patient, nil
}
