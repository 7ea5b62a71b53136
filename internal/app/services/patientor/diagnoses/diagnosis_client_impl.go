package diagnoses

import (
	"context"
	"errors"
	"io"
	"net/http"
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

type diagnosisClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewDiagnosisClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.DiagnosisClient {
	return &diagnosisClient{
		BaseUrl:    baseUrl + constvars.ResourceDiagnoses,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *diagnosisClient) FindAllDiagnoses(ctx context.Context) (models.Diagnoses, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("diagnosisClient.FindAllDiagnoses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("diagnosisClient.FindAllDiagnoses error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.RecordBackendRequest("FindAllDiagnoses", 0, time.Since(start))
		c.Log.Error("diagnosisClient.FindAllDiagnoses error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	metrics.RecordBackendRequest("FindAllDiagnoses", resp.StatusCode, time.Since(start))

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("diagnosisClient.FindAllDiagnoses error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		backendErr := exceptions.ErrBackendRejected(resp.StatusCode, constvars.ResourceDiagnoses, bodyBytes)
		c.Log.Error("diagnosisClient.FindAllDiagnoses backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return nil, backendErr
	}

	var diagnoses models.Diagnoses
	err = json.Unmarshal(bodyBytes, &diagnoses)
	if err != nil {
		c.Log.Error("diagnosisClient.FindAllDiagnoses error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDiagnoses)
	}

	for _, diagnosis := range diagnoses {
		if err := utils.ValidateStruct(diagnosis); err != nil {
			c.Log.Error("diagnosisClient.FindAllDiagnoses contract violation",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrBackendContractViolation(errors.New(exceptions.FormatFirstValidationError(err)), constvars.ResourceDiagnoses)
		}
	}

	c.Log.Info("diagnosisClient.FindAllDiagnoses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDiagnosisCountKey, len(diagnoses)),
	)
	return diagnoses, nil
}
