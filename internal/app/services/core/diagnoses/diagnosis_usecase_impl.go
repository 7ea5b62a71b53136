package diagnoses

import (
	"context"
	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/models"
	"patientor-service/internal/app/services/shared/metrics"
	"patientor-service/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type diagnosisUsecase struct {
	DiagnosisClient contracts.DiagnosisClient
	RedisRepository contracts.RedisRepository
	CacheTTL        time.Duration
	Log             *zap.Logger
}

// NewDiagnosisUsecase serves the diagnosis catalog through a cache-aside
// layer. A nil redisRepository disables caching.
func NewDiagnosisUsecase(
	diagnosisClient contracts.DiagnosisClient,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.DiagnosisUsecase {
	return &diagnosisUsecase{
		DiagnosisClient: diagnosisClient,
		RedisRepository: redisRepository,
		CacheTTL:        cacheTTL,
		Log:             logger,
	}
}

// FindAllDiagnoses returns a fresh catalog snapshot. Cache failures are
// logged and fall through to the backend.
func (uc *diagnosisUsecase) FindAllDiagnoses(ctx context.Context) (models.Diagnoses, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("diagnosisUsecase.FindAllDiagnoses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if diagnoses, ok := uc.findCached(ctx, requestID); ok {
		return diagnoses, nil
	}

	diagnoses, err := uc.DiagnosisClient.FindAllDiagnoses(ctx)
	if err != nil {
		uc.Log.Error("diagnosisUsecase.FindAllDiagnoses error fetching data from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.RedisRepository != nil {
		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyDiagnosisCatalog, diagnoses, uc.CacheTTL)
		if err != nil {
			uc.Log.Warn("diagnosisUsecase.FindAllDiagnoses error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, constvars.RedisKeyDiagnosisCatalog),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("diagnosisUsecase.FindAllDiagnoses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDiagnosisCountKey, len(diagnoses)),
	)
	return diagnoses, nil
}

func (uc *diagnosisUsecase) findCached(ctx context.Context, requestID string) (models.Diagnoses, bool) {
	if uc.RedisRepository == nil {
		return nil, false
	}

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyDiagnosisCatalog)
	if err != nil {
		uc.Log.Warn("diagnosisUsecase.FindAllDiagnoses error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, constvars.RedisKeyDiagnosisCatalog),
			zap.Error(err),
		)
		return nil, false
	}
	if cached == "" {
		metrics.RecordDiagnosisCacheLookup(false)
		return nil, false
	}

	var diagnoses models.Diagnoses
	if err := json.Unmarshal([]byte(cached), &diagnoses); err != nil {
		uc.Log.Warn("diagnosisUsecase.FindAllDiagnoses discarding undecodable cache value",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyDiagnosisCatalog); err != nil {
			uc.Log.Warn("diagnosisUsecase.FindAllDiagnoses error deleting cache value",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, false
	}

	metrics.RecordDiagnosisCacheLookup(true)
	uc.Log.Info("diagnosisUsecase.FindAllDiagnoses served from Redis",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDiagnosisCountKey, len(diagnoses)),
	)
	return diagnoses, true
}
