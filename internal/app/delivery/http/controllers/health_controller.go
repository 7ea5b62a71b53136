package controllers

import (
	"context"
	"net/http"
	"patientor-service/internal/app/config"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/dto/responses"
	"patientor-service/internal/pkg/utils"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	healthStatusHealthy   = "healthy"
	redisStatusUp         = "up"
	redisStatusDown       = "down"
	redisStatusDisabled   = "disabled"
	healthResponseMessage = "service is running"
)

type HealthController struct {
	Log            *zap.Logger
	Redis          *redis.Client
	InternalConfig *config.InternalConfig
}

// NewHealthController reports liveness. redisClient may be nil when the
// diagnosis cache is disabled.
func NewHealthController(logger *zap.Logger, redisClient *redis.Client, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:            logger,
		Redis:          redisClient,
		InternalConfig: internalConfig,
	}
}

// Check always answers 200; a Redis outage only degrades caching.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	redisStatus := redisStatusDisabled
	if ctrl.Redis != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		redisStatus = redisStatusUp
		if err := ctrl.Redis.Ping(ctx).Err(); err != nil {
			ctrl.Log.Warn("HealthController.Check redis ping failed",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
				zap.Error(err),
			)
			redisStatus = redisStatusDown
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, healthResponseMessage, responses.Health{
		Status:  healthStatusHealthy,
		Version: ctrl.InternalConfig.App.Version,
		Redis:   redisStatus,
	})
}
