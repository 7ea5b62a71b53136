package middlewares

import (
	"patientor-service/internal/app/config"
	"patientor-service/internal/app/delivery/http/views"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	Renderer       *views.Renderer
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, renderer *views.Renderer, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Renderer:       renderer,
		InternalConfig: internalConfig,
	}
}
