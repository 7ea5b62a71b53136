package contracts

import (
	"context"
	"patientor-service/internal/app/models"
)

type DiagnosisUsecase interface {
	FindAllDiagnoses(ctx context.Context) (models.Diagnoses, error)
}

type DiagnosisClient interface {
	FindAllDiagnoses(ctx context.Context) (models.Diagnoses, error)
}
