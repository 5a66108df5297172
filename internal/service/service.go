package service

import (
	"context"

	"github.com/neurosort/neurosort-api/internal/entity"
)

// VisionEngine is the outbound port to the external inference service.
type VisionEngine interface {
	Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

type PredictService interface {
	Predict(ctx context.Context, prompt string, image []byte) (*entity.PredictionResult, error)
}

type predictService struct {
	engine      VisionEngine
	maxImageDim int
}

func NewPredictService(engine VisionEngine, maxImageDim int) PredictService {
	return &predictService{
		engine:      engine,
		maxImageDim: maxImageDim,
	}
}
