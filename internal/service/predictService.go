package service

import (
	"context"
	"fmt"

	"github.com/neurosort/neurosort-api/internal/entity"
	"github.com/neurosort/neurosort-api/internal/pkg/classifier"
	"github.com/neurosort/neurosort-api/internal/pkg/imageutil"
)

func (s *predictService) Predict(ctx context.Context, prompt string, image []byte) (*entity.PredictionResult, error) {
	// Декодируем загруженные байты и при необходимости уменьшаем
	prepared, mimeType, err := imageutil.Prepare(image, s.maxImageDim)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageNotDecodable, err)
	}

	// Один исходящий вызов на запрос, без ретраев
	text, err := s.engine.Generate(ctx, prompt, prepared, mimeType)
	if err != nil {
		return nil, &entity.EngineError{Err: err}
	}

	return &entity.PredictionResult{
		RawText:  text,
		Category: classifier.Resolve(text),
	}, nil
}
