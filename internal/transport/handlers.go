package transport

import (
	"github.com/neurosort/neurosort-api/internal/service"
)

type PredictHandler struct {
	service service.PredictService
}

func NewPredictHandler(service service.PredictService) *PredictHandler {
	return &PredictHandler{service: service}
}
