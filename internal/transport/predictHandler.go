package transport

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/neurosort/neurosort-api/internal/entity"
)

func (h *PredictHandler) Predict(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "No image file provided"})
		return
	}

	prompt := strings.TrimSpace(c.PostForm("prompt"))
	if prompt == "" {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{Error: "No text prompt provided"})
		return
	}

	requestID := uuid.New().String()
	log := logrus.WithField("request_id", requestID)

	src, err := file.Open()
	if err != nil {
		log.Errorf("failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Internal AI prediction service failed."})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Errorf("failed to read uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Internal AI prediction service failed."})
		return
	}

	log.WithFields(logrus.Fields{
		"prompt":     prompt,
		"image_size": len(data),
	}).Info("Received image and prompt, sending request to Gemini")

	result, err := h.service.Predict(c.Request.Context(), prompt, data)
	if err != nil {
		var engineErr *entity.EngineError
		if errors.As(err, &engineErr) {
			log.Errorf("Gemini API error: %v", engineErr.Err)
			c.JSON(http.StatusInternalServerError, entity.ErrorResponse{
				Error: "Gemini API service failed: " + engineErr.Err.Error(),
			})
			return
		}

		log.Errorf("prediction failed: %v", err)
		c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: "Internal AI prediction service failed."})
		return
	}

	log.WithFields(logrus.Fields{
		"category": result.Category,
		"snippet":  snippet(result.RawText, 50),
	}).Info("Prediction complete")

	c.JSON(http.StatusOK, entity.PredictResponse{
		Success:    true,
		Prediction: result.RawText,
		Category:   result.Category,
	})
}

func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
