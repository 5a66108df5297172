package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/neurosort/neurosort-api/internal/entity"
	"github.com/neurosort/neurosort-api/internal/transport/middleware"
)

func InitRoutes(predictHandler *PredictHandler, serviceName string, maxUploadBytes int64) *gin.Engine {
	router := gin.New()

	if maxUploadBytes > 0 {
		router.MaxMultipartMemory = maxUploadBytes
	}

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.Errorf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, entity.ErrorResponse{
			Error: "Internal AI prediction service failed.",
		})
	}))
	router.Use(middleware.Logger())

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, ngrok-skip-browser-warning")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Status check, always up regardless of the inference service
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, entity.StatusResponse{
			Status:  "ok",
			Service: serviceName,
		})
	})

	router.POST("/api/predict", predictHandler.Predict)

	return router
}
