package predictionHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	predictionService "NeuroScan/internal/api/prediction/service"
	"NeuroScan/internal/middleware"
)

type PredictionHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	predictionService predictionService.PredictionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps predictionService.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		predictionService: ps,
	}
}

func (h *PredictionHandler) Start(srv fiber.Router) {
	srv.Post("/predict", h.middleware.NewRateLimiter, h.HandlePredict)
}
