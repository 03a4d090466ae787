package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"NeuroScan/database/postgres"
	accountHandler "NeuroScan/internal/api/account/handler"
	accountRepository "NeuroScan/internal/api/account/repository"
	accountService "NeuroScan/internal/api/account/service"
	predictionHandler "NeuroScan/internal/api/prediction/handler"
	predictionService "NeuroScan/internal/api/prediction/service"
	"NeuroScan/internal/middleware"
	"NeuroScan/pkg/classifier"
	"NeuroScan/pkg/imaging"
	"NeuroScan/pkg/utils"
)

const defaultModelPath = "model/brain_tumor_classifier.onnx"

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	classifier classifier.IClassifier
	imaging    imaging.IImaging
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

// WithClassifier loads the model artifact. A load failure does NOT abort
// startup: the server comes up degraded, health reports model_loaded=false
// and predict requests are refused, while account routes keep working.
func WithClassifier() ServerOption {
	return func(s *Server) error {
		modelPath := os.Getenv("MODEL_PATH")
		if modelPath == "" {
			modelPath = filepath.FromSlash(defaultModelPath)
		}

		cl, err := classifier.New(modelPath)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to load classifier model from %s, predictions disabled: %v", modelPath, err)
			}
			return nil
		}

		if s.log != nil {
			s.log.Infof("Classifier model loaded from %s", modelPath)
		}
		s.classifier = cl
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithImaging() ServerOption {
	return func(s *Server) error {
		s.imaging = imaging.New()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	// Account Domain
	accountRepo := accountRepository.New(s.db, s.log)
	accountServices := accountService.New(s.log, accountRepo, s.utils)
	accountHandlers := accountHandler.New(s.log, accountServices, s.validator, s.middleware)

	// Prediction Domain
	predictionServices := predictionService.New(s.log, s.classifier, s.imaging, s.utils)
	predictionHandlers := predictionHandler.New(s.log, s.validator, s.middleware, predictionServices)

	s.setupHealthCheck(predictionServices)
	s.handlers = append(s.handlers, accountHandlers, predictionHandlers)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

// App exposes the underlying fiber app, mainly for tests driving requests
// through app.Test.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() {
	if err := s.engine.Shutdown(); err != nil {
		s.log.Errorf("Error shutting down fiber: %v", err)
	}
	if s.classifier != nil {
		s.classifier.Close()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.log.Errorf("Error closing database: %v", err)
		}
	}
}

func (s *Server) setupHealthCheck(ps predictionService.PredictionService) {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":       "healthy",
			"message":      "Brain Tumor Classifier API is running",
			"model_loaded": ps.ModelLoaded(),
		})
	})
}
