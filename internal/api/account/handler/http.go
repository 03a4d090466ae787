package accountHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	accountService "NeuroScan/internal/api/account/service"
	"NeuroScan/internal/middleware"
)

type AccountHandler struct {
	log            *logrus.Logger
	accountService accountService.AccountService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	as accountService.AccountService,
	validate *validator.Validate,
	middleware middleware.Middleware) *AccountHandler {
	return &AccountHandler{
		log:            log,
		accountService: as,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *AccountHandler) Start(srv fiber.Router) {
	srv.Post("/login", h.HandleLogin)
	srv.Post("/signup", h.HandleSignup)
}
