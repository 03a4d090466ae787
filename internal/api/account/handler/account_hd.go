package accountHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"NeuroScan/internal/api/account"
	contextPkg "NeuroScan/pkg/context"
	"NeuroScan/pkg/handlerUtil"
)

func (h *AccountHandler) HandleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req account.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.accountService.Login(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, account.MessageResponse{Message: "Login successful"})
	}
}

func (h *AccountHandler) HandleSignup(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req account.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.accountService.Register(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "signup")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, account.MessageResponse{Message: "Signup successful"})
	}
}
