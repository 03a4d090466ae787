package predictionHandler

import (
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	contextPkg "NeuroScan/pkg/context"
	"NeuroScan/pkg/handlerUtil"
)

func (h *PredictionHandler) HandlePredict(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	// A missing "file" field is handled by the service as part of its input
	// validation, not as a transport failure.
	var file *multipart.FileHeader
	if f, err := ctx.FormFile("file"); err == nil {
		file = f
	}

	res, err := h.predictionService.Classify(c, file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "predict")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
