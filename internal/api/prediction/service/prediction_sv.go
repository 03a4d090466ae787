package predictionService

import (
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"NeuroScan/internal/api/prediction"
	"NeuroScan/internal/entity"
	contextPkg "NeuroScan/pkg/context"
	"NeuroScan/pkg/response"
	"NeuroScan/pkg/utils"
)

// Classify runs the upload through the full pipeline: presence and extension
// checks, model availability, decode and normalization, inference, and result
// derivation. Validation rejects before any decode work so malformed requests
// never reach the model. The image is never persisted.
func (s *predictionService) Classify(ctx context.Context, file *multipart.FileHeader) (prediction.PredictResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if file == nil {
		return prediction.PredictResponse{}, prediction.ErrNoFileUploaded
	}
	if file.Filename == "" {
		return prediction.PredictResponse{}, prediction.ErrNoFileSelected
	}

	if !hasSupportedExtension(file.Filename) {
		return prediction.PredictResponse{}, prediction.ErrUnsupportedFileType
	}

	if err := s.utils.ValidateImageFile(file); err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) {
			return prediction.PredictResponse{}, prediction.ErrFileTooLarge
		}
		return prediction.PredictResponse{}, predictionFailed(err)
	}

	if s.classifier == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   file.Filename,
		}).Warn("Predict request refused, model not loaded")
		return prediction.PredictResponse{}, prediction.ErrModelNotLoaded
	}

	data, err := readUpload(file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read uploaded file")
		return prediction.PredictResponse{}, predictionFailed(err)
	}

	tensor, err := s.imaging.Tensorize(data)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   file.Filename,
			"error":      err.Error(),
		}).Error("Failed to decode uploaded image")
		return prediction.PredictResponse{}, predictionFailed(err)
	}

	scores, err := s.classifier.Predict(ctx, tensor)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   file.Filename,
			"error":      err.Error(),
		}).Error("Inference failed")
		return prediction.PredictResponse{}, predictionFailed(err)
	}

	res := deriveResult(scores)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"filename":   file.Filename,
		"class":      res.Class,
		"confidence": res.Confidence,
	}).Info("Classification complete")

	return res, nil
}

func hasSupportedExtension(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".png") ||
		strings.HasSuffix(name, ".jpg") ||
		strings.HasSuffix(name, ".jpeg")
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// deriveResult turns the raw score vector into the named prediction. Argmax
// uses strict greater-than, so an exact tie resolves to the label that comes
// first in entity.ClassLabels.
func deriveResult(scores []float32) prediction.PredictResponse {
	maxIdx := 0
	maxVal := scores[0]
	for i, v := range scores {
		if i < len(entity.ClassLabels) && v > maxVal {
			maxVal = v
			maxIdx = i
		}
	}

	confidence := math.Round(float64(maxVal)*10000) / 100
	label := entity.ClassLabels[maxIdx]

	return prediction.PredictResponse{
		Result:     fmt.Sprintf("%s (%s%% confidence)", label, formatConfidence(confidence)),
		Class:      label,
		Confidence: confidence,
	}
}

// formatConfidence renders the rounded percentage without trailing zeros but
// always with a decimal point, so 97.42 stays "97.42" and 50 becomes "50.0".
func formatConfidence(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func predictionFailed(err error) error {
	return response.NewError(http.StatusInternalServerError, fmt.Sprintf("Prediction failed: %v", err))
}
