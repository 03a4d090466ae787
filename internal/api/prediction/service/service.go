package predictionService

import (
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"NeuroScan/internal/api/prediction"
	"NeuroScan/pkg/classifier"
	"NeuroScan/pkg/imaging"
	"NeuroScan/pkg/utils"
)

type PredictionService interface {
	Classify(c context.Context, file *multipart.FileHeader) (prediction.PredictResponse, error)
	ModelLoaded() bool
}

type predictionService struct {
	log        *logrus.Logger
	classifier classifier.IClassifier
	imaging    imaging.IImaging
	utils      utils.IUtils
}

// New wires the classify pipeline. A nil classifier puts the service in the
// degraded state: every Classify call fails fast with ErrModelNotLoaded.
func New(log *logrus.Logger, cl classifier.IClassifier, img imaging.IImaging, utils utils.IUtils) PredictionService {
	return &predictionService{
		log:        log,
		classifier: cl,
		imaging:    img,
		utils:      utils,
	}
}

func (s *predictionService) ModelLoaded() bool {
	return s.classifier != nil
}
