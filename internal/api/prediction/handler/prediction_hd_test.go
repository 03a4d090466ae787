package predictionHandler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	predictionService "NeuroScan/internal/api/prediction/service"
	"NeuroScan/internal/middleware"
	"NeuroScan/pkg/classifier"
	"NeuroScan/pkg/imaging"
	"NeuroScan/pkg/utils"
)

type stubClassifier struct {
	scores []float32
}

func (s *stubClassifier) Predict(_ context.Context, _ []float32) ([]float32, error) {
	return s.scores, nil
}

func (s *stubClassifier) Close() {}

func newTestApp(cl classifier.IClassifier) *fiber.App {
	app := fiber.New()
	logger := logrus.New()
	svc := predictionService.New(logger, cl, imaging.New(), utils.New())
	h := New(logger, validator.New(), middleware.New(logger), svc)
	h.Start(app)
	return app
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.RGBA{R: 90, G: 90, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	partHeader.Set("Content-Type", contentType)
	fw, err := w.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func postPredict(t *testing.T, app *fiber.App, body io.Reader, contentType string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/predict", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestHandlePredictSuccess(t *testing.T) {
	app := newTestApp(&stubClassifier{scores: []float32{0.01, 0.9742, 0.01, 0.0058}})

	body, contentType := multipartBody(t, "scan.png", "image/png", pngImage(t))
	resp, parsed := postPredict(t, app, body, contentType)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Meningioma", parsed["class"])
	require.Equal(t, 97.42, parsed["confidence"])
	require.Equal(t, "Meningioma (97.42% confidence)", parsed["result"])
}

func TestHandlePredictNoFileField(t *testing.T) {
	app := newTestApp(&stubClassifier{scores: []float32{1, 0, 0, 0}})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "no file here"))
	require.NoError(t, w.Close())

	resp, parsed := postPredict(t, app, &buf, w.FormDataContentType())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "no file uploaded", parsed["error"])
}

func TestHandlePredictUnsupportedExtension(t *testing.T) {
	app := newTestApp(&stubClassifier{scores: []float32{1, 0, 0, 0}})

	body, contentType := multipartBody(t, "scan.gif", "image/gif", pngImage(t))
	resp, parsed := postPredict(t, app, body, contentType)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "only .png, .jpg, and .jpeg files are allowed", parsed["error"])
}

func TestHandlePredictModelNotLoaded(t *testing.T) {
	app := newTestApp(nil)

	body, contentType := multipartBody(t, "scan.png", "image/png", pngImage(t))
	resp, parsed := postPredict(t, app, body, contentType)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "model not loaded", parsed["error"])
}

func TestHandlePredictCorruptImage(t *testing.T) {
	app := newTestApp(&stubClassifier{scores: []float32{1, 0, 0, 0}})

	body, contentType := multipartBody(t, "scan.jpg", "image/jpeg", []byte("not an image"))
	resp, parsed := postPredict(t, app, body, contentType)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, parsed["error"], "Prediction failed")
}
