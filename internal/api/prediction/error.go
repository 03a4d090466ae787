package prediction

import (
	"net/http"

	"NeuroScan/pkg/response"
)

var (
	ErrNoFileUploaded      = response.NewError(http.StatusBadRequest, "no file uploaded")
	ErrNoFileSelected      = response.NewError(http.StatusBadRequest, "no file selected")
	ErrUnsupportedFileType = response.NewError(http.StatusBadRequest, "only .png, .jpg, and .jpeg files are allowed")
	ErrFileTooLarge        = response.NewError(http.StatusBadRequest, "file too large")

	// ErrModelNotLoaded means the classifier failed to load at startup; the
	// service runs degraded and refuses predictions until restarted.
	ErrModelNotLoaded = response.NewError(http.StatusInternalServerError, "model not loaded")
)
