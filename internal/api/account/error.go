package account

import (
	"net/http"

	"NeuroScan/pkg/response"
)

var (
	// ErrInvalidCredentials covers both an unknown hospital id and a wrong
	// password; the two cases are deliberately indistinguishable to clients.
	ErrInvalidCredentials = response.NewError(http.StatusUnauthorized, "invalid credentials")

	ErrHospitalIDAlreadyRegistered = response.NewError(http.StatusConflict, "hospital id already registered")

	// ErrAccountNotFound never leaves the service layer.
	ErrAccountNotFound = response.NewError(http.StatusNotFound, "account not found")
)
