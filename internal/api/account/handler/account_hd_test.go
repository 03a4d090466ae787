package accountHandler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"NeuroScan/internal/api/account"
	"NeuroScan/internal/middleware"
)

type fakeAccountService struct {
	loginErr    error
	registerErr error
}

func (f *fakeAccountService) Login(_ context.Context, _ account.LoginRequest) error {
	return f.loginErr
}

func (f *fakeAccountService) Register(_ context.Context, _ account.SignupRequest) error {
	return f.registerErr
}

func newTestApp(svc *fakeAccountService) *fiber.App {
	app := fiber.New()
	logger := logrus.New()
	h := New(logger, svc, validator.New(), middleware.New(logger))
	h.Start(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestHandleLoginSuccess(t *testing.T) {
	app := newTestApp(&fakeAccountService{})

	resp, body := postJSON(t, app, "/login", `{"hospital_id":"HSP-001","password":"secret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Login successful", body["message"])
}

func TestHandleLoginInvalidCredentials(t *testing.T) {
	app := newTestApp(&fakeAccountService{loginErr: account.ErrInvalidCredentials})

	resp, body := postJSON(t, app, "/login", `{"hospital_id":"HSP-001","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "invalid credentials", body["error"])
}

func TestHandleLoginMissingFields(t *testing.T) {
	app := newTestApp(&fakeAccountService{})

	resp, body := postJSON(t, app, "/login", `{"hospital_id":"HSP-001"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestHandleSignupSuccess(t *testing.T) {
	app := newTestApp(&fakeAccountService{})

	resp, body := postJSON(t, app, "/signup",
		`{"hospital_id":"HSP-001","password":"secret","hospital_name":"General Hospital","phone_number":"0811111111"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Signup successful", body["message"])
}

func TestHandleSignupDuplicate(t *testing.T) {
	app := newTestApp(&fakeAccountService{registerErr: account.ErrHospitalIDAlreadyRegistered})

	resp, body := postJSON(t, app, "/signup",
		`{"hospital_id":"HSP-001","password":"secret","hospital_name":"General Hospital","phone_number":"0811111111"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "hospital id already registered", body["error"])
}

func TestHandleSignupMissingFields(t *testing.T) {
	app := newTestApp(&fakeAccountService{})

	resp, _ := postJSON(t, app, "/signup", `{"hospital_id":"HSP-001","password":"secret"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
