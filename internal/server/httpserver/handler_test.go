package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/config"
	"github.com/dmitrijs2005/accountkeeper/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeAccounts struct {
	signupIn  services.SignupInput
	signupID  string
	signupErr error

	loginOut *services.LoginResult
	loginErr error

	resetToken string
	requestErr error

	resetErr error

	panicOn string
}

func (f *fakeAccounts) Signup(_ context.Context, in services.SignupInput) (string, error) {
	if f.panicOn == "signup" {
		panic("boom")
	}
	f.signupIn = in
	return f.signupID, f.signupErr
}

func (f *fakeAccounts) Login(context.Context, string, string) (*services.LoginResult, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeAccounts) RequestReset(context.Context, string) (string, error) {
	return f.resetToken, f.requestErr
}

func (f *fakeAccounts) ResetPassword(context.Context, string, string) error {
	return f.resetErr
}

var testAssets = fstest.MapFS{
	"index.html": {Data: []byte("<html>index</html>")},
	"app.js":     {Data: []byte("console.log(1)")},
	"css/a.css":  {Data: []byte("body{}")},
}

func newTestServer(accounts AccountService) *HTTPServer {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return NewHTTPServer(cfg, logging.Nop{}, accounts, testAssets)
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestHandlers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		fake       *fakeAccounts
		path       string
		wantStatus int
		wantErr    string
	}{
		{"signup validation", &fakeAccounts{signupErr: services.ErrSignupFieldsRequired}, "/api/signup", 400, "username, password and email required"},
		{"signup conflict", &fakeAccounts{signupErr: common.ErrorAlreadyExists}, "/api/signup", 409, "username or email already exists"},
		{"signup internal", &fakeAccounts{signupErr: common.ErrorInternal}, "/api/signup", 500, "internal"},
		{"signup unknown error", &fakeAccounts{signupErr: errors.New("db error: secret detail")}, "/api/signup", 500, "internal"},
		{"login validation", &fakeAccounts{loginErr: services.ErrLoginFieldsRequired}, "/api/login", 400, "username and password required"},
		{"login unauthorized", &fakeAccounts{loginErr: services.ErrInvalidCredentials}, "/api/login", 401, "invalid credentials"},
		{"request-reset validation", &fakeAccounts{requestErr: services.ErrEmailRequired}, "/api/request-reset", 400, "email required"},
		{"request-reset not found", &fakeAccounts{requestErr: services.ErrUserNotFound}, "/api/request-reset", 404, "user not found"},
		{"reset validation", &fakeAccounts{resetErr: services.ErrResetFieldsRequired}, "/api/reset", 400, "token and new_password required"},
		{"reset invalid token", &fakeAccounts{resetErr: common.ErrInvalidToken}, "/api/reset", 400, "invalid token"},
		{"reset internal", &fakeAccounts{resetErr: common.ErrorInternal}, "/api/reset", 500, "internal"},
		{"password too long", &fakeAccounts{resetErr: services.ErrPasswordTooLong}, "/api/reset", 400, "password too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(tt.fake).Router()
			rec, body := do(t, h, http.MethodPost, tt.path, `{}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, map[string]any{"error": tt.wantErr}, body)
		})
	}
}

func TestHandlers_Success(t *testing.T) {
	fake := &fakeAccounts{
		signupID:   "id-1",
		loginOut:   &services.LoginResult{ID: "id-1", UserName: "al", Email: "a@x.com"},
		resetToken: "tok",
	}
	h := newTestServer(fake).Router()

	rec, body := do(t, h, http.MethodPost, "/api/signup",
		`{"username":"al","password":"pw1","email":"a@x.com","telephone":"555"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true, "id": "id-1"}, body)
	assert.Equal(t, services.SignupInput{UserName: "al", Password: "pw1", Email: "a@x.com", Telephone: "555"}, fake.signupIn)

	rec, body = do(t, h, http.MethodPost, "/api/login", `{"username":"al","password":"pw1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"success": true,
		"user":    map[string]any{"id": "id-1", "username": "al", "email": "a@x.com"},
	}, body)

	rec, body = do(t, h, http.MethodPost, "/api/request-reset", `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true, "reset_token": "tok"}, body)

	rec, body = do(t, h, http.MethodPost, "/api/reset", `{"token":"tok","new_password":"pw2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true}, body)
}

func TestHandlers_BadBody(t *testing.T) {
	h := newTestServer(&fakeAccounts{}).Router()

	for _, body := range []string{`{`, `[]`, `{"username":1}`, `not json`} {
		rec, out := do(t, h, http.MethodPost, "/api/login", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, map[string]any{"error": "invalid request body"}, out, body)
	}

	big := `{"username":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec, out := do(t, h, http.MethodPost, "/api/signup", big)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "invalid request body"}, out)
}

func TestHandlers_EmptyBodyReachesValidation(t *testing.T) {
	fake := &fakeAccounts{loginErr: services.ErrLoginFieldsRequired}
	h := newTestServer(fake).Router()

	rec, out := do(t, h, http.MethodPost, "/api/login", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "username and password required"}, out)
}

func TestRouter_APINotFoundAndMethod(t *testing.T) {
	h := newTestServer(&fakeAccounts{}).Router()

	rec, out := do(t, h, http.MethodPost, "/api/unknown", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"error": "not found"}, out)

	rec, out = do(t, h, http.MethodGet, "/api/login", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, map[string]any{"error": "method not allowed"}, out)
}

func TestRouter_RecoversPanics(t *testing.T) {
	h := newTestServer(&fakeAccounts{panicOn: "signup"}).Router()

	rec, out := do(t, h, http.MethodPost, "/api/signup", `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, map[string]any{"error": "internal"}, out)
}

func TestStatusFor(t *testing.T) {
	status, msg := statusFor(errors.Join(errors.New("wrapped"), common.ErrorAlreadyExists))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "username or email already exists", msg)

	status, msg = statusFor(common.ErrorValidation)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid request", msg)
}
