package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/server/services"
)

const msgInternal = "internal"

type errorResponse struct {
	Error string `json:"error"`
}

type signupResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type userView struct {
	ID       string `json:"id"`
	UserName string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Success bool     `json:"success"`
	User    userView `json:"user"`
}

type requestResetResponse struct {
	Success    bool   `json:"success"`
	ResetToken string `json:"reset_token"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// errorMapping lists service failures in match order. More specific entries
// come before the class they wrap.
var errorMapping = []struct {
	err    error
	status int
	msg    string
}{
	{services.ErrSignupFieldsRequired, http.StatusBadRequest, "username, password and email required"},
	{services.ErrLoginFieldsRequired, http.StatusBadRequest, "username and password required"},
	{services.ErrEmailRequired, http.StatusBadRequest, "email required"},
	{services.ErrResetFieldsRequired, http.StatusBadRequest, "token and new_password required"},
	{services.ErrPasswordTooLong, http.StatusBadRequest, "password too long"},
	{common.ErrorValidation, http.StatusBadRequest, "invalid request"},
	{common.ErrorAlreadyExists, http.StatusConflict, "username or email already exists"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{common.ErrorUnauthorized, http.StatusUnauthorized, "invalid credentials"},
	{services.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{common.ErrInvalidToken, http.StatusBadRequest, "invalid token"},
}

// statusFor maps err to a status code and a client-safe message. Anything not
// listed in errorMapping is an internal error.
func statusFor(err error) (int, string) {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, msgInternal
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
