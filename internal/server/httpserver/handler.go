package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/accountkeeper/internal/server/services"
)

// maxBodyBytes caps every API request body.
const maxBodyBytes = 1 << 20

type signupRequest struct {
	UserName  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

type loginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type requestResetRequest struct {
	Email string `json:"email"`
}

type resetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// decodeBody reads a JSON object into dst. An empty body decodes as {} so
// the missing fields are reported by validation instead.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (s *HTTPServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := s.accounts.Signup(r.Context(), services.SignupInput{
		UserName:  req.UserName,
		Password:  req.Password,
		Email:     req.Email,
		Telephone: req.Telephone,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, signupResponse{Success: true, ID: id})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := s.accounts.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User:    userView{ID: res.ID, UserName: res.UserName, Email: res.Email},
	})
}

// handleRequestReset returns the new token in the response body. There is
// no mail delivery, so the caller is trusted with it directly.
func (s *HTTPServer) handleRequestReset(w http.ResponseWriter, r *http.Request) {
	var req requestResetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := s.accounts.RequestReset(r.Context(), req.Email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestResetResponse{Success: true, ResetToken: token})
}

func (s *HTTPServer) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.accounts.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
