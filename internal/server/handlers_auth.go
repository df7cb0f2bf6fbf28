package server

import (
	"net/http"
)

// handleAuthLogin handles POST /api/auth/login. The identity provider
// issues the bearer token; the core API roster then confirms the
// employee is active before the session is accepted.
func (s *Server) handleAuthLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "email y password son requeridos")
		return
	}

	sesion, err := s.app.Identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, sesion)
}

// handleAuthLogout handles POST /api/auth/logout. Only the locally
// cached session is dropped.
func (s *Server) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	s.app.Identity.SignOut()
	WriteJSON(w, http.StatusOK, map[string]string{"status": "sesión cerrada"})
}
