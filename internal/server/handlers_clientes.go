package server

import (
	"net/http"
)

// handleClientes handles GET and POST /api/clientes.
func (s *Server) handleClientes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		clientes, err := s.app.ClienteService.List(r.Context(), parseListOptions(r))
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, clientes)

	case http.MethodPost:
		var payload map[string]any
		if !DecodeJSON(w, r, &payload) {
			return
		}
		creado, err := s.app.ClienteService.Create(r.Context(), payload)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, creado)

	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleClienteByID handles GET /api/clientes/{id}.
func (s *Server) handleClienteByID(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cliente, err := s.app.ClienteService.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, cliente)
}

// handleClienteFoto handles POST /api/clientes/{id}/fotos (multipart upload).
func (s *Server) handleClienteFoto(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	file, header, err := r.FormFile("foto")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "el campo foto es requerido")
		return
	}
	defer file.Close()

	url, err := s.app.ClienteService.UploadFoto(r.Context(), id, header.Filename, file)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}
