package server

import (
	"net/http"
	"time"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
)

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": common.GetVersion(),
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}

// handleVersion handles GET /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// parseListOptions reads the q and estado query params every listing
// endpoint supports.
func parseListOptions(r *http.Request) interfaces.ListOptions {
	return interfaces.ListOptions{
		Query:  r.URL.Query().Get("q"),
		Estado: models.NormalizeStatusFilter(r.URL.Query().Get("estado")),
	}
}
