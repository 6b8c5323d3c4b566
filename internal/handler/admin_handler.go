package handler

import (
	"net/http"

	"islet-durians/internal/catalog"
	"islet-durians/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler serves operator endpoints.
type AdminHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.ProductService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// IssuesResponse lists catalogue reconciliation issues.
type IssuesResponse struct {
	Count  int             `json:"count"`
	Issues []catalog.Issue `json:"issues"`
}

// CatalogIssues handles GET /api/admin/catalog/issues requests.
func (h *AdminHandler) CatalogIssues(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	issues := h.service.Issues(r.Context())
	writeJSON(w, http.StatusOK, IssuesResponse{Count: len(issues), Issues: issues})
}
