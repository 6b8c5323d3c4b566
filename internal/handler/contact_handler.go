package handler

import (
	"net/http"

	"islet-durians/internal/model"
	"islet-durians/internal/service"

	"github.com/rs/zerolog"
)

// ContactHandler serves WhatsApp contact links.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("handler", "contact").Logger(),
	}
}

// WhatsApp handles GET /api/contact/whatsapp?product= requests.
func (h *ContactHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	writeJSON(w, http.StatusOK, model.LinkResponse{URL: h.service.OrderLink(r.URL.Query().Get("product"))})
}

// FarmTour handles GET /api/contact/farm-tour?date= requests.
func (h *ContactHandler) FarmTour(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	writeJSON(w, http.StatusOK, model.LinkResponse{URL: h.service.FarmTourLink(r.URL.Query().Get("date"))})
}
