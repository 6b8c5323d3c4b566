package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"islet-durians/internal/checkout"
	"islet-durians/internal/model"
	"islet-durians/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles quick-checkout HTTP requests.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// DialogRequest is the body of POST /api/checkout/dialog.
type DialogRequest struct {
	Dialog checkout.Dialog `json:"dialog"`
	Event  checkout.Event  `json:"event"`
}

// Resolve handles GET /api/checkout/resolve?product=&size= requests.
// Unresolved selections are reported in the body, not as errors.
func (h *CheckoutHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	q := r.URL.Query()
	writeJSON(w, http.StatusOK, h.service.ResolveSized(r.Context(), q.Get("product"), q.Get("size")))
}

// Default handles GET /api/checkout/default?product= requests.
func (h *CheckoutHandler) Default(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.ResolveDefault(r.Context(), r.URL.Query().Get("product")))
}

// Pay handles GET /api/checkout/pay?product=&size= by redirecting to the
// payment link of the selection, or to the fallback link.
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	q := r.URL.Query()
	nav := h.service.PaymentLink(r.Context(), q.Get("product"), q.Get("size"))

	w.Header().Set("X-Checkout-Fallback", strconv.FormatBool(nav.Fallback))
	http.Redirect(w, r, nav.URL, http.StatusSeeOther)
}

// Dialog handles POST /api/checkout/dialog requests.
func (h *CheckoutHandler) Dialog(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}

	var req DialogRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.Event.Type == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "event.type is required", h.logger)
		return
	}

	result, err := h.service.Apply(r.Context(), req.Dialog, req.Event)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
