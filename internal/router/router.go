package router

import (
	"net/http"

	"islet-durians/internal/handler"
	"islet-durians/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Product  *handler.ProductHandler
	Checkout *handler.CheckoutHandler
	Contact  *handler.ContactHandler
	Admin    *handler.AdminHandler
}

// Options configures the middleware chain.
type Options struct {
	// APIKey protects the admin routes. They are not registered when empty.
	APIKey        string
	AllowedOrigin string
	// RateLimiter throttles API routes per client. Nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	api := http.NewServeMux()

	// Product routes (both with and without trailing slash)
	api.HandleFunc("/api/products", h.Product.List)
	api.HandleFunc("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products/" {
			h.Product.List(w, r)
			return
		}
		h.Product.GetByID(w, r)
	})

	// Checkout routes
	api.HandleFunc("/api/checkout/resolve", h.Checkout.Resolve)
	api.HandleFunc("/api/checkout/default", h.Checkout.Default)
	api.HandleFunc("/api/checkout/pay", h.Checkout.Pay)
	api.HandleFunc("/api/checkout/dialog", h.Checkout.Dialog)

	// Contact routes
	api.HandleFunc("/api/contact/whatsapp", h.Contact.WhatsApp)
	api.HandleFunc("/api/contact/farm-tour", h.Contact.FarmTour)

	// Admin routes require an API key
	if opts.APIKey != "" && h.Admin != nil {
		api.Handle("/api/admin/catalog/issues",
			middleware.APIKeyAuth(opts.APIKey, logger)(http.HandlerFunc(h.Admin.CatalogIssues)))
	}

	api.HandleFunc("/", handler.NotFound(logger))

	var apiHandler http.Handler = api
	if opts.RateLimiter != nil {
		apiHandler = middleware.RateLimit(opts.RateLimiter, logger)(apiHandler)
	}

	mux := http.NewServeMux()

	// Health check endpoint (no authentication or rate limiting)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	mux.Handle("/", apiHandler)

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS
	var chain http.Handler = mux
	chain = middleware.CORS(opts.AllowedOrigin)(chain)
	chain = middleware.Logging(logger)(chain)
	chain = middleware.Recovery(logger)(chain)
	chain = middleware.RequestID(chain)

	return chain
}
