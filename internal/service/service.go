package service

import (
	"context"

	"islet-durians/internal/catalog"
	"islet-durians/internal/checkout"
	"islet-durians/internal/model"
)

// ProductService defines read operations over the loaded catalogue.
type ProductService interface {
	// List returns every product with display prices.
	List(ctx context.Context) []model.ProductSummary

	// GetByID retrieves a single product by its slug ID.
	GetByID(ctx context.Context, id string) (*model.ProductSummary, error)

	// Issues returns the problems found while reconciling the catalogue.
	Issues(ctx context.Context) []catalog.Issue
}

// CheckoutService defines quick-checkout operations.
type CheckoutService interface {
	// ResolveSized resolves a sized selection. Unresolved selections are not errors.
	ResolveSized(ctx context.Context, product, size string) *model.ResolveResponse

	// ResolveDefault resolves the sizeless link of a package product.
	ResolveDefault(ctx context.Context, product string) *model.ResolveResponse

	// PaymentLink chooses the link to open for a selection, substituting the
	// fallback when the selection has no usable link.
	PaymentLink(ctx context.Context, product, size string) model.Navigation

	// Apply runs one event against a dialog and returns the next dialog.
	Apply(ctx context.Context, dialog checkout.Dialog, event checkout.Event) (*DialogResult, error)
}

// ContactService builds WhatsApp links to the seller.
type ContactService interface {
	// OrderLink returns a link with a prefilled order enquiry for product.
	OrderLink(product string) string

	// FarmTourLink returns a link with a prefilled farm tour booking request.
	FarmTourLink(date string) string
}

// DialogResult is the outcome of applying an event to a dialog.
type DialogResult struct {
	Dialog checkout.Dialog `json:"dialog"`
	View   checkout.View   `json:"view"`
	Timing checkout.Timing `json:"timing"`
}
