// Package checkout maps a product selection to a price and payment link and
// models the quick-checkout dialog as an explicit state value.
package checkout

import (
	"islet-durians/internal/catalog"
	"islet-durians/internal/model"
	"islet-durians/internal/pricing"
)

// Resolver resolves selections against a catalogue. It holds no mutable state.
type Resolver struct {
	catalog *catalog.Catalog
	format  func(string) string
}

// NewResolver creates a resolver over c using the default price formatter.
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{
		catalog: c,
		format:  pricing.FormatPrice,
	}
}

// ResolveSized returns the formatted price, size label and payment link for
// (product, size). An unknown product, an empty size or a size the product
// does not offer yields the zero Resolution.
func (r *Resolver) ResolveSized(product, size string) model.Resolution {
	if product == "" || size == "" {
		return model.Resolution{}
	}

	entry, ok := r.catalog.Lookup(product)
	if !ok {
		return model.Resolution{}
	}

	sp, ok := entry.Size(size)
	if !ok {
		return model.Resolution{}
	}

	return model.Resolution{
		Price: r.format(sp.Price),
		Size:  sp.Size,
		URL:   sp.PaymentURL,
	}
}

// ResolveDefault returns the sizeless payment link of a package product.
// Price and size are always empty.
func (r *Resolver) ResolveDefault(product string) model.Resolution {
	entry, ok := r.catalog.Lookup(product)
	if !ok || entry.IsSized() {
		return model.Resolution{}
	}
	return model.Resolution{URL: entry.DefaultURL}
}

// Resolve tries the sized lookup when a size is given and the default link otherwise.
func (r *Resolver) Resolve(product, size string) model.Resolution {
	if size != "" {
		return r.ResolveSized(product, size)
	}
	return r.ResolveDefault(product)
}

// Summaries lists the catalogue with display prices.
func (r *Resolver) Summaries() []model.ProductSummary {
	products := r.catalog.Products()
	out := make([]model.ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, r.summary(p))
	}
	return out
}

// Summary returns the listing for the product with the given id.
func (r *Resolver) Summary(id string) (model.ProductSummary, bool) {
	p, ok := r.catalog.LookupID(id)
	if !ok {
		return model.ProductSummary{}, false
	}
	return r.summary(p), true
}

func (r *Resolver) summary(p model.ProductEntry) model.ProductSummary {
	s := model.ProductSummary{
		ID:    p.ID,
		Name:  p.Name,
		Sized: p.IsSized(),
	}
	for _, sp := range p.Sizes {
		s.Sizes = append(s.Sizes, model.SizeSummary{Size: sp.Size, Price: r.format(sp.Price)})
	}
	if p.DefaultPrice != "" {
		s.Price = r.format(p.DefaultPrice)
	}
	return s
}

// ButtonLabel is the text of the quick-checkout control for a resolution.
func ButtonLabel(res model.Resolution) string {
	if res.Resolved() && res.Price != "" {
		return "Quick Checkout (" + res.Price + ")"
	}
	return "Quick Checkout"
}
