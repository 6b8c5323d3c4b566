package model

// SizedPrice is the price and payment link of one size of a product.
// Price and link are kept together so a size resolves in both or in neither.
type SizedPrice struct {
	Size       string `json:"size"`
	Price      string `json:"price"`
	PaymentURL string `json:"-"`
}

// ProductEntry represents a durian product or package in the catalogue.
// Exactly one of Sizes or DefaultURL is set.
type ProductEntry struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Sizes        []SizedPrice `json:"sizes,omitempty"`
	DefaultURL   string       `json:"-"`
	DefaultPrice string       `json:"defaultPrice,omitempty"`
}

// IsSized reports whether the product is priced per size.
func (p *ProductEntry) IsSized() bool {
	return len(p.Sizes) > 0
}

// Size returns the pricing for the given size label.
func (p *ProductEntry) Size(label string) (SizedPrice, bool) {
	for _, s := range p.Sizes {
		if s.Size == label {
			return s, true
		}
	}
	return SizedPrice{}, false
}

// ProductSummary is the public listing representation of a ProductEntry.
type ProductSummary struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Sized bool          `json:"sized"`
	Sizes []SizeSummary `json:"sizes,omitempty"`
	Price string        `json:"price,omitempty"`
}

// SizeSummary is a size option with its display price.
type SizeSummary struct {
	Size  string `json:"size"`
	Price string `json:"price"`
}
