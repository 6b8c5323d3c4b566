// Package catalog holds the static product catalogue: the canonical,
// immutable mapping from product name to sized pricing or a single default
// payment link, and the loaders that produce it at startup.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"islet-durians/internal/model"

	"github.com/gosimple/slug"
)

// ErrEmptyCatalog is returned by Build when reconciliation leaves no products.
var ErrEmptyCatalog = errors.New("catalogue has no usable products")

// IssueKind classifies a data-entry defect found while building a catalogue.
type IssueKind string

const (
	IssuePriceWithoutLink IssueKind = "price_without_link"
	IssueLinkWithoutPrice IssueKind = "link_without_price"
	IssueEmptyURL         IssueKind = "empty_url"
	IssueEmptyPrice       IssueKind = "empty_price"
	IssueNoPricing        IssueKind = "no_pricing"
	IssueDefaultAndSized  IssueKind = "default_and_sized"
	IssueAliasConflict    IssueKind = "alias_conflict"
	IssueDuplicateID      IssueKind = "duplicate_id"
)

// Issue describes one reconciliation defect. Issues never abort a build.
type Issue struct {
	Product string    `json:"product"`
	Size    string    `json:"size,omitempty"`
	Kind    IssueKind `json:"kind"`
	Detail  string    `json:"detail"`
}

// Catalog is the reconciled catalogue. It is never mutated after Build and is
// safe for concurrent use.
type Catalog struct {
	products []model.ProductEntry
	byName   map[string]int
	byID     map[string]int
}

// Build reconciles src into a Catalog. Aliases are applied to both tables, each
// size is kept only when it has both a price and a link, and products left
// without any pricing are dropped. Every discarded datum is reported as an Issue.
func Build(src *Source) (*Catalog, []Issue, error) {
	if src == nil {
		return nil, nil, ErrEmptyCatalog
	}

	var issues []Issue
	links := canonicalise(src.PaymentLinks, src.Aliases, &issues)
	prices := canonicalise(src.Prices, src.Aliases, &issues)

	names := make([]string, 0, len(links)+len(prices))
	seen := make(map[string]struct{}, len(links)+len(prices))
	for _, table := range []map[string]map[string]string{links, prices} {
		for name := range table {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	c := &Catalog{
		byName: make(map[string]int, len(names)),
		byID:   make(map[string]int, len(names)),
	}

	for _, name := range names {
		entry, ok := buildEntry(name, links[name], prices[name], &issues)
		if !ok {
			continue
		}

		if _, dup := c.byID[entry.ID]; dup {
			issues = append(issues, Issue{
				Product: name,
				Kind:    IssueDuplicateID,
				Detail:  fmt.Sprintf("id %q already used by another product", entry.ID),
			})
			continue
		}

		c.byName[name] = len(c.products)
		c.byID[entry.ID] = len(c.products)
		c.products = append(c.products, entry)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Product != issues[j].Product {
			return issues[i].Product < issues[j].Product
		}
		return issues[i].Size < issues[j].Size
	})

	if len(c.products) == 0 {
		return nil, issues, ErrEmptyCatalog
	}

	return c, issues, nil
}

func buildEntry(name string, links, prices map[string]string, issues *[]Issue) (model.ProductEntry, bool) {
	entry := model.ProductEntry{
		ID:   Slug(name),
		Name: name,
	}

	for size, url := range links {
		if size == DefaultSizeKey {
			continue
		}
		price, ok := prices[size]
		switch {
		case !ok:
			*issues = append(*issues, Issue{Product: name, Size: size, Kind: IssueLinkWithoutPrice, Detail: "size has a payment link but no price"})
		case strings.TrimSpace(url) == "":
			*issues = append(*issues, Issue{Product: name, Size: size, Kind: IssueEmptyURL, Detail: "size has an empty payment link"})
		case strings.TrimSpace(price) == "":
			*issues = append(*issues, Issue{Product: name, Size: size, Kind: IssueEmptyPrice, Detail: "size has an empty price"})
		default:
			entry.Sizes = append(entry.Sizes, model.SizedPrice{Size: size, Price: price, PaymentURL: url})
		}
	}

	for size := range prices {
		if size == DefaultSizeKey {
			continue
		}
		if _, ok := links[size]; !ok {
			*issues = append(*issues, Issue{Product: name, Size: size, Kind: IssuePriceWithoutLink, Detail: "size has a price but no payment link"})
		}
	}

	sortSizes(entry.Sizes)

	defaultURL := strings.TrimSpace(links[DefaultSizeKey])
	if entry.IsSized() {
		if defaultURL != "" {
			*issues = append(*issues, Issue{Product: name, Kind: IssueDefaultAndSized, Detail: "default link ignored for a sized product"})
		}
		return entry, true
	}

	if defaultURL == "" {
		*issues = append(*issues, Issue{Product: name, Kind: IssueNoPricing, Detail: "product has neither sized pricing nor a default link"})
		return model.ProductEntry{}, false
	}

	entry.DefaultURL = defaultURL
	entry.DefaultPrice = prices[DefaultSizeKey]
	return entry, true
}

// canonicalise rewrites table keys through aliases. Keys and alias targets
// are compared trimmed. When both an alias and its canonical name are present
// the canonical entry wins; when several aliases share a canonical name the
// first in key order wins. Every ignored alias is reported.
func canonicalise(table map[string]map[string]string, aliases map[string]string, issues *[]Issue) map[string]map[string]string {
	out := make(map[string]map[string]string, len(table))

	keys := make([]string, 0, len(table))
	present := make(map[string]struct{}, len(table))
	for k := range table {
		keys = append(keys, k)
		present[strings.TrimSpace(k)] = struct{}{}
	}
	sort.Strings(keys)

	claimedBy := make(map[string]string)
	for _, key := range keys {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		canonical, aliased := aliases[name]
		canonical = strings.TrimSpace(canonical)
		if !aliased || canonical == "" || canonical == name {
			if _, exists := out[name]; !exists {
				out[name] = table[key]
			}
			continue
		}
		if _, clash := present[canonical]; clash {
			*issues = append(*issues, Issue{
				Product: canonical,
				Kind:    IssueAliasConflict,
				Detail:  fmt.Sprintf("alias %q ignored, canonical entry present", name),
			})
			continue
		}
		if first, taken := claimedBy[canonical]; taken {
			*issues = append(*issues, Issue{
				Product: canonical,
				Kind:    IssueAliasConflict,
				Detail:  fmt.Sprintf("alias %q ignored, alias %q already maps to it", name, first),
			})
			continue
		}
		claimedBy[canonical] = name
		out[canonical] = table[key]
	}

	return out
}

// sortSizes orders sizes by their leading quantity, then by label.
func sortSizes(sizes []model.SizedPrice) {
	sort.Slice(sizes, func(i, j int) bool {
		wi, wj := sizeWeight(sizes[i].Size), sizeWeight(sizes[j].Size)
		if wi != wj {
			return wi < wj
		}
		return sizes[i].Size < sizes[j].Size
	})
}

func sizeWeight(label string) float64 {
	end := 0
	for end < len(label) && (label[end] == '.' || (label[end] >= '0' && label[end] <= '9')) {
		end++
	}
	w, err := strconv.ParseFloat(label[:end], 64)
	if err != nil {
		return 0
	}
	return w
}

// Lookup returns the product registered under name.
func (c *Catalog) Lookup(name string) (model.ProductEntry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.ProductEntry{}, false
	}
	return clone(c.products[i]), true
}

// LookupID returns the product with the given slug id.
func (c *Catalog) LookupID(id string) (model.ProductEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.ProductEntry{}, false
	}
	return clone(c.products[i]), true
}

// Products returns all products ordered by name.
func (c *Catalog) Products() []model.ProductEntry {
	out := make([]model.ProductEntry, len(c.products))
	for i, p := range c.products {
		out[i] = clone(p)
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Source converts the catalogue back into its data-entry shape.
func (c *Catalog) Source() *Source {
	src := &Source{
		PaymentLinks: make(map[string]map[string]string, len(c.products)),
		Prices:       make(map[string]map[string]string, len(c.products)),
	}
	for _, p := range c.products {
		links := make(map[string]string, len(p.Sizes))
		if !p.IsSized() {
			links[DefaultSizeKey] = p.DefaultURL
			if p.DefaultPrice != "" {
				src.Prices[p.Name] = map[string]string{DefaultSizeKey: p.DefaultPrice}
			}
			src.PaymentLinks[p.Name] = links
			continue
		}
		prices := make(map[string]string, len(p.Sizes))
		for _, s := range p.Sizes {
			links[s.Size] = s.PaymentURL
			prices[s.Size] = s.Price
		}
		src.PaymentLinks[p.Name] = links
		src.Prices[p.Name] = prices
	}
	return src
}

func clone(p model.ProductEntry) model.ProductEntry {
	if p.Sizes != nil {
		p.Sizes = append([]model.SizedPrice(nil), p.Sizes...)
	}
	return p
}

// Slug derives a URL-safe id from a product name.
func Slug(name string) string {
	return slug.Make(name)
}
