package catalog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DefaultSizeKey marks the single sizeless payment link of a package product.
const DefaultSizeKey = "default"

// Source is the data-entry shape of a catalogue: payment links and prices are
// maintained as two tables keyed by product name and then size label. Aliases
// map alternative product spellings to their canonical name.
type Source struct {
	Aliases      map[string]string            `json:"aliases,omitempty"`
	PaymentLinks map[string]map[string]string `json:"paymentLinks"`
	Prices       map[string]map[string]string `json:"prices"`
}

// Decode reads a JSON catalogue source, transparently gunzipping when
// compressed is true.
func Decode(r io.Reader, compressed bool) (*Source, error) {
	if compressed {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	var src Source
	if err := json.NewDecoder(r).Decode(&src); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue source: %w", err)
	}

	return &src, nil
}

// Encode writes src as indented JSON, gzip-compressed when compressed is true.
func Encode(w io.Writer, src *Source, compressed bool) error {
	if compressed {
		gz := gzip.NewWriter(w)
		if err := encodeJSON(gz, src); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	}
	return encodeJSON(w, src)
}

func encodeJSON(w io.Writer, src *Source) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(src); err != nil {
		return fmt.Errorf("failed to encode catalogue source: %w", err)
	}
	return nil
}

// isCompressed reports whether a location names a gzip file.
func isCompressed(location string) bool {
	return strings.HasSuffix(location, ".gz")
}
