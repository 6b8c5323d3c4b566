// Package pricing turns catalogue price tokens into display strings.
package pricing

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// PrimaryMarker tags prices that are already formatted for display.
	PrimaryMarker = "RM"

	// SecondaryMarker prefixes prices rendered from bare numeric tokens.
	SecondaryMarker = "IDR"
)

// Formatter renders price tokens. The zero value is not usable; use NewFormatter.
type Formatter struct {
	markers   []string
	secondary string
	printer   *message.Printer
}

// NewFormatter creates a formatter that passes through tokens containing any of
// markers and renders bare numbers with the secondary marker.
func NewFormatter(secondary string, markers ...string) *Formatter {
	return &Formatter{
		markers:   markers,
		secondary: secondary,
		printer:   message.NewPrinter(language.English),
	}
}

var defaultFormatter = NewFormatter(SecondaryMarker, PrimaryMarker)

// FormatPrice formats raw with the default markers.
func FormatPrice(raw string) string {
	return defaultFormatter.Format(raw)
}

// Format returns raw unchanged when it already carries a recognised marker or
// when its digits do not parse as an integer. Otherwise the digits are
// rendered with grouped thousands after the secondary marker, e.g. "IDR 8,500".
func (f *Formatter) Format(raw string) string {
	for _, m := range f.markers {
		if strings.Contains(raw, m) {
			return raw
		}
	}

	n, err := strconv.ParseInt(digitsOnly(raw), 10, 64)
	if err != nil {
		return raw
	}

	return f.secondary + " " + f.printer.Sprintf("%d", n)
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
