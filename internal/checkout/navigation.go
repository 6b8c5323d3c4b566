package checkout

import (
	"net/url"
	"strings"

	"islet-durians/internal/model"
)

// DefaultFallbackURL is opened when a selection carries no usable payment link.
const DefaultFallbackURL = "https://buy.stripe.com/test_dRm8wR3x48x630g4N00Ba00"

// OpenPaymentLink chooses the URL to open for raw. Empty or malformed links,
// including non-http(s) schemes and links without a host, are replaced by
// fallback.
func OpenPaymentLink(raw, fallback string) model.Navigation {
	if ValidLink(raw) {
		return model.Navigation{URL: strings.TrimSpace(raw)}
	}
	return model.Navigation{URL: fallback, Fallback: true}
}

// ValidLink reports whether raw is an absolute http or https URL.
func ValidLink(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
