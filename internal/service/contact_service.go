package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const defaultOrderProduct = "durian products"

// contactService implements ContactService.
type contactService struct {
	number string
	name   string
	shop   string
	logger zerolog.Logger
}

// NewContactService creates a contact service for the seller reachable at number.
func NewContactService(number, name, shop string, logger zerolog.Logger) ContactService {
	return &contactService{
		number: number,
		name:   name,
		shop:   shop,
		logger: logger.With().Str("service", "contact").Logger(),
	}
}

// OrderLink returns a WhatsApp link asking to order product.
func (s *contactService) OrderLink(product string) string {
	product = strings.TrimSpace(product)
	if product == "" {
		product = defaultOrderProduct
	}

	msg := fmt.Sprintf(
		"Hi %s! I would like to order %s from %s. Please provide more details about availability and delivery.",
		s.name, product, s.shop,
	)

	s.logger.Debug().Str("product", product).Msg("built order link")

	return s.link(msg)
}

// FarmTourLink returns a WhatsApp link asking to book a farm tour, with an
// optional preferred date.
func (s *contactService) FarmTourLink(date string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! I would like to book a farm tour at %s.", s.name, s.shop)
	if date = strings.TrimSpace(date); date != "" {
		fmt.Fprintf(&b, " I prefer the date: %s.", date)
	}
	b.WriteString(" Please confirm availability and provide more details.")

	s.logger.Debug().Str("date", date).Msg("built farm tour link")

	return s.link(b.String())
}

// link builds the wa.me URL. Spaces are encoded as %20, not +.
func (s *contactService) link(msg string) string {
	text := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return "https://wa.me/" + s.number + "?text=" + text
}
