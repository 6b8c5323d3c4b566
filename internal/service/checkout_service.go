package service

import (
	"context"
	"errors"
	"time"

	"islet-durians/internal/checkout"
	"islet-durians/internal/model"

	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	resolver    *checkout.Resolver
	fallbackURL string
	timing      checkout.Timing
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	resolver *checkout.Resolver,
	fallbackURL string,
	submitDelay, closeDelay time.Duration,
	logger zerolog.Logger,
) CheckoutService {
	if fallbackURL == "" {
		fallbackURL = checkout.DefaultFallbackURL
	}
	return &checkoutService{
		resolver:    resolver,
		fallbackURL: fallbackURL,
		timing:      checkout.NewTiming(submitDelay, closeDelay),
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// ResolveSized resolves a sized selection.
func (s *checkoutService) ResolveSized(ctx context.Context, product, size string) *model.ResolveResponse {
	res := s.resolver.ResolveSized(product, size)
	if !res.Resolved() {
		s.logger.Debug().
			Str("product", product).
			Str("size", size).
			Msg("sized selection not resolved")
	}
	return newResolveResponse(product, res)
}

// ResolveDefault resolves the sizeless link of a package product.
func (s *checkoutService) ResolveDefault(ctx context.Context, product string) *model.ResolveResponse {
	res := s.resolver.ResolveDefault(product)
	if !res.Resolved() {
		s.logger.Debug().Str("product", product).Msg("default selection not resolved")
	}
	return newResolveResponse(product, res)
}

// PaymentLink resolves the selection and chooses the link to open.
func (s *checkoutService) PaymentLink(ctx context.Context, product, size string) model.Navigation {
	res := s.resolver.Resolve(product, size)
	return s.navigate(product, res)
}

func (s *checkoutService) navigate(product string, res model.Resolution) model.Navigation {
	nav := checkout.OpenPaymentLink(res.URL, s.fallbackURL)
	if nav.Fallback {
		s.logger.Warn().
			Str("product", product).
			Str("size", res.Size).
			Str("url", res.URL).
			Msg("no usable payment link, using fallback")
	}
	return nav
}

// Apply runs one event against a dialog.
func (s *checkoutService) Apply(ctx context.Context, d checkout.Dialog, event checkout.Event) (*DialogResult, error) {
	if !event.Valid() {
		s.logger.Warn().Str("event", string(event.Type)).Msg("unknown dialog event")
		return nil, model.ErrInvalidEvent
	}

	// Only the product and size of a client dialog are trusted.
	d = checkout.Reconcile(d, s.resolver.Resolve(d.Product, d.Selection.Size))

	var (
		next checkout.Dialog
		err  error
	)

	switch event.Type {
	case checkout.EventOpen:
		next, err = checkout.Open(d, event.Product, s.resolver.Resolve(event.Product, event.Size))
	case checkout.EventSelect:
		next, err = checkout.Select(d, s.resolver.Resolve(d.Product, event.Size))
	case checkout.EventProceed:
		next, err = checkout.Proceed(d, s.navigate(d.Product, d.Selection))
	case checkout.EventComplete:
		var navErr error
		if event.Error != "" {
			navErr = errors.New(event.Error)
			s.logger.Error().
				Err(navErr).
				Str("product", d.Product).
				Str("url", d.PaymentURL).
				Msg("failed to open payment portal")
		}
		next, err = checkout.Complete(d, navErr)
	case checkout.EventClose:
		next = checkout.Close(d)
	}

	if err != nil {
		s.logger.Debug().
			Str("event", string(event.Type)).
			Str("state", string(d.State)).
			Msg("dialog transition rejected")
		return nil, err
	}

	s.logger.Debug().
		Str("event", string(event.Type)).
		Str("from", string(d.State)).
		Str("to", string(next.State)).
		Msg("dialog transition")

	return &DialogResult{
		Dialog: next,
		View:   checkout.Render(next),
		Timing: s.timing,
	}, nil
}

func newResolveResponse(product string, res model.Resolution) *model.ResolveResponse {
	return &model.ResolveResponse{
		Product:     product,
		Resolution:  res,
		Resolved:    res.Resolved(),
		ButtonLabel: checkout.ButtonLabel(res),
	}
}
