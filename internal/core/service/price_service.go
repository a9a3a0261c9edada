package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
	"github.com/timbrist/backend-internship-2025/internal/core/ports"
)

type priceService struct {
	engine *PricingEngine
	venues ports.VenueGateway
	log    zerolog.Logger
}

// NewPriceService returns a PriceService that fetches venue data through
// venues and prices orders with engine.
func NewPriceService(engine *PricingEngine, venues ports.VenueGateway, log zerolog.Logger) ports.PriceService {
	return &priceService{
		engine: engine,
		venues: venues,
		log:    log,
	}
}

// Quote validates the request, fetches the venue and computes the price.
func (s *priceService) Quote(ctx context.Context, req domain.PriceRequest) (*domain.PriceResult, error) {
	// Malformed requests never reach the provider.
	if err := s.engine.Validate(req); err != nil {
		s.log.Debug().Err(err).Str("venue_slug", req.VenueSlug).Msg("price request rejected")
		return nil, err
	}

	// Any provider failure means the venue cannot be priced.
	venue, err := s.venues.FetchVenue(ctx, req.VenueSlug)
	if err != nil {
		if !errors.Is(err, domain.ErrVenueNotFound) {
			err = fmt.Errorf("%w: %v", domain.ErrVenueNotFound, err)
		}
		s.log.Warn().Err(err).Str("venue_slug", req.VenueSlug).Msg("venue data unavailable")
		return nil, fmt.Errorf("quote: %w", err)
	}

	result, err := s.engine.Compute(req, venue)
	if err != nil {
		s.log.Info().Err(err).Str("venue_slug", req.VenueSlug).Msg("order not priceable")
		return nil, fmt.Errorf("quote: %w", err)
	}

	s.log.Info().
		Str("venue_slug", req.VenueSlug).
		Int64("cart_value", result.CartValue).
		Int64("delivery_fee", result.DeliveryFee).
		Int64("distance_m", result.DeliveryDistance).
		Int64("total_price", result.TotalPrice).
		Msg("order priced")

	return &result, nil
}
