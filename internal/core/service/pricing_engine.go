package service

import (
	"fmt"
	"math"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
)

// PricingEngine turns a validated request and already-fetched venue data into
// a priced order. It performs no I/O and keeps no per-request state, so a
// single instance is shared by all requests.
type PricingEngine struct {
	validator *requestValidator
}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{validator: newRequestValidator()}
}

// Validate checks the request shape. It must run before the venue is
// fetched so malformed requests never reach the provider.
func (e *PricingEngine) Validate(req domain.PriceRequest) error {
	if err := e.validator.Validate(req); err != nil {
		return domain.NewInvalidInput(err.Error())
	}
	return nil
}

// Compute prices the order. Failures are returned in this precedence:
// invalid input, missing venue, delivery unavailable.
func (e *PricingEngine) Compute(req domain.PriceRequest, venue *domain.Venue) (domain.PriceResult, error) {
	if err := e.Validate(req); err != nil {
		return domain.PriceResult{}, err
	}
	if venue == nil {
		return domain.PriceResult{}, domain.ErrVenueNotFound
	}

	// The unrounded distance selects the tier; rounding first could move a
	// distance such as 1999.6 across a range boundary.
	distance := domain.Distance(req.UserLocation, venue.Location)

	fee, err := venue.DeliverySpecs.DeliveryPricing.Fee(distance)
	if err != nil {
		return domain.PriceResult{}, fmt.Errorf("venue %q at %.0fm: %w", venue.Slug, distance, err)
	}

	surcharge := domain.SmallOrderSurcharge(req.CartValue, venue.DeliverySpecs.OrderMinimumNoSurcharge)

	total, err := domain.SumMinorUnits(req.CartValue, fee, surcharge)
	if err != nil {
		return domain.PriceResult{}, fmt.Errorf("venue %q total: %w", venue.Slug, err)
	}

	return domain.PriceResult{
		TotalPrice:          total,
		SmallOrderSurcharge: surcharge,
		CartValue:           req.CartValue,
		DeliveryFee:         fee,
		DeliveryDistance:    int64(math.Round(distance)),
	}, nil
}
