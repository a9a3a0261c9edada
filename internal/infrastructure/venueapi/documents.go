package venueapi

import (
	"github.com/timbrist/backend-internship-2025/internal/core/domain"
)

// The provider publishes two documents per venue. Only the fields the
// pricing engine needs are modelled; pointers distinguish a missing field
// from a zero value so the validator can reject incomplete documents.

type staticDocument struct {
	VenueRaw *staticVenueRaw `json:"venue_raw" validate:"required"`
}

type staticVenueRaw struct {
	Location *locationDocument `json:"location" validate:"required"`
}

// locationDocument holds a GeoJSON-style coordinate pair: [longitude, latitude].
type locationDocument struct {
	Coordinates []float64 `json:"coordinates" validate:"len=2"`
}

type dynamicDocument struct {
	VenueRaw *dynamicVenueRaw `json:"venue_raw" validate:"required"`
}

type dynamicVenueRaw struct {
	DeliverySpecs *deliverySpecsDocument `json:"delivery_specs" validate:"required"`
}

type deliverySpecsDocument struct {
	OrderMinimumNoSurcharge *int64                   `json:"order_minimum_no_surcharge" validate:"required,gte=0"`
	DeliveryPricing         *deliveryPricingDocument `json:"delivery_pricing"           validate:"required"`
}

type deliveryPricingDocument struct {
	BasePrice      *int64                  `json:"base_price"      validate:"required,gte=0"`
	DistanceRanges []distanceRangeDocument `json:"distance_ranges" validate:"required,dive"`
}

type distanceRangeDocument struct {
	Min *float64 `json:"min" validate:"required,gte=0"`
	Max *float64 `json:"max" validate:"required,gte=0"`
	A   *int64   `json:"a"   validate:"required"`
	B   *int64   `json:"b"   validate:"required"`
}

// location converts the provider's [lon, lat] pair into a GeoPoint.
func (d staticDocument) location() domain.GeoPoint {
	c := d.VenueRaw.Location.Coordinates
	return domain.GeoPoint{Lat: c[1], Lon: c[0]}
}

func (d dynamicDocument) deliverySpecs() domain.VenueDeliverySpecs {
	specs := d.VenueRaw.DeliverySpecs
	ranges := make([]domain.DistanceRange, len(specs.DeliveryPricing.DistanceRanges))
	for i, r := range specs.DeliveryPricing.DistanceRanges {
		ranges[i] = domain.DistanceRange{
			Min: *r.Min,
			Max: *r.Max,
			A:   *r.A,
			B:   *r.B,
		}
	}
	return domain.VenueDeliverySpecs{
		OrderMinimumNoSurcharge: *specs.OrderMinimumNoSurcharge,
		DeliveryPricing: domain.DeliveryPricing{
			BasePrice:      *specs.DeliveryPricing.BasePrice,
			DistanceRanges: ranges,
		},
	}
}
