package domain

import "math"

// DistanceRange is one delivery fee tier. Min is inclusive, Max is exclusive
// and a Max of 0 means the range has no upper bound.
type DistanceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	A   int64   `json:"a"` // flat amount added to the base price
	B   int64   `json:"b"` // per-distance multiplier, applied as B*distance/10
}

// Unbounded reports whether the range is the open-ended last tier.
func (r DistanceRange) Unbounded() bool {
	return r.Max == 0
}

// Contains reports whether distance falls into the range.
func (r DistanceRange) Contains(distance float64) bool {
	if distance < r.Min {
		return false
	}
	return r.Unbounded() || distance < r.Max
}

// DeliveryPricing holds a venue's base delivery price and its fee tiers.
// Ranges are matched in slice order, they are never sorted.
type DeliveryPricing struct {
	BasePrice      int64           `json:"base_price"`
	DistanceRanges []DistanceRange `json:"distance_ranges"`
}

// Range returns the first range containing distance.
func (p DeliveryPricing) Range(distance float64) (DistanceRange, bool) {
	for _, r := range p.DistanceRanges {
		if r.Contains(distance) {
			return r, true
		}
	}
	return DistanceRange{}, false
}

// Fee resolves the delivery fee for an unrounded distance in meters:
//
//	base_price + a + round(b * distance / 10)
//
// Rounding is half away from zero (math.Round), so 12.5 becomes 13.
// ErrDeliveryUnavailable is returned when no range contains the distance and
// ErrPriceOverflow when the fee does not fit in int64.
func (p DeliveryPricing) Fee(distance float64) (int64, error) {
	r, ok := p.Range(distance)
	if !ok {
		return 0, ErrDeliveryUnavailable
	}
	variable := math.Round(float64(r.B) * distance / 10)
	if math.IsNaN(variable) || math.Abs(variable) > maxExactFloat {
		return 0, ErrPriceOverflow
	}
	return SumMinorUnits(p.BasePrice, r.A, int64(variable))
}

// maxExactFloat is the largest magnitude at which every integer is exactly
// representable as a float64.
const maxExactFloat = 1 << 53

// SumMinorUnits adds money amounts, returning ErrPriceOverflow instead of
// wrapping around.
func SumMinorUnits(amounts ...int64) (int64, error) {
	var total int64
	for _, v := range amounts {
		if (v > 0 && total > math.MaxInt64-v) || (v < 0 && total < math.MinInt64-v) {
			return 0, ErrPriceOverflow
		}
		total += v
	}
	return total, nil
}

// VenueDeliverySpecs is the pricing configuration published by a venue.
type VenueDeliverySpecs struct {
	OrderMinimumNoSurcharge int64           `json:"order_minimum_no_surcharge"`
	DeliveryPricing         DeliveryPricing `json:"delivery_pricing"`
}

// SmallOrderSurcharge returns the amount needed to lift cartValue up to the
// venue minimum. Never negative.
func SmallOrderSurcharge(cartValue, orderMinimumNoSurcharge int64) int64 {
	if cartValue >= orderMinimumNoSurcharge {
		return 0
	}
	return orderMinimumNoSurcharge - cartValue
}
