package domain

// MaxCartValue is the largest accepted cart value in minor currency units.
// The cart_value validate tag on PriceRequest must stay in sync with it.
const MaxCartValue int64 = 1_000_000_000_000

// Venue is the merchant location a delivery starts from, with the pricing
// rules it publishes.
type Venue struct {
	Slug          string
	Location      GeoPoint
	DeliverySpecs VenueDeliverySpecs
}

// PriceRequest is a single delivery order price query.
type PriceRequest struct {
	VenueSlug    string   `json:"venue_slug"    validate:"required"`
	CartValue    int64    `json:"cart_value"    validate:"gte=0,lte=1000000000000"`
	UserLocation GeoPoint `json:"user_location"`
}

// PriceResult is the priced order. DeliveryDistance is rounded to whole
// meters for display only.
type PriceResult struct {
	TotalPrice          int64
	SmallOrderSurcharge int64
	CartValue           int64
	DeliveryFee         int64
	DeliveryDistance    int64
}
