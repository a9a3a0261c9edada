package service

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const metersPerDegree = domain.EarthRadiusMeters * math.Pi / 180

var venueLocation = domain.GeoPoint{Lat: 60.17012143, Lon: 24.92813512}

// northOf returns the point the given number of meters due north of p.
// Along a meridian the equirectangular distance is exact.
func northOf(p domain.GeoPoint, meters float64) domain.GeoPoint {
	return domain.GeoPoint{Lat: p.Lat + meters/metersPerDegree, Lon: p.Lon}
}

func testVenue() *domain.Venue {
	return &domain.Venue{
		Slug:     "home-assignment-venue-helsinki",
		Location: venueLocation,
		DeliverySpecs: domain.VenueDeliverySpecs{
			OrderMinimumNoSurcharge: 1000,
			DeliveryPricing: domain.DeliveryPricing{
				BasePrice: 500,
				DistanceRanges: []domain.DistanceRange{
					{Min: 0, Max: 2000, A: 100, B: 2},
					{Min: 2000, Max: 5000, A: 200, B: 3},
					{Min: 5000, Max: 0, A: 300, B: 4},
				},
			},
		},
	}
}

func request(cartValue int64, at domain.GeoPoint) domain.PriceRequest {
	return domain.PriceRequest{
		VenueSlug:    "home-assignment-venue-helsinki",
		CartValue:    cartValue,
		UserLocation: at,
	}
}

// ---------------------------------------------------------------------------
// Compute
// ---------------------------------------------------------------------------

func TestPricingEngine_Compute(t *testing.T) {
	engine := NewPricingEngine()

	tests := []struct {
		name string
		req  domain.PriceRequest
		want domain.PriceResult
	}{
		{
			name: "small order in first tier",
			req:  request(800, northOf(venueLocation, 1500)),
			want: domain.PriceResult{
				TotalPrice:          800 + 900 + 200,
				SmallOrderSurcharge: 200,
				CartValue:           800,
				DeliveryFee:         900,
				DeliveryDistance:    1500,
			},
		},
		{
			name: "no surcharge in second tier",
			req:  request(1200, northOf(venueLocation, 3000)),
			want: domain.PriceResult{
				TotalPrice:          1200 + 1600,
				SmallOrderSurcharge: 0,
				CartValue:           1200,
				DeliveryFee:         1600,
				DeliveryDistance:    3000,
			},
		},
		{
			name: "open-ended tier",
			req:  request(1000, northOf(venueLocation, 9000)),
			want: domain.PriceResult{
				TotalPrice:          1000 + 4400,
				SmallOrderSurcharge: 0,
				CartValue:           1000,
				DeliveryFee:         4400,
				DeliveryDistance:    9000,
			},
		},
		{
			name: "user at the venue with empty cart",
			req:  request(0, venueLocation),
			want: domain.PriceResult{
				TotalPrice:          1000 + 600,
				SmallOrderSurcharge: 1000,
				CartValue:           0,
				DeliveryFee:         600,
				DeliveryDistance:    0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Compute(tt.req, testVenue())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPricingEngine_Compute_FeeUsesUnroundedDistance(t *testing.T) {
	engine := NewPricingEngine()

	// 1999.6m displays as 2000m but still belongs to the first tier.
	got, err := engine.Compute(request(1000, northOf(venueLocation, 1999.6)), testVenue())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DeliveryDistance != 2000 {
		t.Errorf("expected displayed distance 2000, got %d", got.DeliveryDistance)
	}
	if want := int64(500 + 100 + 400); got.DeliveryFee != want {
		t.Errorf("expected first-tier fee %d, got %d", want, got.DeliveryFee)
	}
}

func TestPricingEngine_Compute_DeliveryUnavailable(t *testing.T) {
	engine := NewPricingEngine()
	venue := testVenue()
	venue.DeliverySpecs.DeliveryPricing.DistanceRanges = []domain.DistanceRange{
		{Min: 0, Max: 1000, A: 0, B: 0},
	}

	_, err := engine.Compute(request(1000, northOf(venueLocation, 1500)), venue)
	if !errors.Is(err, domain.ErrDeliveryUnavailable) {
		t.Fatalf("expected ErrDeliveryUnavailable, got %v", err)
	}
}

func TestPricingEngine_Compute_MissingVenue(t *testing.T) {
	engine := NewPricingEngine()

	_, err := engine.Compute(request(1000, venueLocation), nil)
	if !errors.Is(err, domain.ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestPricingEngine_Compute_InvalidInputTakesPrecedence(t *testing.T) {
	engine := NewPricingEngine()

	_, err := engine.Compute(request(-1, venueLocation), nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPricingEngine_Compute_HugeCartIsRejected(t *testing.T) {
	engine := NewPricingEngine()

	result, err := engine.Compute(request(math.MaxInt64, venueLocation), testVenue())
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v (total %d)", err, result.TotalPrice)
	}
}

func TestPricingEngine_Compute_TotalOverflow(t *testing.T) {
	engine := NewPricingEngine()
	venue := testVenue()
	venue.DeliverySpecs.DeliveryPricing.BasePrice = math.MaxInt64 - 1000

	result, err := engine.Compute(request(domain.MaxCartValue, venueLocation), venue)
	if !errors.Is(err, domain.ErrPriceOverflow) {
		t.Fatalf("expected ErrPriceOverflow, got %v (total %d)", err, result.TotalPrice)
	}
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestPricingEngine_Validate(t *testing.T) {
	engine := NewPricingEngine()

	tests := []struct {
		name       string
		req        domain.PriceRequest
		wantReason string // empty = valid
	}{
		{"valid", request(0, venueLocation), ""},
		{"poles and antimeridian", request(10, domain.GeoPoint{Lat: -90, Lon: 180}), ""},
		{"empty slug", domain.PriceRequest{CartValue: 10, UserLocation: venueLocation}, "venue_slug is required"},
		{"negative cart", request(-1, venueLocation), "cart_value must be at least 0"},
		{"largest cart", request(domain.MaxCartValue, venueLocation), ""},
		{"cart above maximum", request(domain.MaxCartValue+1, venueLocation), "cart_value must be at most 1000000000000"},
		{"max int64 cart", request(math.MaxInt64, venueLocation), "cart_value must be at most 1000000000000"},
		{"latitude too large", request(10, domain.GeoPoint{Lat: 90.5, Lon: 0}), "user_location.lat must be at most 90"},
		{"latitude too small", request(10, domain.GeoPoint{Lat: -91, Lon: 0}), "user_location.lat must be at least -90"},
		{"longitude too large", request(10, domain.GeoPoint{Lat: 0, Lon: 181}), "user_location.lon must be at most 180"},
		{"longitude too small", request(10, domain.GeoPoint{Lat: 0, Lon: -180.1}), "user_location.lon must be at least -180"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Validate(tt.req)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("expected valid request, got %v", err)
				}
				return
			}

			var invalid *domain.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *domain.InvalidInputError, got %v", err)
			}
			if invalid.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", invalid.Reason, tt.wantReason)
			}
		})
	}
}

func TestPricingEngine_Validate_NaNCoordinates(t *testing.T) {
	engine := NewPricingEngine()

	err := engine.Validate(request(10, domain.GeoPoint{Lat: math.NaN(), Lon: 0}))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for NaN latitude, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Concurrency
// ---------------------------------------------------------------------------

func TestPricingEngine_ConcurrentCompute(t *testing.T) {
	engine := NewPricingEngine()
	venue := testVenue()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(meters float64) {
			defer wg.Done()
			if _, err := engine.Compute(request(1000, northOf(venueLocation, meters)), venue); err != nil {
				errs <- err
			}
		}(float64(i * 100))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
}
