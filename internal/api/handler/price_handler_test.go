package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
)

type stubPriceService struct {
	quoteFn func(ctx context.Context, req domain.PriceRequest) (*domain.PriceResult, error)
	calls   int
}

func (s *stubPriceService) Quote(ctx context.Context, req domain.PriceRequest) (*domain.PriceResult, error) {
	s.calls++
	return s.quoteFn(ctx, req)
}

func newPriceContext(query string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-order-price?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPriceHandler_Get_Success(t *testing.T) {
	stub := &stubPriceService{
		quoteFn: func(ctx context.Context, req domain.PriceRequest) (*domain.PriceResult, error) {
			want := domain.PriceRequest{
				VenueSlug:    "home-assignment-venue-helsinki",
				CartValue:    1000,
				UserLocation: domain.GeoPoint{Lat: 60.17094, Lon: 24.93087},
			}
			if req != want {
				t.Fatalf("unexpected request: %+v", req)
			}
			return &domain.PriceResult{
				TotalPrice:          1190,
				SmallOrderSurcharge: 0,
				CartValue:           1000,
				DeliveryFee:         190,
				DeliveryDistance:    177,
			}, nil
		},
	}
	handler := NewPriceHandler(stub)

	c, rec := newPriceContext("venue_slug=home-assignment-venue-helsinki&cart_value=1000&user_lat=60.17094&user_lon=24.93087")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp priceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := priceResponse{
		TotalPrice:          1190,
		SmallOrderSurcharge: 0,
		CartValue:           1000,
		Delivery:            deliveryResponse{Fee: 190, Distance: 177},
	}
	if resp != want {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPriceHandler_Get_ResponseFieldNames(t *testing.T) {
	stub := &stubPriceService{
		quoteFn: func(ctx context.Context, req domain.PriceRequest) (*domain.PriceResult, error) {
			return &domain.PriceResult{TotalPrice: 1, SmallOrderSurcharge: 2, CartValue: 3, DeliveryFee: 4, DeliveryDistance: 5}, nil
		},
	}

	c, rec := newPriceContext("venue_slug=v&cart_value=3&user_lat=0&user_lon=0")
	if err := NewPriceHandler(stub).Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	delivery, ok := resp["delivery"].(map[string]any)
	if !ok {
		t.Fatalf("expected delivery object in response: %s", rec.Body.String())
	}
	if resp["total_price"] != 1.0 || resp["small_order_surcharge"] != 2.0 || resp["cart_value"] != 3.0 {
		t.Fatalf("unexpected top level fields: %+v", resp)
	}
	if delivery["fee"] != 4.0 || delivery["distance"] != 5.0 {
		t.Fatalf("unexpected delivery fields: %+v", delivery)
	}
}

func TestPriceHandler_Get_BadQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"missing venue_slug", "cart_value=1000&user_lat=60.1&user_lon=24.9"},
		{"missing cart_value", "venue_slug=v&user_lat=60.1&user_lon=24.9"},
		{"missing user_lat", "venue_slug=v&cart_value=1000&user_lon=24.9"},
		{"missing user_lon", "venue_slug=v&cart_value=1000&user_lat=60.1"},
		{"fractional cart_value", "venue_slug=v&cart_value=10.5&user_lat=60.1&user_lon=24.9"},
		{"non numeric cart_value", "venue_slug=v&cart_value=abc&user_lat=60.1&user_lon=24.9"},
		{"non numeric user_lat", "venue_slug=v&cart_value=1000&user_lat=north&user_lon=24.9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubPriceService{
				quoteFn: func(ctx context.Context, req domain.PriceRequest) (*domain.PriceResult, error) {
					return &domain.PriceResult{}, nil
				},
			}

			c, _ := newPriceContext(tc.query)
			err := NewPriceHandler(stub).Get(c)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if stub.calls != 0 {
				t.Fatalf("service must not be called on a bad query, got %d calls", stub.calls)
			}
		})
	}
}

func TestPriceHandler_Get_PropagatesServiceErrors(t *testing.T) {
	cases := []error{
		domain.NewInvalidInput("cart_value must be at least 0"),
		fmt.Errorf("quote: %w", domain.ErrVenueNotFound),
		fmt.Errorf("quote: %w", domain.ErrDeliveryUnavailable),
		errors.New("boom"),
	}

	for _, want := range cases {
		t.Run(want.Error(), func(t *testing.T) {
			stub := &stubPriceService{
				quoteFn: func(ctx context.Context, req domain.PriceRequest) (*domain.PriceResult, error) {
					return nil, want
				},
			}

			c, rec := newPriceContext("venue_slug=v&cart_value=-5&user_lat=60.1&user_lon=24.9")
			err := NewPriceHandler(stub).Get(c)
			if !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
			if rec.Body.Len() != 0 {
				t.Fatalf("handler must leave rendering to the error handler, got %q", rec.Body.String())
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "priced"},
		{domain.NewInvalidInput("x"), "invalid_input"},
		{fmt.Errorf("wrap: %w", domain.ErrVenueNotFound), "venue_not_found"},
		{fmt.Errorf("wrap: %w", domain.ErrDeliveryUnavailable), "delivery_unavailable"},
		{errors.New("boom"), "error"},
	}

	for _, tc := range cases {
		if got := outcome(tc.err); got != tc.want {
			t.Errorf("outcome(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
