package handler

import (
	"github.com/timbrist/backend-internship-2025/internal/core/domain"
)

// --- Request → domain ---

func toPriceRequest(q priceQuery) domain.PriceRequest {
	return domain.PriceRequest{
		VenueSlug: q.VenueSlug,
		CartValue: q.CartValue,
		UserLocation: domain.GeoPoint{
			Lat: q.UserLat,
			Lon: q.UserLon,
		},
	}
}

// --- domain → HTTP response ---

func toPriceResponse(r *domain.PriceResult) priceResponse {
	return priceResponse{
		TotalPrice:          r.TotalPrice,
		SmallOrderSurcharge: r.SmallOrderSurcharge,
		CartValue:           r.CartValue,
		Delivery: deliveryResponse{
			Fee:      r.DeliveryFee,
			Distance: r.DeliveryDistance,
		},
	}
}
