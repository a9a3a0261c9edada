package handler

// errorResponse documents the error envelope in the API docs. The body is
// rendered by the HTTP error handler in package api.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// priceQuery holds the raw query parameters of the price endpoint.
type priceQuery struct {
	VenueSlug string
	CartValue int64
	UserLat   float64
	UserLon   float64
}

type deliveryResponse struct {
	Fee      int64 `json:"fee"`
	Distance int64 `json:"distance"`
}

type priceResponse struct {
	TotalPrice          int64            `json:"total_price"`
	SmallOrderSurcharge int64            `json:"small_order_surcharge"`
	CartValue           int64            `json:"cart_value"`
	Delivery            deliveryResponse `json:"delivery"`
}
