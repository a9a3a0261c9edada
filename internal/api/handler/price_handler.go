package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
	"github.com/timbrist/backend-internship-2025/internal/core/ports"
	"github.com/timbrist/backend-internship-2025/internal/pkg/metrics"
)

// PriceHandler serves delivery order price quotes.
type PriceHandler struct {
	service ports.PriceService
}

func NewPriceHandler(service ports.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

// Get handles GET /api/v1/delivery-order-price.
//
// @Summary      Calculate the delivery order price
// @Description  Prices an order from one venue: cart value, small order surcharge and a distance based delivery fee.
// @Tags         pricing
// @Produce      json
// @Param        venue_slug  query     string   true  "Venue slug"
// @Param        cart_value  query     integer  true  "Cart value in minor currency units"
// @Param        user_lat    query     number   true  "Customer latitude"
// @Param        user_lon    query     number   true  "Customer longitude"
// @Success      200         {object}  priceResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /api/v1/delivery-order-price [get]
func (h *PriceHandler) Get(c echo.Context) error {
	var q priceQuery
	if err := echo.QueryParamsBinder(c).
		MustString("venue_slug", &q.VenueSlug).
		MustInt64("cart_value", &q.CartValue).
		MustFloat64("user_lat", &q.UserLat).
		MustFloat64("user_lon", &q.UserLon).
		BindError(); err != nil {
		metrics.QuotesTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return domain.NewInvalidInput(bindReason(err))
	}

	result, err := h.service.Quote(c.Request().Context(), toPriceRequest(q))
	metrics.QuotesTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return err
	}

	metrics.DeliveryFee.Observe(float64(result.DeliveryFee))
	metrics.DeliveryDistance.Observe(float64(result.DeliveryDistance))

	return c.JSON(http.StatusOK, toPriceResponse(result))
}

// bindReason renders a query binding failure, e.g. "cart_value: failed to bind field value to int64".
func bindReason(err error) string {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return fmt.Sprintf("%s: %v", be.Field, be.Message)
	}
	return err.Error()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomePriced
	case errors.Is(err, domain.ErrInvalidInput):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, domain.ErrVenueNotFound):
		return metrics.OutcomeVenueNotFound
	case errors.Is(err, domain.ErrDeliveryUnavailable):
		return metrics.OutcomeDeliveryUnavailable
	default:
		return metrics.OutcomeError
	}
}
