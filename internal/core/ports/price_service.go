package ports

import (
	"context"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
)

// PriceService prices a delivery order end to end.
type PriceService interface {
	Quote(ctx context.Context, req domain.PriceRequest) (*domain.PriceResult, error)
}
