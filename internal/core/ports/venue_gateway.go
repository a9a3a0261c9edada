package ports

import (
	"context"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
)

// VenueGateway fetches a venue's location and pricing rules from the venue
// data provider. Implementations return an error wrapping
// domain.ErrVenueNotFound when the venue is unknown, the provider is
// unreachable or a document is malformed.
type VenueGateway interface {
	FetchVenue(ctx context.Context, venueSlug string) (*domain.Venue, error)
}
