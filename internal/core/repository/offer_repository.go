package repository

import (
	"context"

	"github.com/labmath/labcms/internal/core/domain"
)

type OfferRepository interface {
	// Create inserts the offer and sets its ID. No HTTP route reaches this
	// yet; it exists for operator tooling and tests.
	Create(ctx context.Context, offer *domain.Offer) error
	// List returns offers, restricted to active ones when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]*domain.Offer, error)
}
