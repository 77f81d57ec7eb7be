package sqlite

import (
	"context"
	"fmt"

	"github.com/labmath/labcms/internal/core/domain"
	"github.com/labmath/labcms/internal/core/repository"
)

type offerRepository struct {
	db *DB
}

func NewOfferRepository(db *DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(ctx context.Context, offer *domain.Offer) error {
	query := `
		INSERT INTO offer (position, details, active)
		VALUES (?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		offer.Position,
		offer.Details,
		offer.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	offer.ID = id

	return nil
}

func (r *offerRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Offer, error) {
	query := `
		SELECT id, position, details, active
		FROM offer
	`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY id`

	var offers []*domain.Offer
	err := r.db.SelectContext(ctx, &offers, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}
