package sqlite

import (
	"context"
	"fmt"

	"github.com/labmath/labcms/internal/core/domain"
	"github.com/labmath/labcms/internal/core/repository"
)

type activityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activity (title, description, published_at)
		VALUES (?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		activity.Title,
		activity.Description,
		activity.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	activity.ID = id

	return nil
}

func (r *activityRepository) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `
		SELECT id, title, description, published_at
		FROM activity
		ORDER BY published_at DESC, id DESC
	`
	var activities []*domain.Activity
	err := r.db.SelectContext(ctx, &activities, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
