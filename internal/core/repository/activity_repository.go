package repository

import (
	"context"

	"github.com/labmath/labcms/internal/core/domain"
)

type ActivityRepository interface {
	// Create inserts the activity and sets its ID.
	Create(ctx context.Context, activity *domain.Activity) error
	// List returns all activities, newest first.
	List(ctx context.Context) ([]*domain.Activity, error)
}
