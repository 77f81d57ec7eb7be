package repository

import (
	"context"

	"github.com/labmath/labcms/internal/core/domain"
)

type UserRepository interface {
	// Create inserts the user and sets its ID. Returns ErrDuplicateUsername
	// if the username is taken.
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
