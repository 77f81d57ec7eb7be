package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/labmath/labcms/internal/core/domain"
	"github.com/labmath/labcms/internal/core/repository"
)

type ContentService struct {
	activityRepo repository.ActivityRepository
	offerRepo    repository.OfferRepository
}

func NewContentService(
	activityRepo repository.ActivityRepository,
	offerRepo repository.OfferRepository,
) *ContentService {
	return &ContentService{
		activityRepo: activityRepo,
		offerRepo:    offerRepo,
	}
}

// CreateActivity publishes a new activity. Title and description must be
// non-empty; the publication timestamp is assigned here, not by the caller.
func (s *ContentService) CreateActivity(ctx context.Context, title, description string) (*domain.Activity, error) {
	var missing []string
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, NewValidationError(missing...)
	}

	activity := domain.NewActivity(title, description)
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return activity, nil
}

// ListActivities returns all activities, newest first.
func (s *ContentService) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	return s.activityRepo.List(ctx)
}

// ListOffers returns offers. The public API passes activeOnly=true; the
// dashboard sees everything.
func (s *ContentService) ListOffers(ctx context.Context, activeOnly bool) ([]*domain.Offer, error) {
	return s.offerRepo.List(ctx, activeOnly)
}
