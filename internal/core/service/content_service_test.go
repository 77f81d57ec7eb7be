package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labmath/labcms/internal/infrastructure/sqlite"
)

func newTestContentService(t *testing.T) *ContentService {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewContentService(sqlite.NewActivityRepository(db), sqlite.NewOfferRepository(db))
}

func TestCreateActivityValidation(t *testing.T) {
	contentService := newTestContentService(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		title       string
		description string
		wantFields  []string
	}{
		{"empty title", "", "some text", []string{"title"}},
		{"empty description", "Open House", "", []string{"description"}},
		{"both empty", "", "", []string{"title", "description"}},
		{"whitespace counts as empty", " \t ", "\n", []string{"title", "description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := contentService.CreateActivity(ctx, tt.title, tt.description)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(validationErr.Fields) != len(tt.wantFields) {
				t.Fatalf("expected fields %v, got %v", tt.wantFields, validationErr.Fields)
			}
			for i, field := range tt.wantFields {
				if validationErr.Fields[i] != field {
					t.Errorf("expected field %q at %d, got %q", field, i, validationErr.Fields[i])
				}
			}
		})
	}
}

func TestCreateActivityAssignsTimestamp(t *testing.T) {
	contentService := newTestContentService(t)
	ctx := context.Background()

	before := time.Now().UTC()
	activity, err := contentService.CreateActivity(ctx, "Open House", "Join us Saturday")
	after := time.Now().UTC()

	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if activity.ID == 0 {
		t.Error("expected the activity to get an ID")
	}
	if activity.PublishedAt.Before(before) || activity.PublishedAt.After(after) {
		t.Errorf("publication timestamp %v not assigned at creation time", activity.PublishedAt)
	}

	activities, err := contentService.ListActivities(ctx)
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if len(activities) != 1 || activities[0].Title != "Open House" {
		t.Fatalf("expected the created activity first, got %+v", activities)
	}
}
