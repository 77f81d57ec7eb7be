package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/labmath/labcms/internal/core/domain"
	"github.com/labmath/labcms/internal/core/repository"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labcms.db")

	db, err := New(path)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}

	userRepo := NewUserRepository(db)
	if err := userRepo.Create(context.Background(), domain.NewUser("admin", "hash")); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	db.Close()

	// Reopening applies the schema again; existing data must survive.
	db2, err := New(path)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer db2.Close()

	userRepo2 := NewUserRepository(db2)
	count, err := userRepo2.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 user after reopen, got %d", count)
	}
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := domain.NewUser("admin", "hash-a")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected first user to get an ID")
	}

	second := domain.NewUser("admin", "hash-b")
	err := repo.Create(ctx, second)
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 stored row, got %d", count)
	}
}

func TestUserRepositoryFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := domain.NewUser("admin", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	byName, err := repo.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("FindByUsername failed: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("expected ID %d, got %d", user.ID, byName.ID)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID.Username != "admin" {
		t.Errorf("expected username admin, got %s", byID.Username)
	}

	if _, err := repo.FindByUsername(ctx, "nobody"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown username, got %v", err)
	}
}

func TestActivityRepositoryListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	older := &domain.Activity{Title: "Older", Description: "first", PublishedAt: base}
	newer := &domain.Activity{Title: "Newer", Description: "second", PublishedAt: base.Add(48 * time.Hour)}

	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	activities, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].Title != "Newer" || activities[1].Title != "Older" {
		t.Errorf("expected newest first, got %q then %q", activities[0].Title, activities[1].Title)
	}
}

func TestOfferRepositoryActiveFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewOfferRepository(db)
	ctx := context.Background()

	active := domain.NewOffer("Research engineer", "Full time")
	inactive := &domain.Offer{Position: "Old posting", Details: "Filled", Active: false}

	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, inactive); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 offers without filter, got %d", len(all))
	}

	activeOnly, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(activeOnly) != 1 {
		t.Fatalf("expected 1 active offer, got %d", len(activeOnly))
	}
	if activeOnly[0].Position != "Research engineer" {
		t.Errorf("expected the active offer, got %q", activeOnly[0].Position)
	}
}

func TestSessionRepositoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	user := domain.NewUser("admin", "hash")
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	session := domain.NewSession(user.ID, time.Hour)
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByToken(ctx, session.Token)
	if err != nil {
		t.Fatalf("FindByToken failed: %v", err)
	}
	if found.UserID != user.ID {
		t.Errorf("expected user ID %d, got %d", user.ID, found.UserID)
	}

	if err := repo.Delete(ctx, session.Token); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByToken(ctx, session.Token); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, session.Token); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestSessionRepositoryDeleteExpired(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	user := domain.NewUser("admin", "hash")
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	live := domain.NewSession(user.ID, time.Hour)
	expired := domain.NewSession(user.ID, -time.Hour)

	if err := repo.Create(ctx, live); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, expired); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}

	if _, err := repo.FindByToken(ctx, live.Token); err != nil {
		t.Errorf("live session should survive: %v", err)
	}
	if _, err := repo.FindByToken(ctx, expired.Token); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expired session should be gone, got %v", err)
	}
}
