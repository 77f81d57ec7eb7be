package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labmath/labcms/internal/core/domain"
	"github.com/labmath/labcms/internal/core/repository"
	"golang.org/x/crypto/bcrypt"
)

const (
	BcryptCost = 10

	// DefaultAdminUsername and DefaultAdminPassword are the documented
	// first-boot credentials. They are seeded only when no user exists and
	// are logged at seed time so the operator rotates them immediately.
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	secretKey   string
	sessionTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	secretKey string,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secretKey:   secretKey,
		sessionTTL:  sessionTTL,
	}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// VerifyCredentials authenticates a user. It fails with
// ErrInvalidCredentials whether the username is unknown or the password
// mismatches, so a caller cannot probe for existing usernames.
func (s *AuthService) VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueSession creates a server-side session for the user and returns the
// signed cookie value. The JWT's jti claim is the session token; validation
// requires both a good signature and a live session row.
func (s *AuthService) IssueSession(ctx context.Context, user *domain.User) (string, error) {
	session := domain.NewSession(user.ID, s.sessionTTL)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	// Opportunistic cleanup of expired sessions
	_ = s.sessionRepo.DeleteExpired(ctx)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.Token,
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			Issuer:    "labcms",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ResolveSession maps a cookie value back to its user. Expired session rows
// are deleted on sight.
func (s *AuthService) ResolveSession(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessionRepo.FindByToken(ctx, claims.ID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	if session.IsExpired() {
		_ = s.sessionRepo.Delete(ctx, session.Token)
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	return user, nil
}

// DestroySession invalidates a session server-side. The cookie becomes
// useless even if the browser keeps it.
func (s *AuthService) DestroySession(ctx context.Context, tokenString string) error {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &sessionClaims{})
	if err != nil {
		return nil // nothing to destroy
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil
	}
	err = s.sessionRepo.Delete(ctx, claims.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// EnsureDefaultAdmin seeds the default administrator account when the user
// table is empty. Running it again is a no-op. The seeded credentials are a
// known weak default and are logged so the operator rotates them.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := s.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}

	user := domain.NewUser(DefaultAdminUsername, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race against a concurrent seed; the admin exists.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil
		}
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	log.Printf("seeded default admin account %q with password %q - rotate these credentials now", DefaultAdminUsername, DefaultAdminPassword)
	return nil
}

// sessionClaims is the payload of the signed session cookie.
type sessionClaims struct {
	jwt.RegisteredClaims
}
