package cli

import (
	"fmt"
	"time"

	"github.com/labmath/labcms/internal/core/repository"
	"github.com/labmath/labcms/internal/core/service"
	"github.com/labmath/labcms/internal/infrastructure/sqlite"
	"github.com/labmath/labcms/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "labcms",
	Short: "labcms - content management backend",
	Long: `labcms is the content management backend for the organization website.

It provides:
- A server-rendered admin dashboard for publishing activities
- A read-only JSON API consumed by the public site
- Operator commands for managing admin accounts`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional, env vars override)")
}

// initServices initializes the database, repositories and services
func initServices() (*Services, error) {
	// Initialize database; the schema is created here if absent
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	userRepo := sqlite.NewUserRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	offerRepo := sqlite.NewOfferRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.SecretKey, sessionTTL)
	contentService := service.NewContentService(activityRepo, offerRepo)

	return &Services{
		DB:             db,
		UserRepo:       userRepo,
		SessionRepo:    sessionRepo,
		ActivityRepo:   activityRepo,
		OfferRepo:      offerRepo,
		AuthService:    authService,
		ContentService: contentService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB             *sqlite.DB
	UserRepo       repository.UserRepository
	SessionRepo    repository.SessionRepository
	ActivityRepo   repository.ActivityRepository
	OfferRepo      repository.OfferRepository
	AuthService    *service.AuthService
	ContentService *service.ContentService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
