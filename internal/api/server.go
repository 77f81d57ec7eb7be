package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labmath/labcms/internal/api/handler"
	"github.com/labmath/labcms/internal/api/middleware"
	"github.com/labmath/labcms/internal/core/service"
	"github.com/labmath/labcms/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer wires the admin HTML surface and the public JSON API onto one
// gin engine.
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	contentService *service.ContentService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	// Global so OPTIONS preflights are answered even without a matching
	// route; the public site reads /api/* cross-origin.
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	router.SetHTMLTemplate(loadTemplates())

	// Initialize handlers
	adminHandler := handler.NewAdminHandler(authService, contentService)
	publicHandler := handler.NewPublicHandler(contentService)

	// Root redirects to the dashboard or the login form
	router.GET("/", adminHandler.Root)

	// Admin HTML surface
	admin := router.Group("/admin")
	{
		admin.GET("/login", adminHandler.ShowLogin)
		admin.POST("/login", adminHandler.Login)

		sessionGuard := middleware.RequireSession(authService)
		admin.GET("/dashboard", sessionGuard, adminHandler.Dashboard)
		admin.POST("/add_activity", sessionGuard, adminHandler.AddActivity)
		admin.GET("/logout", sessionGuard, adminHandler.Logout)
	}

	// Public JSON API. Route names keep the French spellings the front-end
	// already calls.
	api := router.Group("/api")
	{
		api.GET("/activites", publicHandler.GetActivities)
		api.GET("/offres", publicHandler.GetOffers)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
