package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labmath/labcms/internal/core/domain"
	"github.com/labmath/labcms/internal/core/service"
)

const (
	// SessionCookieName is the admin session cookie.
	SessionCookieName = "labcms_session"

	userContextKey = "current_user"

	loginPath = "/admin/login"
)

// RequireSession guards admin routes. A missing or invalid session is not an
// error page: the visitor is redirected to the login form.
func RequireSession(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}

		user, err := authService.ResolveSession(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user set by RequireSession.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
