package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labmath/labcms/internal/api/middleware"
	"github.com/labmath/labcms/internal/core/domain"
	"github.com/labmath/labcms/internal/core/service"
)

// sessionCookieMaxAge caps the cookie lifetime; the server-side session row
// is the authoritative expiry.
const sessionCookieMaxAge = 7 * 24 * 3600

type AdminHandler struct {
	authService    *service.AuthService
	contentService *service.ContentService
}

func NewAdminHandler(authService *service.AuthService, contentService *service.ContentService) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		contentService: contentService,
	}
}

type loginPage struct {
	Error    string
	Flash    string
	Username string
}

type dashboardPage struct {
	User            *domain.User
	Activities      []*domain.Activity
	Offers          []*domain.Offer
	Flash           string
	FieldErrors     map[string]bool
	FormTitle       string
	FormDescription string
}

// ShowLogin handles GET /admin/login
func (h *AdminHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginPage{
		Flash: popFlash(c),
	})
}

// Login handles POST /admin/login. On failure the form is re-rendered with a
// single generic message; it never says whether the username or the password
// was wrong.
func (h *AdminHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.VerifyCredentials(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", loginPage{
				Error:    "Incorrect credentials",
				Username: username,
			})
			return
		}
		c.Error(err)
		c.Abort()
		return
	}

	token, err := h.authService.IssueSession(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// Dashboard handles GET /admin/dashboard. It shows every activity (newest
// first) and every offer, active or not.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	page, err := h.loadDashboard(c, user)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}
	page.Flash = popFlash(c)

	c.HTML(http.StatusOK, "dashboard.html", page)
}

// AddActivity handles POST /admin/add_activity. Empty fields re-render the
// dashboard with the offending fields marked and the entered values kept.
func (h *AdminHandler) AddActivity(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	_, err := h.contentService.CreateActivity(c.Request.Context(), title, description)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			user, _ := middleware.CurrentUser(c)
			page, loadErr := h.loadDashboard(c, user)
			if loadErr != nil {
				c.Error(loadErr)
				c.Abort()
				return
			}
			page.FieldErrors = make(map[string]bool, len(validationErr.Fields))
			for _, field := range validationErr.Fields {
				page.FieldErrors[field] = true
			}
			page.FormTitle = title
			page.FormDescription = description
			c.HTML(http.StatusUnprocessableEntity, "dashboard.html", page)
			return
		}
		c.Error(err)
		c.Abort()
		return
	}

	setFlash(c, "Activity published")
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// Logout handles GET /admin/logout. The session row is deleted server-side,
// so the old cookie is dead even if the browser keeps a copy.
func (h *AdminHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if err := h.authService.DestroySession(c.Request.Context(), token); err != nil {
			c.Error(err)
			c.Abort()
			return
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// Root handles GET /. Authenticated visitors land on the dashboard,
// everyone else on the login form.
func (h *AdminHandler) Root(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && token != "" {
		if _, err := h.authService.ResolveSession(c.Request.Context(), token); err == nil {
			c.Redirect(http.StatusSeeOther, "/admin/dashboard")
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

func (h *AdminHandler) loadDashboard(c *gin.Context, user *domain.User) (*dashboardPage, error) {
	activities, err := h.contentService.ListActivities(c.Request.Context())
	if err != nil {
		return nil, err
	}

	offers, err := h.contentService.ListOffers(c.Request.Context(), false)
	if err != nil {
		return nil, err
	}

	return &dashboardPage{
		User:        user,
		Activities:  activities,
		Offers:      offers,
		FieldErrors: map[string]bool{},
	}, nil
}
