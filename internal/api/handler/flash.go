package handler

import "github.com/gin-gonic/gin"

const flashCookieName = "labcms_flash"

// setFlash queues a one-time message for the next rendered page.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}
