package utils

import (
	"net/http"
	"strings"

	"tourdesk/config"

	"github.com/gin-gonic/gin"
)

const flashMaxAge = 60

// SetFlash stores a one-shot message shown on the next page.
func SetFlash(c *gin.Context, cookie, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookie, message, flashMaxAge, "/", "", config.AppConfig.CookieSecure, false)
}

// ConsumeFlash reads and clears both flash cookies.
func ConsumeFlash(c *gin.Context) (success, failure string) {
	success, _ = c.Cookie(FlashSuccessCookie)
	failure, _ = c.Cookie(FlashErrorCookie)
	if success != "" {
		c.SetCookie(FlashSuccessCookie, "", -1, "/", "", config.AppConfig.CookieSecure, false)
	}
	if failure != "" {
		c.SetCookie(FlashErrorCookie, "", -1, "/", "", config.AppConfig.CookieSecure, false)
	}
	return success, failure
}

// SetSessionCookies writes the signed token and the readable role cookie.
func SetSessionCookies(c *gin.Context, token, role string, maxAge int) {
	secure := config.AppConfig.CookieSecure
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, token, maxAge, "/", "", secure, true)
	c.SetCookie(UserRoleCookie, role, maxAge, "/", "", secure, false)
}

func ClearSessionCookies(c *gin.Context) {
	secure := config.AppConfig.CookieSecure
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(UserRoleCookie, "", -1, "/", "", secure, false)
}

// WantsJSON reports whether the caller is a script (XHR, fetch or API client)
// rather than a browser form submission.
func WantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(c.ContentType(), "application/json")
}
