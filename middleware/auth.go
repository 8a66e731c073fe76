package middleware

import (
	"errors"
	"net/http"
	"strings"

	"tourdesk/services/user"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginPath is where unauthenticated browsers are sent.
const LoginPath = "/auth/login"

// Context keys set by SessionAuth.
const (
	CtxUserID    = "userID"
	CtxRole      = "role"
	CtxUser      = "user"
	CtxCompany   = "company"
	CtxCompanyID = "companyID"
)

// denyBrowser redirects to the login page with a flash error; scripts get JSON.
func denyBrowser(c *gin.Context, status int, message string) {
	if utils.WantsJSON(c) {
		c.AbortWithStatusJSON(status, gin.H{"error": message})
		return
	}
	utils.SetFlash(c, utils.FlashErrorCookie, message)
	c.Redirect(http.StatusFound, LoginPath)
	c.Abort()
}

func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(utils.AccessTokenCookie); err == nil && token != "" {
		return token
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// SessionAuth validates the access_token cookie (or a Bearer header) and loads
// the account behind it into the request context.
func SessionAuth(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		token := sessionToken(c)
		if token == "" {
			denyBrowser(c, http.StatusUnauthorized, "Please log in to continue.")
			return
		}

		claims, err := utils.ParseSessionToken(token)
		if err != nil {
			logger.Debug("Rejected session token", zap.Error(err))
			utils.ClearSessionCookies(c)
			denyBrowser(c, http.StatusUnauthorized, "Your session has expired. Please log in again.")
			return
		}

		account, err := users.LoadAccount(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Session account unavailable", zap.String("userID", claims.UserID), zap.Error(err))
			utils.ClearSessionCookies(c)
			msg := "Your session has expired. Please log in again."
			if errors.Is(err, user.ErrCompanyInactive) {
				msg = err.Error()
			}
			denyBrowser(c, http.StatusUnauthorized, msg)
			return
		}

		c.Set(CtxUserID, account.User.ID)
		c.Set(CtxRole, account.User.Role)
		c.Set(CtxUser, account.User)
		if account.Company != nil {
			c.Set(CtxCompany, account.Company)
			c.Set(CtxCompanyID, account.Company.ID)
		}
		c.Next()
	}
}

// CompanyID returns the signed-in company's id, empty for admins.
func CompanyID(c *gin.Context) string {
	return c.GetString(CtxCompanyID)
}
