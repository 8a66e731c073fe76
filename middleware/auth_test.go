package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourdesk/models"
	"tourdesk/services/user"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubUsers struct {
	user.UserService
	accounts map[string]*user.Account
	err      error
}

func (s *stubUsers) LoadAccount(_ context.Context, userID string) (*user.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	if acc, ok := s.accounts[userID]; ok {
		return acc, nil
	}
	return nil, utils.NewNotFoundError("User", userID)
}

func newAuthRouter(users user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/company/ping", SessionAuth(users), CompanyOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"company": CompanyID(c), "role": c.GetString(CtxRole)})
	})
	r.GET("/admin/ping", SessionAuth(users), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func authedRequest(t *testing.T, path, userID, role string) *http.Request {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: token})
	req.Header.Set("Accept", "application/json")
	return req
}

func testAccounts() *stubUsers {
	return &stubUsers{accounts: map[string]*user.Account{
		"admin": {User: &models.User{ID: "admin", Role: utils.RoleAdmin}},
		"co": {
			User:    &models.User{ID: "co", Role: utils.RoleCompany},
			Company: &models.Company{ID: "c1", Status: models.CompanyStatusActive},
		},
	}}
}

func TestSessionAuthLoadsCompany(t *testing.T) {
	r := newAuthRouter(testAccounts())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, "/company/ping", "co", utils.RoleCompany))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"company":"c1","role":"company"}`, w.Body.String())
}

func TestSessionAuthAcceptsBearerHeader(t *testing.T) {
	r := newAuthRouter(testAccounts())
	token, _ := utils.GenerateToken("admin", utils.RoleAdmin, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRoleGuards(t *testing.T) {
	r := newAuthRouter(testAccounts())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, "/admin/ping", "co", utils.RoleCompany))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(t, "/company/ping", "admin", utils.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSessionAuthRejectsInactiveCompany(t *testing.T) {
	users := &stubUsers{err: user.ErrCompanyInactive}
	r := newAuthRouter(users)

	req := authedRequest(t, "/company/ping", "co", utils.RoleCompany)
	req.Header.Del("Accept")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
	names := map[string]bool{}
	for _, ck := range w.Result().Cookies() {
		names[ck.Name] = true
	}
	assert.True(t, names[utils.FlashErrorCookie])
	assert.True(t, names[utils.AccessTokenCookie], "session cookie is cleared")
}

func TestSessionAuthRejectsGarbage(t *testing.T) {
	r := newAuthRouter(&stubUsers{err: errors.New("unused")})
	req := httptest.NewRequest(http.MethodGet, "/company/ping", nil)
	req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: "not-a-jwt"})
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.8")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
