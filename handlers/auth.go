package handlers

import (
	"errors"
	"net/http"

	"tourdesk/middleware"
	"tourdesk/services/user"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Users user.UserService
}

func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// homeFor is the landing page of a role.
func homeFor(role string) string {
	if role == utils.RoleAdmin {
		return "/admin/dashboard"
	}
	return "/company/dashboard"
}

// LoginPage handles GET /auth/login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, pageData(c, gin.H{"page": "login"}))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindInput(c, &req, middleware.LoginPath) {
		return
	}

	resp, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, message := http.StatusInternalServerError, "Login failed. Please try again."
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			status, message = http.StatusUnauthorized, "Invalid email or password"
		case errors.Is(err, user.ErrCompanyInactive):
			status, message = http.StatusForbidden, err.Error()
		default:
			getLogger(c).Error("Login failed", zap.Error(err))
		}
		if utils.WantsJSON(c) {
			c.JSON(status, gin.H{"error": message})
			return
		}
		utils.SetFlash(c, utils.FlashErrorCookie, message)
		c.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}

	utils.SetSessionCookies(c, resp.Token, resp.User.Role, int(resp.ExpiresIn))
	redirect := homeFor(resp.User.Role)
	if utils.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"role":     resp.User.Role,
			"redirect": redirect,
			"user":     resp.User,
			"company":  resp.Company,
		})
		return
	}
	c.Redirect(http.StatusFound, redirect)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookies(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required"`
}

// ChangePassword handles POST /account/password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	redirect := homeFor(c.GetString(middleware.CtxRole))
	var req changePasswordRequest
	if !bindInput(c, &req, redirect) {
		return
	}
	if err := h.Users.ChangePassword(c.Request.Context(), c.GetString(middleware.CtxUserID), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err, redirect)
		return
	}
	respondSaved(c, http.StatusOK, "Password updated successfully", redirect, nil)
}
