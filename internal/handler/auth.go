package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swiftshop/swiftshop-api/internal/dto"
	"github.com/swiftshop/swiftshop-api/internal/middleware"
	"github.com/swiftshop/swiftshop-api/internal/service"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge time.Duration
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, cookieMaxAge time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieMaxAge: cookieMaxAge, cookieSecure: cookieSecure}
}

// IssueToken signs a session token for the submitted email and sets it as an
// http-only cookie.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.setSessionCookie(c, token, int(h.cookieMaxAge.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie by expiring it immediately.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	sameSite := http.SameSiteStrictMode
	if h.cookieSecure {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.cookieSecure, true)
}
