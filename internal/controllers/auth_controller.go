package controllers

import (
	"net/http"

	"portfolio-be/internal/middleware"
	"portfolio-be/internal/models"
	"portfolio-be/internal/service"
	"portfolio-be/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
	sessions    session.Store
}

func NewAuthController(authService service.AuthService, sessions session.Store) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
	}
}

// Login handles POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		// Validation failures never reach the data layer.
		c.JSON(http.StatusBadRequest, gin.H{
			"success": 0,
			"error":   "Email and password are required",
		})
		return
	}

	success, err := ac.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": 0,
			"error":   "Authentication failed",
		})
		return
	}

	if success == 1 {
		token, err := ac.authService.EncryptIdentity(req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": 0,
				"error":   "Failed to establish session",
			})
			return
		}
		if err := ac.sessions.SetIdentityToken(c.Request.Context(), middleware.SessionID(c), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": 0,
				"error":   "Failed to establish session",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

// Logout handles GET /logout - clears all session state
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.sessions.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear session",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me handles GET /api/me - reports the identity behind the current session.
// Anonymous and broken sessions come back as guest, never as an error.
func (ac *AuthController) Me(c *gin.Context) {
	token := ac.sessions.IdentityToken(c.Request.Context(), middleware.SessionID(c))
	c.JSON(http.StatusOK, gin.H{
		"email": ac.authService.Email(token),
		"role":  ac.authService.Role(token),
	})
}
