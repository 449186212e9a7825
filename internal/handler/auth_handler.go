package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hauliq/eldview-backend-go/internal/middleware"
	"github.com/hauliq/eldview-backend-go/internal/models"
	"github.com/hauliq/eldview-backend-go/internal/service"
	"github.com/hauliq/eldview-backend-go/pkg/response"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	auth     *service.AuthService
	sessions *service.SessionRegistry
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, sessions *service.SessionRegistry) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid registration payload", err)
		return
	}

	user, err := h.auth.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.Error(c, http.StatusConflict, "Username already taken")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to register", err)
		return
	}

	response.Created(c, user)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	resp, err := h.auth.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	response.Success(c, resp)
}

// Logout handles POST /api/v1/auth/logout. It drops the session and its
// geocode cache; the token itself simply ages out.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Drop(middleware.CurrentToken(c))
	response.Success(c, nil)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, middleware.CurrentUser(c))
}
