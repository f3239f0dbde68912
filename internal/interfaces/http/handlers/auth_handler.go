package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/internal/interfaces/http/response"
	"loanflow.backend/internal/usecases"
	"loanflow.backend/pkg/crypto"
	"loanflow.backend/pkg/redis"
)

type AuthService interface {
	Register(ctx context.Context, input usecases.RegisterInput) (*usecases.AuthOutput, error)
	Login(ctx context.Context, email, password string) (*usecases.AuthOutput, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

const (
	sessionCookieName = "session_id"
	sessionTTL        = 24 * time.Hour
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase  AuthService
	sessionStore *redis.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService, sessionStore *redis.SessionStore) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
	}
}

// createSession persists the token pair server-side and hands the
// browser an opaque cookie. A session write failure is not fatal; the
// bearer tokens in the response body still work.
func (h *AuthHandler) createSession(c *gin.Context, out *usecases.AuthOutput) {
	if h.sessionStore == nil {
		return
	}

	sessionID, err := crypto.GenerateSessionID()
	if err != nil {
		return
	}

	data := &redis.SessionData{
		AccessToken:  out.Tokens.AccessToken,
		RefreshToken: out.Tokens.RefreshToken,
		Role:         string(out.User.Role),
	}
	if err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, data, sessionTTL); err != nil {
		return
	}

	c.SetCookie(sessionCookieName, sessionID, int(sessionTTL.Seconds()), "/", "", false, true)
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	out, err := h.authUsecase.Register(c.Request.Context(), usecases.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     entities.UserRole(req.Role),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, out)
}

// Login authenticates a user
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	out, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.createSession(c, out)
	response.Success(c, http.StatusOK, out)
}

// Logout deletes the server-side session and clears the cookie
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.sessionStore != nil {
		if sessionID, err := c.Cookie(sessionCookieName); err == nil && sessionID != "" {
			if err := h.sessionStore.DeleteSession(c.Request.Context(), sessionID); err != nil {
				response.Error(c, err)
				return
			}
		}
	}

	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

// Me returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.authUsecase.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
