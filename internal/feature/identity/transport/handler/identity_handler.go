// Package handler provides the HTTP handlers of the identity feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"regalis_backend/internal/api"
	"regalis_backend/internal/feature/identity/domain/entity"
	"regalis_backend/internal/feature/identity/usecase"
	jwtmw "regalis_backend/internal/platform/jwt"
)

// IdentityUsecase defines the account and session operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type IdentityUsecase interface {
	Signup(ctx context.Context, name, email, password string) (entity.PublicUser, error)
	Login(ctx context.Context, email, password string) (entity.PublicUser, error)
	EndSession(ctx context.Context, userID string) (bool, error)
	CurrentSession(ctx context.Context) (entity.PublicUser, bool, error)
}

// TokenIssuer issues bearer tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID, email string) (string, error)
}

// IdentityHandler handles signup, login, logout and session lookups.
type IdentityHandler struct {
	identity IdentityUsecase
	tokens   TokenIssuer
}

// NewIdentityHandler creates an IdentityHandler.
func NewIdentityHandler(identity IdentityUsecase, tokens TokenIssuer) *IdentityHandler {
	return &IdentityHandler{identity: identity, tokens: tokens}
}

// Signup handles POST /signup.
//   - 400 when the body fails validation
//   - 409 when the email is already registered
//   - 201 with the user and a bearer token on success
func (h *IdentityHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.identity.Signup(c.Request.Context(), req.Name, string(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateEmail) {
			slog.Warn("signup rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "This email is already registered. Please log in."})
			return
		}
		slog.Error("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
		return
	}

	h.respondAuthenticated(c, http.StatusCreated, user)
	slog.Info("user signup successful", "email", user.Email, "remote_addr", c.ClientIP())
}

// Login handles POST /login.
//   - 400 when the body fails validation
//   - 401 for an unknown email or a wrong password, without telling which
//   - 200 with the user and a bearer token on success
func (h *IdentityHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.identity.Login(c.Request.Context(), string(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password."})
			return
		}
		slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	h.respondAuthenticated(c, http.StatusOK, user)
	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
}

// Logout handles POST /logout for the token subject.
// The stored session is only cleared when it belongs to the caller; either way the answer is 204.
func (h *IdentityHandler) Logout(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	cleared, err := h.identity.EndSession(c.Request.Context(), userID)
	if err != nil {
		slog.Error("logout failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "logout failed"})
		return
	}
	if cleared {
		slog.Info("user logout successful", "user_id", userID, "remote_addr", c.ClientIP())
	}
	c.Status(http.StatusNoContent)
}

// Session handles GET /session: 200 when the current session belongs to the
// token subject, 204 otherwise.
func (h *IdentityHandler) Session(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	user, found, err := h.identity.CurrentSession(c.Request.Context())
	if err != nil {
		slog.Error("session lookup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "session lookup failed"})
		return
	}
	if !found || user.ID != userID {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, api.SessionResponse{User: toUserResponse(user)})
}

func (h *IdentityHandler) respondAuthenticated(c *gin.Context, status int, user entity.PublicUser) {
	token, err := h.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to issue token"})
		return
	}
	c.JSON(status, api.AuthResponse{User: toUserResponse(user), Token: token})
}

func toUserResponse(u entity.PublicUser) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
