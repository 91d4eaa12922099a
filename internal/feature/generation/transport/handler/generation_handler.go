// Package handler provides the HTTP handler of the generation feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"regalis_backend/internal/api"
	"regalis_backend/internal/feature/generation/usecase"
	"regalis_backend/internal/feature/identity/domain/entity"
)

// GenerationUsecase defines the generation operation used by the handler.
type GenerationUsecase interface {
	Generate(ctx context.Context, prompt string, typ entity.ProjectType) (string, error)
}

// GenerationHandler handles POST /generate.
type GenerationHandler struct {
	uc GenerationUsecase
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(uc GenerationUsecase) *GenerationHandler {
	return &GenerationHandler{uc: uc}
}

// Generate turns a prompt into a single-file HTML prototype.
//
// Endpoint: POST /generate
//   - 400 for a missing or oversized prompt or an unknown type
//   - 502 when the model fails
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req api.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("generate validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	code, err := h.uc.Generate(c.Request.Context(), req.Prompt, entity.ProjectType(req.Type))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPrompt), errors.Is(err, usecase.ErrUnsupportedType):
			slog.Warn("generate rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("generation failed", "error", err, "type", req.Type, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Failed to generate code. Please try again."})
		}
		return
	}

	slog.Info("code generated", "type", req.Type, "bytes", len(code), "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.GenerateResponse{Code: code})
}
