// Package handler provides the HTTP handlers of the template library.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"regalis_backend/internal/api"
	"regalis_backend/internal/feature/templates/domain/entity"
	"regalis_backend/internal/feature/templates/usecase"
)

// TemplateUsecase defines the template lookups used by the handler.
type TemplateUsecase interface {
	List(ctx context.Context, category entity.Category) ([]entity.Template, error)
	Get(ctx context.Context, id string) (entity.Template, error)
}

// TemplateHandler handles the template library endpoints.
type TemplateHandler struct {
	uc TemplateUsecase
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(uc TemplateUsecase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List handles GET /templates?category=website|app.
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.uc.List(c.Request.Context(), entity.Category(c.Query("category")))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: usecase.ErrInvalidCategory.Error()})
			return
		}
		slog.Error("list templates failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list templates"})
		return
	}

	out := make([]api.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, toTemplateResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /templates/:id.
func (h *TemplateHandler) Get(c *gin.Context) {
	t, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "template not found"})
			return
		}
		slog.Error("get template failed", "error", err, "template_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get template"})
		return
	}
	c.JSON(http.StatusOK, toTemplateResponse(t))
}

func toTemplateResponse(t entity.Template) api.TemplateResponse {
	return api.TemplateResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    string(t.Category),
		ImageURL:    t.ImageURL,
		Prompt:      t.Prompt,
		Code:        t.Code,
	}
}
