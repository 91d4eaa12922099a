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

// untitledProject is the name given to projects saved without one.
const untitledProject = "Untitled Project"

// ProjectUsecase defines the project operations used by the handler.
type ProjectUsecase interface {
	SaveProject(ctx context.Context, userID, name, prompt, code string, typ entity.ProjectType) (entity.Project, error)
	ListProjects(ctx context.Context, userID string) ([]entity.Project, error)
}

// ProjectHandler handles the authenticated project endpoints.
// The owner is always the subject of the bearer token.
type ProjectHandler struct {
	projects ProjectUsecase
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projects ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Save handles POST /projects.
func (h *ProjectHandler) Save(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("save project validation failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	name := req.Name
	if name == "" {
		name = untitledProject
	}

	project, err := h.projects.SaveProject(c.Request.Context(), userID, name, req.Prompt, req.Code, entity.ProjectType(req.Type))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidProjectType) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "type must be website or app"})
			return
		}
		slog.Error("save project failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save project"})
		return
	}

	slog.Info("project saved", "project_id", project.ID, "user_id", userID, "type", string(project.Type))
	c.JSON(http.StatusCreated, toProjectResponse(project))
}

// List handles GET /projects, newest first.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	projects, err := h.projects.ListProjects(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list projects failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list projects"})
		return
	}

	out := make([]api.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func toProjectResponse(p entity.Project) api.ProjectResponse {
	return api.ProjectResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Prompt:    p.Prompt,
		Type:      string(p.Type),
		Code:      p.Code,
		CreatedAt: p.CreatedAt,
	}
}
