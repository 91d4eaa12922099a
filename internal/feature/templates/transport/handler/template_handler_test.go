package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regalis_backend/internal/api"
	"regalis_backend/internal/feature/templates/domain/entity"
	"regalis_backend/internal/feature/templates/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockTemplateUsecase is a mock implementation of the TemplateUsecase interface.
type mockTemplateUsecase struct {
	ListFunc func(ctx context.Context, category entity.Category) ([]entity.Template, error)
	GetFunc  func(ctx context.Context, id string) (entity.Template, error)
}

func (m *mockTemplateUsecase) List(ctx context.Context, category entity.Category) ([]entity.Template, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockTemplateUsecase) Get(ctx context.Context, id string) (entity.Template, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return entity.Template{}, usecase.ErrTemplateNotFound
}

func setupRouter(uc TemplateUsecase) *gin.Engine {
	h := NewTemplateHandler(uc)
	r := gin.New()
	r.GET("/templates", h.List)
	r.GET("/templates/:id", h.Get)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestTemplateHandler_List(t *testing.T) {
	t.Parallel()

	var gotCategory entity.Category
	uc := &mockTemplateUsecase{ListFunc: func(ctx context.Context, category entity.Category) ([]entity.Template, error) {
		gotCategory = category
		return []entity.Template{{ID: "13", Title: "Food Delivery App", Category: entity.CategoryApp, Code: "<html/>"}}, nil
	}}

	w := get(setupRouter(uc), "/templates?category=app")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.CategoryApp, gotCategory)
	var resp []api.TemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "app", resp[0].Category)
	assert.Equal(t, "<html/>", resp[0].Code)
}

func TestTemplateHandler_List_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "invalid category", err: usecase.ErrInvalidCategory, expectedStatus: http.StatusBadRequest},
		{name: "internal error", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockTemplateUsecase{ListFunc: func(ctx context.Context, category entity.Category) ([]entity.Template, error) {
				return nil, tt.err
			}}
			w := get(setupRouter(uc), "/templates?category=desktop")
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTemplateHandler_Get(t *testing.T) {
	t.Parallel()

	uc := &mockTemplateUsecase{GetFunc: func(ctx context.Context, id string) (entity.Template, error) {
		if id == "1" {
			return entity.Template{ID: "1", Title: "Royal Jewelry Store", Category: entity.CategoryWebsite}, nil
		}
		return entity.Template{}, usecase.ErrTemplateNotFound
	}}
	r := setupRouter(uc)

	w := get(r, "/templates/1")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.TemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Royal Jewelry Store", resp.Title)

	w = get(r, "/templates/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
