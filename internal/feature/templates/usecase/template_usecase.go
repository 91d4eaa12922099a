// Package usecase implements lookups over the template library.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"regalis_backend/internal/feature/templates/domain/entity"
)

var (
	// ErrTemplateNotFound is returned by Get for an unknown id.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrInvalidCategory is returned by List for a category other than website or app.
	ErrInvalidCategory = errors.New("category must be website or app")
)

// TemplateRepository provides the full catalog.
type TemplateRepository interface {
	All(ctx context.Context) ([]entity.Template, error)
}

type templateUsecase struct {
	repo TemplateRepository
}

// NewTemplateUsecase creates the template usecase.
func NewTemplateUsecase(repo TemplateRepository) *templateUsecase {
	return &templateUsecase{repo: repo}
}

// List returns the templates of category, or every template when category is empty.
func (u *templateUsecase) List(ctx context.Context, category entity.Category) ([]entity.Template, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	all, err := u.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	if category == "" {
		return all, nil
	}
	out := make([]entity.Template, 0, len(all))
	for _, t := range all {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

// Get returns the template with id.
func (u *templateUsecase) Get(ctx context.Context, id string) (entity.Template, error) {
	all, err := u.repo.All(ctx)
	if err != nil {
		return entity.Template{}, fmt.Errorf("failed to load templates: %w", err)
	}
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return entity.Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
}
