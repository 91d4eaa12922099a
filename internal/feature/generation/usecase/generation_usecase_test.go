package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regalis_backend/internal/feature/identity/domain/entity"
)

// mockCodeModel is a mock implementation of the CodeModel interface.
type mockCodeModel struct {
	GenerateFunc func(ctx context.Context, systemInstruction, prompt string) (string, error)
	calls        int
}

func (m *mockCodeModel) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	m.calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, systemInstruction, prompt)
	}
	return "<html></html>", nil
}

func TestGenerationUsecase_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		prompt       string
		typ          entity.ProjectType
		generateFunc func(ctx context.Context, systemInstruction, prompt string) (string, error)
		want         string
		wantErr      error
		wantCalls    int
	}{
		{
			name:   "success: website",
			prompt: "a bakery landing page",
			typ:    entity.ProjectTypeWebsite,
			generateFunc: func(ctx context.Context, systemInstruction, prompt string) (string, error) {
				if prompt != "Create a website for: a bakery landing page" {
					return "", errors.New("unexpected prompt: " + prompt)
				}
				if !strings.Contains(systemInstruction, "https://cdn.tailwindcss.com") {
					return "", errors.New("system instruction lost")
				}
				return "<!DOCTYPE html><html></html>", nil
			},
			want:      "<!DOCTYPE html><html></html>",
			wantCalls: 1,
		},
		{
			name:   "success: fences are stripped",
			prompt: "a todo app",
			typ:    entity.ProjectTypeApp,
			generateFunc: func(ctx context.Context, systemInstruction, prompt string) (string, error) {
				return "```html\n<html></html>\n```", nil
			},
			want:      "\n<html></html>\n",
			wantCalls: 1,
		},
		{
			name:      "failure: empty prompt",
			prompt:    "   ",
			typ:       entity.ProjectTypeApp,
			wantErr:   ErrInvalidPrompt,
			wantCalls: 0,
		},
		{
			name:      "failure: prompt too long",
			prompt:    strings.Repeat("é", MaxPromptLength+1),
			typ:       entity.ProjectTypeApp,
			wantErr:   ErrInvalidPrompt,
			wantCalls: 0,
		},
		{
			name:      "failure: unknown type",
			prompt:    "a blog",
			typ:       entity.ProjectType("desktop"),
			wantErr:   ErrUnsupportedType,
			wantCalls: 0,
		},
		{
			name:   "failure: model error",
			prompt: "a blog",
			typ:    entity.ProjectTypeWebsite,
			generateFunc: func(ctx context.Context, systemInstruction, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
			wantErr:   ErrGeneration,
			wantCalls: 1,
		},
		{
			name:   "failure: only fences",
			prompt: "a blog",
			typ:    entity.ProjectTypeWebsite,
			generateFunc: func(ctx context.Context, systemInstruction, prompt string) (string, error) {
				return "```html\n```", nil
			},
			wantErr:   ErrGeneration,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			model := &mockCodeModel{GenerateFunc: tt.generateFunc}
			uc := NewGenerationUsecase(model)

			got, err := uc.Generate(context.Background(), tt.prompt, tt.typ)

			assert.Equal(t, tt.wantCalls, model.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerationUsecase_PromptAtLimit(t *testing.T) {
	t.Parallel()

	model := &mockCodeModel{}
	_, err := NewGenerationUsecase(model).Generate(context.Background(), strings.Repeat("a", MaxPromptLength), entity.ProjectTypeWebsite)
	assert.NoError(t, err)
}

func TestStripFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"<html></html>", "<html></html>"},
		{"```html<p/>```", "<p/>"},
		{"```<p/>```", "<p/>"},
		{"a```b```html", "ab"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripFences(tt.in), tt.in)
	}
}
