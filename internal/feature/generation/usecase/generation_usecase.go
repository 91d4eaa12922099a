// Package usecase turns a free-text prompt into a single-file HTML prototype.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"regalis_backend/internal/feature/identity/domain/entity"
)

// MaxPromptLength is the longest prompt accepted, in runes.
const MaxPromptLength = 4000

var (
	// ErrGeneration is returned for every failure of the code model.
	ErrGeneration = errors.New("failed to generate code, please try again")
	// ErrInvalidPrompt is returned for an empty or oversized prompt.
	ErrInvalidPrompt = errors.New("invalid prompt")
	// ErrUnsupportedType is returned when the artifact type is neither website nor app.
	ErrUnsupportedType = errors.New("type must be website or app")
)

// SystemInstruction steers the model towards a self-contained HTML document.
const SystemInstruction = `You are an elite full-stack developer and UI/UX designer known for creating luxurious, high-performance digital products.
Your task is to generate a single-file HTML document containing a complete, working prototype based on the user's prompt.

Requirements:
1. Use HTML5 boilerplate.
2. Use Tailwind CSS via CDN (<script src="https://cdn.tailwindcss.com"></script>) for styling.
3. The design must be modern, responsive, and aesthetically stunning. Use gradients, shadows, and spacing like a premium product.
4. If interaction is needed, include vanilla JavaScript within <script> tags.
5. For 'app' type requests:
   - Style the main container to look like a mobile view (max-width: 375px, margin: 0 auto, min-height: 812px).
   - Ensure it looks like a native app (bottom navigation, top bar, touch-friendly buttons).
6. Do NOT use markdown code blocks (like ` + "```html" + `). Just return the raw code string.
7. Do NOT include explanations. Just the code.`

// CodeModel is the language model that writes the HTML.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapter).
type CodeModel interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

type generationUsecase struct {
	model CodeModel
}

// NewGenerationUsecase creates the generation usecase on top of model.
func NewGenerationUsecase(model CodeModel) *generationUsecase {
	return &generationUsecase{model: model}
}

// Generate asks the model for a prototype of the given type.
func (u *generationUsecase) Generate(ctx context.Context, prompt string, typ entity.ProjectType) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt is required", ErrInvalidPrompt)
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return "", fmt.Errorf("%w: prompt exceeds maximum length of %d characters", ErrInvalidPrompt, MaxPromptLength)
	}
	if !typ.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
	}

	out, err := u.model.Generate(ctx, SystemInstruction, BuildPrompt(prompt, typ))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	code := StripFences(out)
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("%w: model returned no code", ErrGeneration)
	}
	return code, nil
}

// BuildPrompt formats the user request sent as the model's content.
func BuildPrompt(prompt string, typ entity.ProjectType) string {
	return fmt.Sprintf("Create a %s for: %s", typ, prompt)
}

// StripFences removes markdown code fences the model sometimes adds despite the instruction.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```html", "")
	return strings.ReplaceAll(s, "```", "")
}
