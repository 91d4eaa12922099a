// Package api defines the JSON request and response bodies of the HTTP API.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SignupRequest is the body of POST /signup.
// The fields mirror the signup form: every field is required and the password has at least 6 characters.
type SignupRequest struct {
	Name     string              `json:"name" binding:"required"`
	Email    openapi_types.Email `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    openapi_types.Email `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by a successful signup or login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// SessionResponse is returned by GET /session while someone is logged in.
type SessionResponse struct {
	User UserResponse `json:"user"`
}

// SaveProjectRequest is the body of POST /projects.
type SaveProjectRequest struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt" binding:"required"`
	Code   string `json:"code" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

// ProjectResponse is a saved project.
type ProjectResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	Type      string    `json:"type"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

// GenerateResponse carries the generated single-file HTML document.
type GenerateResponse struct {
	Code string `json:"code"`
}

// TemplateResponse is one entry of the starter template catalog.
type TemplateResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Prompt      string `json:"prompt"`
	Code        string `json:"code"`
}
