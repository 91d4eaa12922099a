// Package usecase implements the identity and project store.
package usecase

import "errors"

var (
	// ErrDuplicateEmail is returned by Signup when the email is already registered.
	ErrDuplicateEmail = errors.New("this email is already registered")

	// ErrInvalidCredentials is returned by Login for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidProjectType is returned when a project type is neither website nor app.
	ErrInvalidProjectType = errors.New("invalid project type")

	// ErrStoreClosed is returned for operations submitted after Close.
	ErrStoreClosed = errors.New("identity store is closed")
)
