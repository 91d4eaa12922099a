// Package entity defines the domain entities for the identity feature.
package entity

import "time"

// User is a registered account as held in the users collection.
type User struct {
	// ID is an opaque token used only for equality and as the project owner reference.
	ID string `json:"id"`

	// Email is unique across all users and compared exactly as stored.
	Email string `json:"email"`

	// Name is the display name supplied at signup.
	Name string `json:"name"`

	// PasswordProof is the stored transformation of the password.
	// It must never leave the store.
	PasswordProof string `json:"passwordProof"`

	// CreatedAt is the signup time.
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the projection of a User that is safe to hand out.
// It is also the shape of the persisted session pointer.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the public projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
