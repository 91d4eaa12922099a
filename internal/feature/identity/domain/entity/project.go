package entity

import "time"

// ProjectType is the kind of artifact a project holds.
type ProjectType string

const (
	ProjectTypeWebsite ProjectType = "website"
	ProjectTypeApp     ProjectType = "app"
)

// Valid reports whether t is one of the known project types.
func (t ProjectType) Valid() bool {
	return t == ProjectTypeWebsite || t == ProjectTypeApp
}

// Project is a saved generation result owned by exactly one user.
type Project struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Name      string      `json:"name"`
	Prompt    string      `json:"prompt"`
	Type      ProjectType `json:"type"`
	Code      string      `json:"code"`
	CreatedAt time.Time   `json:"createdAt"`
}
