package entity

// Category groups templates by the kind of artifact they produce.
type Category string

const (
	CategoryWebsite Category = "website"
	CategoryApp     Category = "app"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryWebsite || c == CategoryApp
}

// Template is a starter prompt shown in the template library.
type Template struct {
	ID          string
	Title       string
	Description string
	Category    Category
	ImageURL    string
	Prompt      string
	// Brand and Accent drive the placeholder page rendered by Code.
	Brand  string
	Accent string
	// Code is a ready-to-preview placeholder document.
	Code string
}
