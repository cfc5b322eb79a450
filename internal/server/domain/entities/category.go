package entities

// Category is a named label optionally attached to notes, unique by name.
type Category struct {
	ID   int64
	Name string
}
