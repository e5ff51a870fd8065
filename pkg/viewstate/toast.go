package viewstate

import "time"

// DefaultToastDelay is how long a toast stays visible after its last show.
const DefaultToastDelay = 3000 * time.Millisecond

// Category selects the look of a toast.
type Category string

const (
	CategorySuccess Category = "success"
	CategoryDanger  Category = "danger"
	CategoryWarning Category = "warning"
)

// Categories lists every valid toast category.
var Categories = []Category{CategorySuccess, CategoryDanger, CategoryWarning}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySuccess, CategoryDanger, CategoryWarning:
		return true
	}
	return false
}

// ParseCategory converts a string to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", &ValidationError{Field: "toast category", Value: s, Allowed: categoryNames()}
	}
	return c, nil
}

func categoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

// ToastState is the observable state of the toast slot.
// Category and Message are empty whenever Show is false.
type ToastState struct {
	Show     bool     `json:"show"`
	Category Category `json:"category,omitempty"`
	Message  string   `json:"message,omitempty"`
}
