package toast

import (
	"fmt"

	"github.com/vango-dev/showcase/pkg/viewstate"
)

// Type represents the toast notification type.
type Type = viewstate.Category

const (
	TypeSuccess = viewstate.CategorySuccess
	TypeDanger  = viewstate.CategoryDanger
	TypeWarning = viewstate.CategoryWarning
)

// Shower is anything that can display a toast.
type Shower interface {
	ShowToast(category viewstate.Category, message string) error
}

// Show displays a toast notification.
func Show(s Shower, level Type, message string) error {
	return s.ShowToast(level, message)
}

// Success shows a success toast.
//
//	toast.Success(ctrl, "Changes saved!")
func Success(s Shower, message string) error {
	return Show(s, TypeSuccess, message)
}

// Danger shows a danger toast.
//
//	toast.Danger(ctrl, "Item has been deleted.")
func Danger(s Shower, message string) error {
	return Show(s, TypeDanger, message)
}

// Warning shows a warning toast.
//
//	toast.Warning(ctrl, "This action cannot be undone")
func Warning(s Shower, message string) error {
	return Show(s, TypeWarning, message)
}

// FromArgs parses the [category, message] argument pair carried by a
// toast.show action.
func FromArgs(args []string) (Type, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("toast: expected [category, message], got %d args", len(args))
	}
	level, err := viewstate.ParseCategory(args[0])
	if err != nil {
		return "", "", err
	}
	return level, args[1], nil
}
