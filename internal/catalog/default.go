package catalog

import (
	"github.com/vango-dev/showcase/pkg/ui"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

var menuItems = []ui.DropdownItem{
	{Label: "Dashboard"},
	{Label: "Settings"},
	{Label: "Earnings"},
	{Label: "Sign out"},
}

// Default returns the stock page content. The rich variant adds a hover
// dropdown next to the click one.
func Default(v viewstate.Variant) *Catalog {
	c := &Catalog{
		Title: DefaultTitle,
		Buttons: []Button{
			{Label: "Default Button", Class: "bg-blue-500 hover:bg-blue-700"},
			{Label: "Rounded Button", Class: "bg-green-500 hover:bg-green-700 rounded-full"},
			{Label: "Shadow Button", Class: "bg-red-500 hover:bg-red-700 shadow-lg"},
			{Label: "Outlined Button", Class: "bg-yellow-500 hover:bg-yellow-700 border-2 border-yellow-700"},
		},
		Dropdowns: []Dropdown{
			{
				TriggerID: "dropdownDefault",
				TargetID:  "dropdown",
				Mode:      viewstate.TriggerClick,
				Label:     "Default Dropdown",
				Class:     "bg-blue-700 hover:bg-blue-800 focus:ring-blue-300",
				Items:     menuItems,
			},
			{
				TriggerID: "dropdownHoverButton",
				TargetID:  "dropdownHover",
				Mode:      viewstate.TriggerHover,
				Label:     "Hover Dropdown",
				Class:     "bg-green-700 hover:bg-green-800 focus:ring-green-300",
				Items:     menuItems,
			},
		},
		ModalTriggers: []ModalTrigger{
			{Label: "Small Modal", Size: viewstate.SizeSmall, Class: "bg-blue-700 hover:bg-blue-800"},
			{Label: "Medium Modal", Size: viewstate.SizeMedium, Class: "bg-blue-700 hover:bg-blue-800"},
			{Label: "Large Modal", Size: viewstate.SizeLarge, Class: "bg-blue-700 hover:bg-blue-800"},
		},
		ToastTriggers: []ToastTrigger{
			{Label: "Show Success Toast", Category: viewstate.CategorySuccess, Message: "Item moved successfully.", Class: "bg-green-500 hover:bg-green-600"},
			{Label: "Show Danger Toast", Category: viewstate.CategoryDanger, Message: "Item has been deleted.", Class: "bg-red-500 hover:bg-red-600"},
			{Label: "Show Warning Toast", Category: viewstate.CategoryWarning, Message: "This is a warning toast.", Class: "bg-yellow-500 hover:bg-yellow-600"},
		},
	}
	return c.ForVariant(v)
}
