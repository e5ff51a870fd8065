package ui

import (
	"github.com/vango-dev/showcase/pkg/viewstate"
	"github.com/vango-dev/showcase/pkg/vdom"
)

// DropdownOption configures a Dropdown component.
type DropdownOption func(*dropdownConfig)

type dropdownConfig struct {
	label     string
	items     []DropdownItem
	className string
}

// DropdownItem is one entry of the dropdown panel.
type DropdownItem struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
}

func defaultDropdownConfig() dropdownConfig {
	return dropdownConfig{
		label:     "Dropdown",
		className: "bg-blue-700 hover:bg-blue-800 focus:ring-blue-300",
	}
}

// DropdownLabel sets the trigger text.
func DropdownLabel(label string) DropdownOption {
	return func(c *dropdownConfig) {
		c.label = label
	}
}

// DropdownItems sets the panel entries.
func DropdownItems(items ...DropdownItem) DropdownOption {
	return func(c *dropdownConfig) {
		c.items = items
	}
}

// DropdownClass replaces the trigger color classes.
func DropdownClass(className string) DropdownOption {
	return func(c *dropdownConfig) {
		c.className = className
	}
}

// Dropdown renders a trigger button and its hidden panel. The browser
// script toggles the panel on click, or on hover when the binding asks for
// it.
func Dropdown(b viewstate.DropdownBinding, opts ...DropdownOption) *vdom.VNode {
	cfg := defaultDropdownConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	trigger := vdom.Button(
		vdom.ID(b.TriggerID),
		vdom.Type("button"),
		vdom.Data("dropdown-toggle", b.TargetID),
		vdom.AttrIf(b.Mode == viewstate.TriggerHover, vdom.Data("dropdown-trigger", string(viewstate.TriggerHover))),
		vdom.Class(
			"text-white focus:ring-4 focus:outline-none font-medium rounded-lg text-sm px-4 py-2.5 text-center inline-flex items-center",
			cfg.className,
		),
		vdom.Text(cfg.label),
		chevronDown(),
	)

	items := vdom.Range(cfg.items, func(item DropdownItem, _ int) *vdom.VNode {
		href := item.Href
		if href == "" {
			href = "#"
		}
		return vdom.Li(
			vdom.A(
				vdom.Href(href),
				vdom.Class("block px-4 py-2 hover:bg-gray-100 dark:hover:bg-gray-600 dark:hover:text-white"),
				vdom.Text(item.Label),
			),
		)
	})

	panel := vdom.Div(
		vdom.ID(b.TargetID),
		vdom.Class("z-10 hidden bg-white divide-y divide-gray-100 rounded-lg shadow w-44 dark:bg-gray-700"),
		vdom.Ul(
			vdom.Class("py-2 text-sm text-gray-700 dark:text-gray-200"),
			vdom.AriaLabelledBy(b.TriggerID),
			items,
		),
	)

	return vdom.Div(vdom.Class("relative"), trigger, panel)
}
