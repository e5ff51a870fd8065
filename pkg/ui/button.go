package ui

import (
	"github.com/vango-dev/showcase/pkg/vdom"
)

// baseButtonClass is shared by every showcase button.
const baseButtonClass = "block text-white font-medium rounded-lg text-sm px-5 py-2.5 text-center"

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	id        string
	className string
	action    []vdom.Attr
	attrs     []vdom.Attr
}

// ButtonID sets the element id.
func ButtonID(id string) ButtonOption {
	return func(c *buttonConfig) {
		c.id = id
	}
}

// ButtonClass adds Tailwind classes after the base classes.
func ButtonClass(className string) ButtonOption {
	return func(c *buttonConfig) {
		c.className = className
	}
}

// ButtonAction binds the button to a session action.
func ButtonAction(name string, args ...string) ButtonOption {
	return func(c *buttonConfig) {
		c.action = Action(name, args...)
	}
}

// ButtonAttrs appends arbitrary attributes.
func ButtonAttrs(attrs ...vdom.Attr) ButtonOption {
	return func(c *buttonConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// Button renders a styled button with a text label.
func Button(label string, opts ...ButtonOption) *vdom.VNode {
	var cfg buttonConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return vdom.Button(
		vdom.Type("button"),
		vdom.AttrIf(cfg.id != "", vdom.ID(cfg.id)),
		vdom.Class(baseButtonClass, cfg.className),
		cfg.action,
		cfg.attrs,
		vdom.Text(label),
	)
}
