package ui

import (
	"github.com/vango-dev/showcase/pkg/viewstate"
	"github.com/vango-dev/showcase/pkg/vdom"
)

// DefaultToastID is the id of the toast element.
const DefaultToastID = "toast"

type toastStyle struct {
	className string
	glyph     string
	label     string
}

var toastStyles = map[viewstate.Category]toastStyle{
	viewstate.CategorySuccess: {
		className: "text-green-500 bg-green-100 dark:bg-green-800 dark:text-green-200",
		glyph:     checkPath,
		label:     "Check icon",
	},
	viewstate.CategoryDanger: {
		className: "text-red-500 bg-red-100 dark:bg-red-800 dark:text-red-200",
		glyph:     crossPath,
		label:     "Error icon",
	},
	viewstate.CategoryWarning: {
		className: "text-orange-500 bg-orange-100 dark:bg-orange-700 dark:text-orange-200",
		glyph:     warningPath,
		label:     "Warning icon",
	},
}

// ToastColorClass returns the icon color classes for a category, or "" for
// an unknown one.
func ToastColorClass(c viewstate.Category) string {
	return toastStyles[c].className
}

// ToastOption configures a Toast component.
type ToastOption func(*toastConfig)

type toastConfig struct {
	id          string
	dismissible bool
}

// ToastID overrides the toast element id.
func ToastID(id string) ToastOption {
	return func(c *toastConfig) {
		c.id = id
	}
}

// ToastDismissible adds a close control bound to toast.dismiss.
func ToastDismissible(dismissible bool) ToastOption {
	return func(c *toastConfig) {
		c.dismissible = dismissible
	}
}

// Toast renders the toast for state. A hidden toast renders nothing.
func Toast(state viewstate.ToastState, opts ...ToastOption) *vdom.VNode {
	if !state.Show {
		return nil
	}
	style, ok := toastStyles[state.Category]
	if !ok {
		return nil
	}

	cfg := toastConfig{id: DefaultToastID}
	for _, opt := range opts {
		opt(&cfg)
	}

	var dismiss *vdom.VNode
	if cfg.dismissible {
		dismiss = vdom.Button(
			vdom.Type("button"),
			vdom.Class("ml-auto -mx-1.5 -my-1.5 bg-white text-gray-400 hover:text-gray-900 rounded-lg focus:ring-2 focus:ring-gray-300 p-1.5 hover:bg-gray-100 inline-flex items-center justify-center h-8 w-8 dark:text-gray-500 dark:hover:text-white dark:bg-gray-800 dark:hover:bg-gray-700"),
			vdom.Data("dismiss-target", "#"+cfg.id),
			vdom.AriaLabel("Close"),
			Action(ActionToastDismiss),
			srOnly("Close"),
			closeIcon(),
		)
	}

	return vdom.Div(
		vdom.ID(cfg.id),
		vdom.Role("alert"),
		vdom.Data("category", string(state.Category)),
		vdom.Class("fixed flex items-center w-full max-w-xs p-4 mb-4 bottom-5 left-5 text-gray-500 bg-white rounded-lg shadow dark:text-gray-400 dark:bg-gray-800"),
		vdom.Div(
			vdom.Class("inline-flex items-center justify-center flex-shrink-0 w-8 h-8 rounded-lg", style.className),
			glyph(style.glyph),
			srOnly(style.label),
		),
		vdom.Div(vdom.Class("ml-3 text-sm font-normal"), vdom.Data("toast-message", "true"), vdom.Text(state.Message)),
		dismiss,
	)
}
