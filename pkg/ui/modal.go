package ui

import (
	"fmt"

	"github.com/vango-dev/showcase/pkg/viewstate"
	"github.com/vango-dev/showcase/pkg/vdom"
)

// DefaultModalID is the id of the modal backdrop element.
const DefaultModalID = "popup-modal"

// ModalWidthClass maps a modal size to its max-width utility.
func ModalWidthClass(size viewstate.ModalSize) string {
	switch size {
	case viewstate.SizeSmall:
		return "max-w-md"
	case viewstate.SizeMedium:
		return "max-w-lg"
	default:
		return "max-w-4xl"
	}
}

// ModalOption configures a Modal component.
type ModalOption func(*modalConfig)

type modalConfig struct {
	id      string
	content string
}

// ModalID overrides the backdrop element id.
func ModalID(id string) ModalOption {
	return func(c *modalConfig) {
		c.id = id
	}
}

// ModalContent replaces the default "This is a <size> modal." text.
func ModalContent(content string) ModalOption {
	return func(c *modalConfig) {
		c.content = content
	}
}

// Modal renders the modal for state. A closed modal renders nothing, so no
// backdrop or focus trap exists while it is closed.
func Modal(state viewstate.ModalState, opts ...ModalOption) *vdom.VNode {
	if !state.Open {
		return nil
	}

	cfg := modalConfig{id: DefaultModalID}
	for _, opt := range opts {
		opt(&cfg)
	}
	content := cfg.content
	if content == "" {
		content = fmt.Sprintf("This is a %s modal.", state.Size)
	}

	closeButton := vdom.Button(
		vdom.Type("button"),
		vdom.Class("absolute top-3 right-2.5 text-gray-400 bg-transparent hover:bg-gray-200 hover:text-gray-900 rounded-lg text-sm w-8 h-8 ml-auto inline-flex justify-center items-center dark:hover:bg-gray-600 dark:hover:text-white"),
		Action(ActionModalClose),
		closeIcon(),
		srOnly("Close modal"),
	)

	return vdom.Div(
		vdom.ID(cfg.id),
		vdom.TabIndex(-1),
		vdom.Data("size", string(state.Size)),
		vdom.Data("hook", "FocusTrap"),
		vdom.Class("fixed top-0 left-0 right-0 z-50 p-4 overflow-x-hidden overflow-y-auto md:inset-0 h-[calc(100%-1rem)] max-h-full flex justify-center items-center bg-black bg-opacity-50"),
		vdom.Div(
			vdom.Class("relative w-full max-h-full", ModalWidthClass(state.Size)),
			vdom.Div(
				vdom.Role("dialog"),
				vdom.AriaModal(true),
				vdom.Class("relative bg-white rounded-lg shadow dark:bg-gray-700"),
				closeButton,
				vdom.Div(
					vdom.Class("p-6 text-center"),
					infoIcon(),
					vdom.H3(
						vdom.Class("mb-5 text-lg font-normal text-gray-500 dark:text-gray-400"),
						vdom.Text(content),
					),
					Button("Close",
						ButtonClass("inline-flex items-center bg-red-600 hover:bg-red-800 focus:ring-4 focus:outline-none focus:ring-red-300 mr-2"),
						ButtonAction(ActionModalClose),
					),
				),
			),
		),
	)
}
