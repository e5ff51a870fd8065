// Package showcase composes the widget page from a catalog and the live
// state of a viewstate.Controller.
package showcase

import (
	"github.com/vango-dev/showcase/internal/catalog"
	"github.com/vango-dev/showcase/pkg/render"
	"github.com/vango-dev/showcase/pkg/ui"
	"github.com/vango-dev/showcase/pkg/vdom"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

// Slot IDs. The server replaces these elements wholesale when the
// matching part of the controller changes.
const (
	ModalSlotID = "modal-slot"
	ToastSlotID = "toast-slot"
)

// View renders one session's page.
type View struct {
	Catalog    *catalog.Catalog
	Controller *viewstate.Controller
}

// Body renders the whole page content.
func (v View) Body() *vdom.VNode {
	cat := v.Catalog
	return vdom.Main(
		vdom.Class("container mx-auto p-4"),
		vdom.H1(vdom.Class("text-3xl font-bold text-center mb-8"), vdom.Text(cat.Title)),
		vdom.Div(
			vdom.Class("space-y-8"),
			section("Buttons", vdom.Range(cat.Buttons, func(b catalog.Button, _ int) *vdom.VNode {
				return ui.Button(b.Label, ui.ButtonClass(b.Class))
			})),
			vdom.If(len(cat.Dropdowns) > 0, section("Dropdowns", vdom.Range(cat.Dropdowns, func(d catalog.Dropdown, _ int) *vdom.VNode {
				opts := []ui.DropdownOption{ui.DropdownLabel(d.Label), ui.DropdownItems(d.Items...)}
				if d.Class != "" {
					opts = append(opts, ui.DropdownClass(d.Class))
				}
				return ui.Dropdown(v.binding(d), opts...)
			}))),
			section("Popups", vdom.Range(cat.ModalTriggers, func(m catalog.ModalTrigger, _ int) *vdom.VNode {
				return ui.Button(m.Label,
					ui.ButtonClass(m.Class),
					ui.ButtonAction(ui.ActionModalOpen, string(m.Size)),
				)
			})),
			section("Toast Notifications", vdom.Range(cat.ToastTriggers, func(t catalog.ToastTrigger, _ int) *vdom.VNode {
				return ui.Button(t.Label,
					ui.ButtonClass(t.Class),
					ui.ButtonAction(ui.ActionToastShow, string(t.Category), t.Message),
				)
			})),
		),
		v.ModalSlot(),
		v.ToastSlot(),
	)
}

// binding prefers the controller's stored binding, which has the trigger
// mode resolved.
func (v View) binding(d catalog.Dropdown) viewstate.DropdownBinding {
	if v.Controller != nil {
		if b, ok := v.Controller.Dropdown(d.TriggerID); ok {
			return b
		}
	}
	return d.Binding()
}

// ModalSlot renders the modal container and, if open, the modal.
func (v View) ModalSlot() *vdom.VNode {
	var state viewstate.ModalState
	if v.Controller != nil {
		state = v.Controller.Modal()
	}
	return vdom.Div(vdom.ID(ModalSlotID), ui.Modal(state))
}

// ToastSlot renders the toast container and, if shown, the toast.
func (v View) ToastSlot() *vdom.VNode {
	var (
		state       viewstate.ToastState
		dismissible bool
	)
	if v.Controller != nil {
		state = v.Controller.Toast()
		dismissible = v.Controller.Dismissible()
	}
	return vdom.Div(vdom.ID(ToastSlotID), ui.Toast(state, ui.ToastDismissible(dismissible)))
}

// Slot renders the container affected by a change of kind.
func (v View) Slot(kind viewstate.ChangeKind) *vdom.VNode {
	if kind == viewstate.ChangeModal {
		return v.ModalSlot()
	}
	return v.ToastSlot()
}

// ChangeSlot renders the slot affected by change from the state the change
// carries, without reading the controller again.
func (v View) ChangeSlot(change viewstate.Change) *vdom.VNode {
	if change.Kind == viewstate.ChangeModal {
		return vdom.Div(vdom.ID(ModalSlotID), ui.Modal(change.Modal))
	}
	dismissible := v.Controller != nil && v.Controller.Dismissible()
	return vdom.Div(vdom.ID(ToastSlotID), ui.Toast(change.Toast, ui.ToastDismissible(dismissible)))
}

// SlotID returns the element id for kind.
func SlotID(kind viewstate.ChangeKind) string {
	if kind == viewstate.ChangeModal {
		return ModalSlotID
	}
	return ToastSlotID
}

// TemplateID names the inert fragment for a modal size or toast category.
func TemplateID(kind viewstate.ChangeKind, name string) string {
	return "tpl-" + kind.String() + "-" + name
}

// Templates renders one <template> per modal size and toast category. A
// static export ships them so the browser can swap slots without a server.
func (v View) Templates() []*vdom.VNode {
	dismissible := v.Controller != nil && v.Controller.Dismissible()
	out := make([]*vdom.VNode, 0, len(viewstate.ModalSizes)+len(viewstate.Categories))
	for _, size := range viewstate.ModalSizes {
		out = append(out, vdom.Template(
			vdom.ID(TemplateID(viewstate.ChangeModal, string(size))),
			ui.Modal(viewstate.ModalState{Open: true, Size: size}),
		))
	}
	for _, c := range viewstate.Categories {
		out = append(out, vdom.Template(
			vdom.ID(TemplateID(viewstate.ChangeToast, string(c))),
			ui.Toast(viewstate.ToastState{Show: true, Category: c}, ui.ToastDismissible(dismissible)),
		))
	}
	return out
}

func section(title string, children []*vdom.VNode) *vdom.VNode {
	return vdom.Section(
		vdom.H2(vdom.Class("text-2xl font-semibold mb-4"), vdom.Text(title)),
		vdom.Div(vdom.Class("flex flex-wrap justify-center gap-4"), children),
	)
}

// DefaultDescription is the meta description used when none is configured.
const DefaultDescription = "Modal, toast and dropdown widgets driven by a view state controller."

// Assets selects how styles reach the page and what the head advertises.
type Assets struct {
	Stylesheet  string
	TailwindCDN string
	Favicon     string
	Description string
}

// Document wraps Body in a full page. With static set, the slot templates
// are appended after the body.
func (v View) Document(assets Assets, client map[string]any, static bool) render.PageData {
	body := v.Body()
	if static {
		body = vdom.Fragment(body, v.Templates())
	}
	description := assets.Description
	if description == "" {
		description = DefaultDescription
	}
	page := render.PageData{
		Body:         body,
		Title:        v.Catalog.Title,
		Meta:         []render.MetaTag{{Name: "description", Content: description}},
		ClientConfig: client,
	}
	if assets.Favicon != "" {
		page.Links = append(page.Links, render.LinkTag{Rel: "icon", Href: assets.Favicon})
	}
	if assets.Stylesheet != "" {
		page.StyleSheets = append(page.StyleSheets, assets.Stylesheet)
	} else if assets.TailwindCDN != "" {
		page.Scripts = append(page.Scripts, assets.TailwindCDN)
	}
	return page
}
