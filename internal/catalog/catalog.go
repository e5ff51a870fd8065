// Package catalog describes the widgets shown on the showcase page: which
// buttons, dropdowns and modal/toast triggers exist and how they look.
package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/ui"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

// DefaultTitle is the page heading.
const DefaultTitle = "Component Showcase"

// Catalog is the full widget inventory of the page.
type Catalog struct {
	Title         string         `yaml:"title" json:"title"`
	Buttons       []Button       `yaml:"buttons" json:"buttons"`
	Dropdowns     []Dropdown     `yaml:"dropdowns" json:"dropdowns"`
	ModalTriggers []ModalTrigger `yaml:"modal_triggers" json:"modal_triggers"`
	ToastTriggers []ToastTrigger `yaml:"toast_triggers" json:"toast_triggers"`
}

// Button is a purely decorative button.
type Button struct {
	Label string `yaml:"label" json:"label"`
	Class string `yaml:"class" json:"class"`
}

// Dropdown is a trigger/panel pair.
type Dropdown struct {
	TriggerID string                `yaml:"trigger_id" json:"trigger_id"`
	TargetID  string                `yaml:"target_id" json:"target_id"`
	Mode      viewstate.TriggerMode `yaml:"mode,omitempty" json:"mode,omitempty"`
	Label     string                `yaml:"label" json:"label"`
	Class     string                `yaml:"class,omitempty" json:"class,omitempty"`
	Items     []ui.DropdownItem     `yaml:"items" json:"items"`
}

// Binding returns the dropdown's trigger/target association.
func (d Dropdown) Binding() viewstate.DropdownBinding {
	return viewstate.DropdownBinding{TriggerID: d.TriggerID, TargetID: d.TargetID, Mode: d.Mode}
}

// ModalTrigger opens the modal at Size.
type ModalTrigger struct {
	Label string              `yaml:"label" json:"label"`
	Size  viewstate.ModalSize `yaml:"size" json:"size"`
	Class string              `yaml:"class" json:"class"`
}

// ToastTrigger shows a toast of Category with Message.
type ToastTrigger struct {
	Label    string             `yaml:"label" json:"label"`
	Category viewstate.Category `yaml:"category" json:"category"`
	Message  string             `yaml:"message" json:"message"`
	Class    string             `yaml:"class" json:"class"`
}

// Load reads a catalog from a YAML (or JSON) file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E120").WithPath(path).Wrap(err)
	}
	c, err := Parse(data)
	if err != nil {
		if se, ok := err.(*errors.ShowcaseError); ok {
			return nil, se.WithPath(path)
		}
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.New("E120").WithDetail("invalid YAML").Wrap(err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills in the title.
func (c *Catalog) ApplyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
}

// Validate checks sizes, categories, modes and dropdown ID uniqueness.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, d := range c.Dropdowns {
		if d.TriggerID == "" || d.TargetID == "" {
			return errors.New("E121").WithDetail("dropdown " + d.Label + " needs trigger_id and target_id")
		}
		if _, err := viewstate.ParseTriggerMode(string(d.Mode)); err != nil {
			return errors.New("E121").Wrap(err)
		}
		for _, id := range []string{d.TriggerID, d.TargetID} {
			if seen[id] {
				return errors.New("E122").WithDetail(id)
			}
			seen[id] = true
		}
	}
	for _, m := range c.ModalTriggers {
		if _, err := viewstate.ParseModalSize(string(m.Size)); err != nil {
			return errors.New("E121").Wrap(err)
		}
	}
	for _, t := range c.ToastTriggers {
		if _, err := viewstate.ParseCategory(string(t.Category)); err != nil {
			return errors.New("E121").Wrap(err)
		}
	}
	return nil
}

// Bind registers every dropdown with ctrl and returns the stored bindings,
// in catalog order.
func (c *Catalog) Bind(ctrl *viewstate.Controller) ([]viewstate.DropdownBinding, error) {
	out := make([]viewstate.DropdownBinding, 0, len(c.Dropdowns))
	for _, d := range c.Dropdowns {
		b, err := ctrl.BindDropdown(d.Binding())
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// ForVariant returns a copy without the dropdowns the variant cannot show.
func (c *Catalog) ForVariant(v viewstate.Variant) *Catalog {
	out := *c
	if v != viewstate.VariantSimple {
		return &out
	}
	out.Dropdowns = nil
	for _, d := range c.Dropdowns {
		if d.Mode != viewstate.TriggerHover {
			out.Dropdowns = append(out.Dropdowns, d)
		}
	}
	return &out
}
