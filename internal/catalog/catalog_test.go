package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

func TestDefault_Rich(t *testing.T) {
	c := Default(viewstate.VariantRich)

	assert.Equal(t, DefaultTitle, c.Title)
	assert.Len(t, c.Buttons, 4)
	require.Len(t, c.Dropdowns, 2)
	assert.Equal(t, viewstate.TriggerHover, c.Dropdowns[1].Mode)
	assert.Len(t, c.ModalTriggers, 3)
	assert.Len(t, c.ToastTriggers, 3)
	assert.NoError(t, c.Validate())
}

func TestDefault_SimpleDropsHover(t *testing.T) {
	c := Default(viewstate.VariantSimple)

	require.Len(t, c.Dropdowns, 1)
	assert.Equal(t, "dropdownDefault", c.Dropdowns[0].TriggerID)
	assert.Equal(t, "dropdown", c.Dropdowns[0].TargetID)
}

func TestBind(t *testing.T) {
	ctrl := viewstate.New(viewstate.WithVariant(viewstate.VariantRich))
	defer ctrl.Close()

	bindings, err := Default(viewstate.VariantRich).Bind(ctrl)
	require.NoError(t, err)
	assert.Len(t, bindings, 2)

	b, ok := ctrl.Dropdown("dropdownHoverButton")
	assert.True(t, ok)
	assert.Equal(t, "dropdownHover", b.TargetID)
}

func TestParse(t *testing.T) {
	doc := `
buttons:
  - label: Only
    class: bg-blue-500
modal_triggers:
  - label: Big
    size: large
toast_triggers:
  - label: Yay
    category: success
    message: done
`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, c.Title)
	assert.Equal(t, viewstate.SizeLarge, c.ModalTriggers[0].Size)
	assert.Equal(t, "done", c.ToastTriggers[0].Message)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code string
	}{
		{"bad yaml", "buttons: [", "E120"},
		{"bad size", "modal_triggers:\n  - label: x\n    size: huge\n", "E121"},
		{"bad category", "toast_triggers:\n  - label: x\n    category: info\n", "E121"},
		{"bad mode", "dropdowns:\n  - trigger_id: a\n    target_id: b\n    mode: focus\n", "E121"},
		{"missing id", "dropdowns:\n  - trigger_id: a\n", "E121"},
		{"duplicate id", "dropdowns:\n  - trigger_id: a\n    target_id: b\n  - trigger_id: c\n    target_id: a\n", "E122"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			se, ok := err.(*errors.ShowcaseError)
			require.True(t, ok, "want *ShowcaseError, got %T", err)
			assert.Equal(t, tt.code, se.Code)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Mine\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Mine", c.Title)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	se, ok := err.(*errors.ShowcaseError)
	require.True(t, ok)
	assert.Equal(t, "E120", se.Code)
	assert.Contains(t, se.Path, "missing.yaml")
}
