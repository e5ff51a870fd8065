package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vango-dev/showcase/pkg/vdom"
)

// booleanAttrs are written as a bare name when true and omitted when false.
var booleanAttrs = map[string]bool{
	"async":    true,
	"defer":    true,
	"disabled": true,
	"hidden":   true,
	"open":     true,
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and may be shared.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := &htmlWriter{w: w}
	hw.node(node)
	return hw.err
}

// htmlWriter keeps the first error it sees and turns later writes into
// no-ops, so the tree walk does not check every write.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) str(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) node(node *vdom.VNode) {
	if node == nil || hw.err != nil {
		return
	}

	switch node.Kind {
	case vdom.KindElement:
		hw.element(node)
	case vdom.KindText:
		hw.str(escapeHTML(node.Text))
	case vdom.KindFragment:
		for _, child := range node.Children {
			hw.node(child)
		}
	default:
		hw.err = fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (hw *htmlWriter) element(node *vdom.VNode) {
	tag := node.Tag
	if tag == "" {
		hw.err = fmt.Errorf("element without tag")
		return
	}

	hw.str("<" + tag)
	hw.attrs(node.Props)
	hw.str(">")
	if vdom.IsVoidElement(tag) {
		return
	}

	for _, child := range node.Children {
		// Script bodies are not HTML. They are escaped only enough to keep
		// the element open.
		if tag == "script" && child.Kind == vdom.KindText {
			hw.str(escapeScript(child.Text))
			continue
		}
		hw.node(child)
	}
	hw.str("</" + tag + ">")
}

// attrs writes props in sorted key order so output is deterministic.
func (hw *htmlWriter) attrs(props vdom.Props) {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		if on, ok := value.(bool); ok && booleanAttrs[key] {
			if on {
				hw.str(" " + key)
			}
			continue
		}
		if s := attrToString(value); s != "" {
			hw.str(" " + key + `="` + escapeAttr(s) + `"`)
		}
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
