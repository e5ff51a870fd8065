package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/showcase/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer()

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.Span(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="container"><h1>Title</h1><span>Content</span></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer()

	node := vdom.Button(
		vdom.ID("dropdownHoverButton"),
		vdom.Data("dropdown-trigger", "hover"),
		vdom.Data("dropdown-toggle", "dropdownHover"),
		vdom.Type("button"),
	)
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<button data-dropdown-toggle="dropdownHover" data-dropdown-trigger="hover" id="dropdownHoverButton" type="button"></button>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderVoidAndBoolean(t *testing.T) {
	renderer := NewRenderer()

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "meta",
			node: vdom.Meta(vdom.Charset("utf-8")),
			want: `<meta charset="utf-8">`,
		},
		{
			name: "defer true",
			node: vdom.Script(vdom.Src("/x.js"), vdom.Defer_()),
			want: `<script defer src="/x.js"></script>`,
		},
		{
			name: "aria-hidden is not boolean",
			node: vdom.Span(vdom.AriaHidden(true)),
			want: `<span aria-hidden="true"></span>`,
		},
		{
			name: "tabindex int",
			node: vdom.Div(vdom.TabIndex(-1)),
			want: `<div tabindex="-1"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFragment(t *testing.T) {
	renderer := NewRenderer()

	node := vdom.Fragment(vdom.Span("a"), nil, "b & c")

	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<span>a</span>b &amp; c" {
		t.Errorf("got %q", html)
	}
}

func TestRenderScriptBodyVerbatim(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderToString(vdom.Script(vdom.Text("if (a < b && c) {}")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<script>if (a < b && c) {}</script>" {
		t.Errorf("got %q", html)
	}

	html, err = renderer.RenderToString(vdom.Script("x = '</script>'"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<script>x = '<\/script>'</script>` {
		t.Errorf("script close tag should be escaped, got %q", html)
	}
}

func TestRenderNil(t *testing.T) {
	renderer := NewRenderer()
	html, err := renderer.RenderToString(nil)
	if err != nil || html != "" {
		t.Errorf("RenderToString(nil) = %q, %v", html, err)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	renderer := NewRenderer()
	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(99)}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRenderHiddenFalseOmitted(t *testing.T) {
	html, err := NewRenderer().RenderToString(vdom.Div(vdom.Attr{Key: "hidden", Value: false}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div></div>" {
		t.Errorf("got %q", html)
	}
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errWrite
}

var errWrite = errors.New("write failed")

func TestRenderStopsAtFirstWriteError(t *testing.T) {
	w := &failingWriter{}
	err := NewRenderer().RenderToWriter(w, vdom.Div(vdom.Span("a"), vdom.Span("b")))
	if !errors.Is(err, errWrite) {
		t.Fatalf("err = %v, want errWrite", err)
	}
	if w.n != 1 {
		t.Errorf("writes after failure = %d, want 1", w.n)
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewRenderer()
	build := func() *vdom.VNode {
		return vdom.Div(vdom.ID("toast"), vdom.Role("alert"), vdom.Class("fixed flex"), vdom.Data("x", "1"))
	}

	first, _ := renderer.RenderToString(build())
	for i := 0; i < 20; i++ {
		again, _ := renderer.RenderToString(build())
		if again != first {
			t.Fatalf("render %d differs: %q vs %q", i, again, first)
		}
	}
}
