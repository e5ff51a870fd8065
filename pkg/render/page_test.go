package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/showcase/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer()

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title:       "Component Showcase",
		Body:        vdom.Div(vdom.ID("app"), "hello"),
		Meta:        []MetaTag{{Name: "description", Content: "Modal & toast"}},
		Links:       []LinkTag{{Rel: "icon", Href: "/favicon.svg"}},
		StyleSheets: []string{"/app.css"},
		Scripts:     []string{"https://cdn.tailwindcss.com"},
		ClientConfig: map[string]any{
			"ws": "/_showcase/ws",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	if !strings.HasPrefix(html, "<!DOCTYPE html>\n<html lang=\"en\"><head>") {
		t.Errorf("unexpected document start: %q", html[:40])
	}
	for _, want := range []string{
		`<meta charset="utf-8">`,
		`<meta content="width=device-width, initial-scale=1" name="viewport">`,
		"<title>Component Showcase</title>",
		`<meta content="Modal &amp; toast" name="description">`,
		`<link href="/favicon.svg" rel="icon">`,
		`<link href="/app.css" rel="stylesheet">`,
		`<script src="https://cdn.tailwindcss.com"></script>`,
		`<body><div id="app">hello</div>`,
		`<script>window.__SHOWCASE__={"ws":"/_showcase/ws"};</script>`,
		`<script defer src="/_showcase/client.js"></script>`,
		"</body></html>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestRenderPageHeadOrder(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().RenderPage(&buf, PageData{
		Title: "T",
		Links: []LinkTag{{Rel: "icon", Href: "/i.png"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	charset := strings.Index(html, `charset="utf-8"`)
	title := strings.Index(html, "<title>")
	icon := strings.Index(html, `rel="icon"`)
	if charset < 0 || !(charset < title && title < icon) {
		t.Errorf("head out of order: charset=%d title=%d icon=%d", charset, title, icon)
	}
	if strings.Contains(html, "<title></title>") {
		t.Error("empty title should be omitted")
	}
}

func TestRenderPageInlineClient(t *testing.T) {
	renderer := NewRenderer()

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Body:         vdom.Div(),
		InlineClient: "console.log('</script>')",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	if strings.Contains(html, DefaultClientScript) {
		t.Error("inline client should replace the script reference")
	}
	if !strings.Contains(html, `<script>console.log('<\/script>')</script>`) {
		t.Errorf("inline client should be escaped, got %s", html)
	}
	if strings.Contains(html, "__SHOWCASE__") {
		t.Error("empty client config should not be written")
	}
}

func TestRenderPageCustomClientScript(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().RenderPage(&buf, PageData{ClientScript: "/assets/showcase.js"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `<script defer src="/assets/showcase.js"></script>`) {
		t.Errorf("custom client script missing: %s", buf.String())
	}
}

func TestRenderPageBadClientConfig(t *testing.T) {
	err := NewRenderer().RenderPage(&bytes.Buffer{}, PageData{
		ClientConfig: map[string]any{"bad": make(chan int)},
	})
	if err == nil {
		t.Error("expected marshal error")
	}
}
