package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vango-dev/showcase/pkg/vdom"
)

// DefaultClientScript is where the server serves the browser script.
const DefaultClientScript = "/_showcase/client.js"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Meta contains named meta tags. Charset and viewport are always
	// written and need not be listed.
	Meta []MetaTag

	// Links contains link tags such as the favicon.
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Scripts contains external script sources loaded from the head.
	Scripts []string

	// ClientConfig is exposed to the browser as window.__SHOWCASE__.
	ClientConfig map[string]any

	// ClientScript is the path to the browser script.
	// Defaults to DefaultClientScript if not specified.
	ClientScript string

	// InlineClient, when set, is embedded in place of the ClientScript
	// reference. Used for static exports that have no server behind them.
	InlineClient string
}

// MetaTag represents a named meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel  string
	Href string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	scripts, err := clientScripts(page)
	if err != nil {
		return err
	}

	doc := vdom.Html(vdom.Lang("en"),
		pageHead(page),
		vdom.Body(page.Body, scripts),
	)

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return r.RenderToWriter(w, doc)
}

func pageHead(page PageData) *vdom.VNode {
	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	)
	add := func(n *vdom.VNode) { head.Children = append(head.Children, n) }

	if page.Title != "" {
		add(vdom.Title(page.Title))
	}
	for _, m := range page.Meta {
		add(vdom.Meta(vdom.Name(m.Name), vdom.Content(m.Content)))
	}
	for _, l := range page.Links {
		add(vdom.Link(vdom.Rel(l.Rel), vdom.Href(l.Href)))
	}
	for _, href := range page.StyleSheets {
		add(vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href)))
	}
	for _, src := range page.Scripts {
		add(vdom.Script(vdom.Src(src)))
	}
	return head
}

// clientScripts returns the client configuration and the showcase script,
// either by reference or inline.
func clientScripts(page PageData) ([]*vdom.VNode, error) {
	var nodes []*vdom.VNode
	if len(page.ClientConfig) > 0 {
		data, err := json.Marshal(page.ClientConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal client config: %w", err)
		}
		nodes = append(nodes, vdom.Script("window.__SHOWCASE__="+string(data)+";"))
	}

	if page.InlineClient != "" {
		return append(nodes, vdom.Script(page.InlineClient)), nil
	}

	src := page.ClientScript
	if src == "" {
		src = DefaultClientScript
	}
	return append(nodes, vdom.Script(vdom.Src(src), vdom.Defer_())), nil
}
