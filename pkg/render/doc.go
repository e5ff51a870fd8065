// Package render converts VNode trees into HTML.
//
// It handles escaping of text and attribute values, void elements, boolean
// attributes and full page rendering. Pages are built as vdom trees too, so
// the head goes through the same escaping as the body. Output is
// deterministic: attributes are written in sorted order so a slot rendered
// twice from the same state produces byte-identical HTML.
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	renderer := render.NewRenderer()
//	html, err := renderer.RenderToString(node)
//
// To render a complete page:
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "Component Showcase",
//	    Body:  body,
//	})
package render
