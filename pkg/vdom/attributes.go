package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", CN(classes...)) }

// Data creates a data-* attribute.
// Example: Data("dropdown-toggle", "dropdown") → data-dropdown-toggle="dropdown"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Link and form attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Defer_ sets the defer attribute on scripts.
func Defer_() Attr { return attr("defer", true) }

// Meta attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// SVG attributes

// Xmlns sets the xmlns attribute.
func Xmlns(ns string) Attr { return attr("xmlns", ns) }

// ViewBox sets the SVG viewBox attribute.
func ViewBox(box string) Attr { return attr("viewBox", box) }

// Fill sets the SVG fill attribute.
func Fill(fill string) Attr { return attr("fill", fill) }

// Stroke sets the SVG stroke attribute.
func Stroke(stroke string) Attr { return attr("stroke", stroke) }

// StrokeWidth sets the SVG stroke-width attribute.
func StrokeWidth(w string) Attr { return attr("stroke-width", w) }

// StrokeLinecap sets the SVG stroke-linecap attribute.
func StrokeLinecap(cap string) Attr { return attr("stroke-linecap", cap) }

// StrokeLinejoin sets the SVG stroke-linejoin attribute.
func StrokeLinejoin(join string) Attr { return attr("stroke-linejoin", join) }

// D sets the SVG path data attribute.
func D(d string) Attr { return attr("d", d) }

// Conditional attributes

// AttrIf returns the attribute if condition is true, otherwise an empty Attr.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// CN joins class lists, dropping empty entries and collapsing whitespace.
func CN(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		parts = append(parts, strings.Fields(c)...)
	}
	return strings.Join(parts, " ")
}
