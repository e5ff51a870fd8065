// Package vdom provides the virtual node tree the showcase widgets render to.
//
// # Core Types
//
// VNode is the building block representing elements, text and fragments.
// Props holds attributes; Attr is used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    Span(Text("Content")),
//	)
//
// Interactivity is expressed with data-* attributes that the browser script
// understands (data-action, data-dropdown-toggle, data-dismiss-target), so
// nodes never carry Go callbacks.
//
// # Class composition
//
// CN joins Tailwind class lists, dropping empty entries:
//
//	Class("px-4 py-2", base, variantClasses)
package vdom
