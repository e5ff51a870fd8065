package ui

import (
	"github.com/vango-dev/showcase/pkg/vdom"
)

const svgNS = "http://www.w3.org/2000/svg"

// chevronDown is the caret shown on dropdown triggers.
func chevronDown() *vdom.VNode {
	return vdom.Svg(
		vdom.Class("w-4 h-4 ml-2"),
		vdom.Fill("none"),
		vdom.Stroke("currentColor"),
		vdom.ViewBox("0 0 24 24"),
		vdom.Xmlns(svgNS),
		vdom.Path(vdom.StrokeLinecap("round"), vdom.StrokeLinejoin("round"), vdom.StrokeWidth("2"), vdom.D("M19 9l-7 7-7-7")),
	)
}

// closeIcon is the small X used by the modal and toast close buttons.
func closeIcon() *vdom.VNode {
	return vdom.Svg(
		vdom.Class("w-3 h-3"),
		vdom.AriaHidden(true),
		vdom.Xmlns(svgNS),
		vdom.Fill("none"),
		vdom.ViewBox("0 0 14 14"),
		vdom.Path(
			vdom.Stroke("currentColor"),
			vdom.StrokeLinecap("round"),
			vdom.StrokeLinejoin("round"),
			vdom.StrokeWidth("2"),
			vdom.D("m1 1 6 6m0 0 6 6M7 7l6-6M7 7l-6 6"),
		),
	)
}

// infoIcon is the circled exclamation above the modal text.
func infoIcon() *vdom.VNode {
	return vdom.Svg(
		vdom.Class("mx-auto mb-4 text-gray-400 w-12 h-12 dark:text-gray-200"),
		vdom.AriaHidden(true),
		vdom.Xmlns(svgNS),
		vdom.Fill("none"),
		vdom.ViewBox("0 0 20 20"),
		vdom.Path(
			vdom.Stroke("currentColor"),
			vdom.StrokeLinecap("round"),
			vdom.StrokeLinejoin("round"),
			vdom.StrokeWidth("2"),
			vdom.D("M10 11V6m0 8h.01M19 10a9 9 0 1 1-18 0 9 9 0 0 1 18 0Z"),
		),
	)
}

// Toast glyphs, one per category.
const (
	checkPath   = "M10 .5a9.5 9.5 0 1 0 9.5 9.5A9.51 9.51 0 0 0 10 .5Zm3.707 8.207-4 4a1 1 0 0 1-1.414 0l-2-2a1 1 0 0 1 1.414-1.414L9 10.586l3.293-3.293a1 1 0 0 1 1.414 1.414Z"
	crossPath   = "M10 .5a9.5 9.5 0 1 0 9.5 9.5A9.51 9.51 0 0 0 10 .5Zm3.707 11.793a1 1 0 1 1-1.414 1.414L10 11.414l-2.293 2.293a1 1 0 0 1-1.414-1.414L8.586 10 6.293 7.707a1 1 0 0 1 1.414-1.414L10 8.586l2.293-2.293a1 1 0 0 1 1.414 1.414L11.414 10l2.293 2.293Z"
	warningPath = "M10 .5a9.5 9.5 0 1 0 9.5 9.5A9.51 9.51 0 0 0 10 .5ZM10 15a1 1 0 1 1 0-2 1 1 0 0 1 0 2Zm1-4a1 1 0 0 1-2 0V6a1 1 0 0 1 2 0v5Z"
)

func glyph(d string) *vdom.VNode {
	return vdom.Svg(
		vdom.Class("w-5 h-5"),
		vdom.AriaHidden(true),
		vdom.Xmlns(svgNS),
		vdom.Fill("currentColor"),
		vdom.ViewBox("0 0 20 20"),
		vdom.Path(vdom.D(d)),
	)
}

func srOnly(text string) *vdom.VNode {
	return vdom.Span(vdom.Class("sr-only"), vdom.Text(text))
}
