package render

import "strings"

var (
	htmlReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// attrReplacer also encodes whitespace that would otherwise be
	// normalized by the attribute parser.
	attrReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)

	scriptReplacer = strings.NewReplacer(
		"</", `<\/`,
		"<!--", `<\!--`,
	)
)

// escapeHTML escapes text content.
func escapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// escapeAttr escapes a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrReplacer.Replace(s)
}

// escapeScript keeps inline script text from closing its element or
// opening a comment.
func escapeScript(s string) string {
	return scriptReplacer.Replace(s)
}
