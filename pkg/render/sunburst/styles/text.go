package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// TruncateLabel shortens s to fit into width pixels at the given font size.
func TruncateLabel(s string, width, fontSize float64) string {
	const charWidth = 0.6
	maxChars := max(3, int(width/(fontSize*charWidth)))
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxChars-2]) + ".."
}
