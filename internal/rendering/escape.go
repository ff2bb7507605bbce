package rendering

import "strings"

// EscapeXML escapes text for use in XML character data and attribute values.
// Characters that XML 1.0 does not allow (most C0 controls) are dropped.
func EscapeXML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/8)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&apos;")
		default:
			if !validXMLChar(r) {
				continue
			}
			result.WriteRune(r)
		}
	}

	return result.String()
}

func validXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}

// runContent converts block text into the inner XML of a single w:r run.
// Line breaks become w:br and tabs become w:tab so the text keeps its layout
// inside one paragraph.
func runContent(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	segment := strings.Builder{}
	flush := func() {
		if segment.Len() == 0 {
			return
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(EscapeXML(segment.String()))
		b.WriteString(`</w:t>`)
		segment.Reset()
	}

	for _, r := range text {
		switch r {
		case '\n':
			flush()
			b.WriteString("<w:br/>")
		case '\t':
			flush()
			b.WriteString("<w:tab/>")
		default:
			segment.WriteRune(r)
		}
	}
	flush()

	return b.String()
}
