package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeXML_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeXML(""))
}

func TestEscapeXML_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	assert.Equal(t, text, EscapeXML(text))
}

func TestEscapeXML_Ampersand(t *testing.T) {
	assert.Equal(t, "Time Horizon &amp; Financial Stability", EscapeXML("Time Horizon & Financial Stability"))
}

func TestEscapeXML_AngleBrackets(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", EscapeXML("<b>bold</b>"))
}

func TestEscapeXML_Quotes(t *testing.T) {
	assert.Equal(t, "client&apos;s &quot;goal&quot;", EscapeXML(`client's "goal"`))
}

func TestEscapeXML_DropsControlCharacters(t *testing.T) {
	assert.Equal(t, "ab", EscapeXML("a\x00\x07b"))
	assert.Equal(t, "a\tb\nc", EscapeXML("a\tb\nc"))
}

func TestEscapeXML_UnicodeCharacters(t *testing.T) {
	text := "Fidelity’s established expertise – α β γ"
	assert.Equal(t, text, EscapeXML(text))
}

func TestRunContent_Empty(t *testing.T) {
	assert.Equal(t, "", runContent(""))
}

func TestRunContent_SingleLine(t *testing.T) {
	assert.Equal(t, `<w:t xml:space="preserve">Assessment: High</w:t>`, runContent("Assessment: High"))
}

func TestRunContent_LineBreaks(t *testing.T) {
	got := runContent("Low Cost:\nMER 0.20%\n\nDiversification:")
	want := `<w:t xml:space="preserve">Low Cost:</w:t><w:br/>` +
		`<w:t xml:space="preserve">MER 0.20%</w:t><w:br/><w:br/>` +
		`<w:t xml:space="preserve">Diversification:</w:t>`
	assert.Equal(t, want, got)
}

func TestRunContent_NormalizesCarriageReturns(t *testing.T) {
	assert.Equal(t, runContent("a\nb\nc"), runContent("a\r\nb\rc"))
}

func TestRunContent_Tabs(t *testing.T) {
	assert.Equal(t, `<w:t xml:space="preserve">a</w:t><w:tab/><w:t xml:space="preserve">b &amp; c</w:t>`, runContent("a\tb & c"))
}
