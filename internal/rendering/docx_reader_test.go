package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// docxParagraph is a paragraph read back from word/document.xml
type docxParagraph struct {
	Style string
	Text  string
}

func readPart(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return content
	}
	t.Fatalf("part %s not found", name)
	return nil
}

// readParagraphs decodes document.xml and returns each w:p with its style and
// text, turning w:br into newlines and w:tab into tabs.
func readParagraphs(t *testing.T, data []byte) []docxParagraph {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(readPart(t, data, "word/document.xml")))

	var (
		paragraphs []docxParagraph
		current    *docxParagraph
		text       strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				current = &docxParagraph{}
				text.Reset()
			case "pStyle":
				for _, attr := range el.Attr {
					if attr.Name.Local == "val" {
						current.Style = attr.Value
					}
				}
			case "t":
				inText = true
			case "br":
				text.WriteString("\n")
			case "tab":
				text.WriteString("\t")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "p":
				current.Text = text.String()
				paragraphs = append(paragraphs, *current)
				current = nil
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				text.Write(el)
			}
		}
	}
	return paragraphs
}
