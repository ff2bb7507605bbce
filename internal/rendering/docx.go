package rendering

import (
	"archive/zip"
	"bytes"
	"embed"
	"fmt"
	"io"
	"strconv"
	"sync"
	"text/template"
	"time"

	"github.com/jonathan/kyp-analysis/internal/types"
)

const (
	// ReportFilename is the download name of an exported report.
	ReportFilename = "KYP_Analysis_Report.docx"
	// ContentType is the media type of an exported report.
	ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	defaultFont     = "Calibri"
	defaultFontSize = 11
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// packagePart maps a template to its path inside the .docx package.
// The order here is the order parts are written.
type packagePart struct {
	name     string
	template string
}

var packageParts = []packagePart{
	{name: "[Content_Types].xml", template: "content_types.xml.tmpl"},
	{name: "_rels/.rels", template: "rels.xml.tmpl"},
	{name: "docProps/core.xml", template: "core.xml.tmpl"},
	{name: "docProps/app.xml", template: "app.xml.tmpl"},
	{name: "word/_rels/document.xml.rels", template: "document_rels.xml.tmpl"},
	{name: "word/styles.xml", template: "styles.xml.tmpl"},
	{name: "word/numbering.xml", template: "numbering.xml.tmpl"},
	{name: "word/document.xml", template: "document.xml.tmpl"},
}

// zipModTime is stamped on every package entry so identical reports produce
// identical bytes.
var zipModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	partsOnce     sync.Once
	partsTemplate *template.Template
	partsErr      error
)

func loadTemplates() (*template.Template, error) {
	partsOnce.Do(func() {
		tmpl, err := template.New("docx").Funcs(template.FuncMap{
			"xml": EscapeXML,
		}).ParseFS(templateFS, "templates/*.tmpl")
		if err != nil {
			partsErr = &TemplateError{Message: "failed to parse docx templates", Cause: err}
			return
		}
		partsTemplate = tmpl
	})
	return partsTemplate, partsErr
}

// DOCXOptions controls document-wide styling.
type DOCXOptions struct {
	Font     string
	FontSize int // points
}

// DefaultDOCXOptions returns Calibri 11pt.
func DefaultDOCXOptions() DOCXOptions {
	return DOCXOptions{Font: defaultFont, FontSize: defaultFontSize}
}

// paragraphView is a report block prepared for document.xml
type paragraphView struct {
	StyleID string
	Runs    string
}

// templateView is the data passed to every package part template
type templateView struct {
	Title      string
	Date       string
	Font       string
	HalfPoints string
	Paragraphs []paragraphView
}

// RenderDOCX serializes doc into a .docx package held in memory.
func RenderDOCX(doc *types.ReportDocument, opts DOCXOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDOCX(&buf, doc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDOCX serializes doc as a .docx package to w.
func WriteDOCX(w io.Writer, doc *types.ReportDocument, opts DOCXOptions) error {
	if doc == nil {
		return &RenderError{Message: "report document is nil"}
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return err
	}

	view, err := buildTemplateView(doc, opts)
	if err != nil {
		return &RenderError{Message: "failed to build document view", Cause: err}
	}

	zw := zip.NewWriter(w)
	for _, part := range packageParts {
		header := &zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: zipModTime,
		}
		entry, err := zw.CreateHeader(header)
		if err != nil {
			return &RenderError{Message: fmt.Sprintf("failed to create package part %s", part.name), Cause: err}
		}
		if err := tmpl.ExecuteTemplate(entry, part.template, view); err != nil {
			return &TemplateError{Message: fmt.Sprintf("failed to execute template %s", part.template), Cause: err}
		}
	}

	if err := zw.Close(); err != nil {
		return &RenderError{Message: "failed to finalize docx package", Cause: err}
	}
	return nil
}

func buildTemplateView(doc *types.ReportDocument, opts DOCXOptions) (*templateView, error) {
	if opts.Font == "" {
		opts.Font = defaultFont
	}
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}

	paragraphs := make([]paragraphView, 0, len(doc.Blocks))
	for i, block := range doc.Blocks {
		styleID, err := styleFor(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		paragraphs = append(paragraphs, paragraphView{
			StyleID: styleID,
			Runs:    runContent(block.Text),
		})
	}

	return &templateView{
		Title:      doc.Title,
		Date:       doc.Date,
		Font:       opts.Font,
		HalfPoints: strconv.Itoa(opts.FontSize * 2),
		Paragraphs: paragraphs,
	}, nil
}

// styleFor returns the paragraph style ID for a block. Plain paragraphs use
// the document default (Normal) and get no explicit style.
func styleFor(block types.Block) (string, error) {
	switch block.Kind {
	case types.BlockParagraph:
		return "", nil
	case types.BlockHeading:
		if block.Level < 1 || block.Level > 3 {
			return "", fmt.Errorf("unsupported heading level %d", block.Level)
		}
		return "Heading" + strconv.Itoa(block.Level), nil
	case types.BlockBullet:
		switch block.Level {
		case 1:
			return "ListBullet", nil
		case 2:
			return "ListBullet2", nil
		default:
			return "", fmt.Errorf("unsupported bullet level %d", block.Level)
		}
	default:
		return "", fmt.Errorf("unknown block kind %q", block.Kind)
	}
}
