// Package observability provides formatted output utilities for verbose CLI mode
// and the process logger.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/kyp-analysis/internal/funds"
	"github.com/jonathan/kyp-analysis/internal/rendering"
	"github.com/jonathan/kyp-analysis/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewLength is the number of description characters shown per fund
	previewLength = 48
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// PrintCatalog outputs the fund catalog, optionally restricted to one category.
// An empty category prints every category in catalog order.
func (p *Printer) PrintCatalog(catalog *funds.Catalog, category funds.Category) {
	if catalog == nil {
		return
	}

	for _, cat := range funds.Categories {
		if category != "" && cat != category {
			continue
		}

		var sb strings.Builder
		entries := catalog.Funds(cat)
		for i, f := range entries {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, f.Name))
			sb.WriteString(fmt.Sprintf("   %s\n", truncate(firstLine(f.Text), previewLength)))
		}
		if len(entries) == 0 {
			sb.WriteString("(no funds)\n")
		}

		p.printBox(fmt.Sprintf("%s (%d)", strings.ToUpper(cat.Label()), len(entries)), sb.String())
	}
}

// PrintReportOutline outputs the heading structure of an assembled report
// together with block counts.
func (p *Printer) PrintReportOutline(doc *types.ReportDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:  %s\n", doc.Title))
	sb.WriteString(fmt.Sprintf("Date:   %s\n", doc.Date))
	sb.WriteString("\n")

	var headings, paragraphs, bullets int
	for _, b := range doc.Blocks {
		switch b.Kind {
		case types.BlockHeading:
			headings++
			indent := strings.Repeat("  ", max(b.Level-1, 0))
			sb.WriteString(fmt.Sprintf("%s%s\n", indent, b.Text))
		case types.BlockParagraph:
			paragraphs++
		case types.BlockBullet:
			bullets++
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Blocks: %d headings, %d paragraphs, %d bullets\n", headings, paragraphs, bullets))

	p.printBox("REPORT OUTLINE", sb.String())
}

// PrintMissingFunds outputs selections that had no catalog description.
func (p *Printer) PrintMissingFunds(missing []rendering.MissingFund) {
	if len(missing) == 0 {
		return
	}

	var sb strings.Builder
	for _, m := range missing {
		sb.WriteString(fmt.Sprintf("⚠ %s %s\n", m.Group, m.Name))
	}

	p.printBox(fmt.Sprintf("MISSING FUND DESCRIPTIONS (%d)", len(missing)), sb.String())
}
