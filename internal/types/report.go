package types

// BlockKind identifies the structural role of a report block.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockBullet    BlockKind = "bullet"
)

// Block is one structural element of a report. Level is the heading level
// (1-3) for headings and the list depth (1-2) for bullets; it is zero for
// plain paragraphs. Text may contain newlines, which render as line breaks
// inside the same paragraph.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Text  string    `json:"text"`
}

// ReportDocument is the ordered block structure of an exported KYP analysis.
type ReportDocument struct {
	Title  string  `json:"title"`
	Date   string  `json:"date"`
	Blocks []Block `json:"blocks"`
}

// Heading appends a heading block.
func (d *ReportDocument) Heading(level int, text string) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockHeading, Level: level, Text: text})
}

// Paragraph appends a plain paragraph block.
func (d *ReportDocument) Paragraph(text string) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockParagraph, Text: text})
}

// Bullet appends a bulleted paragraph at the given list depth.
func (d *ReportDocument) Bullet(level int, text string) {
	d.Blocks = append(d.Blocks, Block{Kind: BlockBullet, Level: level, Text: text})
}
