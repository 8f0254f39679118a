package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"medical-panel/domain"

	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily  = "DejaVu"
	lineHeight  = 6.0
	titleSize   = 18
	headingSize = 13
	bodySize    = 11
	footerSize  = 8
)

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	regularFont []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	boldFont []byte
	//go:embed fonts/DejaVuSansCondensed-Oblique.ttf
	obliqueFont []byte
)

// PDF renders the same content as Text on A4 pages with a numbered footer.
// Streams are left uncompressed and the creation date is the summary's,
// so identical summaries give identical bytes. Text is written with an embedded
// UTF-8 TrueType font; CJK runes are kept in the text layer but have no glyph in it.
func PDF(s domain.DiagnosisSummary) ([]byte, error) {
	doc := newDocument(s)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(s.GeneratedAt)
	pdf.SetTitle(Title, true)
	pdf.SetCreator("medical-panel", true)
	pdf.AliasNbPages("")
	pdf.AddUTF8FontFromBytes(fontFamily, "", regularFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldFont)
	pdf.AddUTF8FontFromBytes(fontFamily, "I", obliqueFont)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("cannot load pdf fonts: %w", err)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", footerSize)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", titleSize)
	pdf.CellFormat(0, 12, Title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "", bodySize)
	for _, f := range append(doc.Metadata, doc.Run...) {
		pdf.SetFont(fontFamily, "B", bodySize)
		pdf.CellFormat(35, lineHeight, f.Label+":", "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", bodySize)
		pdf.MultiCell(0, lineHeight, f.Value, "", "L", false)
	}

	for _, sec := range doc.Sections {
		pdf.Ln(4)
		pdf.SetFont(fontFamily, "B", headingSize)
		pdf.MultiCell(0, 8, sec.Heading, "B", "L", false)
		pdf.SetFont(fontFamily, "", bodySize)
		for _, line := range sec.Lines {
			pdf.MultiCell(0, lineHeight, "- "+line, "", "L", false)
		}
	}

	pdf.Ln(6)
	pdf.SetFont(fontFamily, "I", bodySize)
	pdf.MultiCell(0, lineHeight, ClosingLine, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("cannot render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
