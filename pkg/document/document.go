// Package document lays out provenance exports as PDF or plain text.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// Section is a titled block of lines. Empty sections are dropped by Compact.
type Section struct {
	Title string
	Lines []string
}

func (s Section) empty() bool {
	for _, l := range s.Lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

// Compact drops sections without content, keeping order.
func Compact(sections ...Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if !s.empty() {
			out = append(out, s)
		}
	}
	return out
}

// PDFOptions tunes RenderPDF.
type PDFOptions struct {
	// FontPath names a UTF-8 TrueType font used for every line. When empty the
	// built-in Arial core font is used, which covers Windows-1252 only: other
	// characters are printed as "?".
	FontPath string
}

const utf8Family = "body"

// RenderPDF writes a single-column A4 document: centered title, then each
// section as a bold heading followed by wrapped lines.
func RenderPDF(title string, sections []Section, opts PDFOptions) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	family := "Arial"
	tr := cp1252

	if opts.FontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", opts.FontPath)
		pdf.AddUTF8Font(utf8Family, "B", opts.FontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load font %s: %w", opts.FontPath, err)
		}
		family = utf8Family
		tr = func(s string) string { return s }
	}

	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont(family, "", 12)

	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, s := range sections {
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(0, 10, tr(s.Title), "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 12)
		for _, line := range s.Lines {
			pdf.MultiCell(0, 10, tr(line), "", "L", false)
		}
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// cp1252 encodes s for the core fonts. Runes outside the code page become
// "?" so a missing glyph is visible rather than silently dropped.
func cp1252(s string) string {
	var b strings.Builder
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// RenderNumberedText renders a header block followed by a 1-based numbered
// list.
func RenderNumberedText(header []string, listTitle string, items []string) string {
	var b strings.Builder
	for _, h := range header {
		b.WriteString(h)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(listTitle)
	b.WriteByte('\n')
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}
