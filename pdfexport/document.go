package pdfexport

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Margins are page margins in millimetres.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Table is a grid of text cells. Widths are fractions of the printable
// width and must sum to 1. HeaderRows are drawn shaded in bold and repeated
// at the top of every page the table spans.
type Table struct {
	Title      string
	Widths     []float64
	HeaderRows [][]string
	Rows       [][]string
}

// Document is a declarative page description consumed by Render.
type Document struct {
	PageSize string
	Margins  Margins
	Title    string
	// Header is printed at the top of every page.
	Header string
	// Footer is a format string receiving the page number and total pages.
	Footer   string
	FontSize float64
	Tables   []Table
}

const (
	totalPagesAlias = "{nb}"
	lineHeight      = 5.0
	cellPadding     = 1.5
)

// Render lays out doc. Rows never split across pages; a row that does not
// fit below the current position moves to a new page.
func Render(doc Document) ([]byte, error) {
	pdf, err := layout(doc)
	if err != nil {
		return nil, err
	}
	return output(pdf, "document_pdf")
}

func layout(doc Document) (*fpdf.Fpdf, error) {
	size := doc.PageSize
	if size == "" {
		size = "A4"
	}
	fontSize := doc.FontSize
	if fontSize == 0 {
		fontSize = 10
	}
	for i, t := range doc.Tables {
		if len(t.Widths) == 0 {
			return nil, fmt.Errorf("%w: table %d has no columns", ErrRender, i)
		}
	}

	m := doc.Margins
	pdf := fpdf.New("P", "mm", size, "")
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, m.Bottom)
	pdf.AliasNbPages(totalPagesAlias)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()
	printable := pageW - m.Left - m.Right

	pdf.SetHeaderFunc(func() {
		if doc.Header == "" {
			return
		}
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetXY(m.Left, m.Top/2)
		pdf.CellFormat(printable, 4, tr(doc.Header), "", 0, "R", false, 0, "")
		pdf.SetXY(m.Left, m.Top)
	})
	pdf.SetFooterFunc(func() {
		if doc.Footer == "" {
			return
		}
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetXY(m.Left, pageH-m.Bottom/2-2)
		pdf.CellFormat(printable, 4, fmt.Sprintf(doc.Footer, pdf.PageNo(), totalPagesAlias), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(printable, 8, tr(doc.Title), "", "C", false)
		pdf.Ln(4)
	}

	bottom := pageH - m.Bottom
	for _, t := range doc.Tables {
		widths := make([]float64, len(t.Widths))
		for i, w := range t.Widths {
			widths[i] = w * printable
		}
		drawHeader := func() {
			pdf.SetFont("Helvetica", "B", fontSize)
			pdf.SetFillColor(220, 230, 241)
			for _, row := range t.HeaderRows {
				drawRow(pdf, tr, widths, row, true)
			}
		}
		if t.Title != "" {
			if pdf.GetY()+8+rowHeight(pdf, tr, widths, firstRow(t)) > bottom {
				pdf.AddPage()
			}
			pdf.SetFont("Helvetica", "B", fontSize+2)
			pdf.CellFormat(printable, 8, tr(t.Title), "", 1, "L", false, 0, "")
		}
		drawHeader()
		pdf.SetFont("Helvetica", "", fontSize)
		for _, row := range t.Rows {
			if pdf.GetY()+rowHeight(pdf, tr, widths, row) > bottom {
				pdf.AddPage()
				drawHeader()
				pdf.SetFont("Helvetica", "", fontSize)
			}
			drawRow(pdf, tr, widths, row, false)
		}
		pdf.Ln(4)
	}
	return pdf, nil
}

func firstRow(t Table) []string {
	if len(t.HeaderRows) > 0 {
		return t.HeaderRows[0]
	}
	if len(t.Rows) > 0 {
		return t.Rows[0]
	}
	return nil
}

func rowHeight(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, row []string) float64 {
	lines := 1
	for i, w := range widths {
		if i >= len(row) {
			break
		}
		n := len(pdf.SplitLines([]byte(tr(row[i])), w-2*cellPadding))
		if n > lines {
			lines = n
		}
	}
	return float64(lines)*lineHeight + 2*cellPadding
}

// drawRow prints one row of equal-height bordered cells. Short rows are
// padded with empty cells.
func drawRow(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, row []string, fill bool) {
	h := rowHeight(pdf, tr, widths, row)
	x0, y := pdf.GetXY()
	x := x0
	style := "D"
	if fill {
		style = "FD"
	}
	for i, w := range widths {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		pdf.Rect(x, y, w, h, style)
		pdf.SetXY(x+cellPadding, y+cellPadding)
		pdf.MultiCell(w-2*cellPadding, lineHeight, tr(text), "", "L", false)
		x += w
	}
	pdf.SetXY(x0, y+h)
}
