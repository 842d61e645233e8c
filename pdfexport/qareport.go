package pdfexport

import (
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/hairizuanbinnoorazman/qa-workbench/qareport"
)

// Page geometry of the QA report, in millimetres on A4 portrait.
const (
	reportLeft        = 10.0
	reportWidth       = 190.0
	overflowY         = 270.0
	continuationTop   = 20.0
	bugRowHeight      = 8.0
	summaryLineHeight = 5.0
)

// QAReportFilename returns QA_Report_<title>_<id>.pdf.
func QAReportFilename(r qareport.QaReport) string {
	return SafeName(fmt.Sprintf("QA_Report_%s_%s.pdf", r.Title, r.ID))
}

// QAReport renders one report: header, project metadata, the four
// aggregate tables and the bug detail table, which continues on new pages
// once a row would start below the overflow line.
func QAReport(r qareport.QaReport) (*Artifact, error) {
	pdf := layoutQAReport(r)
	data, err := output(pdf, "qa_report_pdf")
	if err != nil {
		return nil, err
	}
	return &Artifact{Filename: QAReportFilename(r), ContentType: ContentType, Data: data}, nil
}

func layoutQAReport(r qareport.QaReport) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// header band
	pdf.SetFillColor(33, 150, 243)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(reportLeft, 14, tr(r.Title))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(reportLeft, 22, tr(fmt.Sprintf("%s  |  %s to %s", r.Group, r.StartDate, r.EndDate)))
	pdf.SetTextColor(0, 0, 0)

	// project metadata, two label/value pairs per row
	meta := [][2]string{
		{"Project", r.ProjectName}, {"Version", r.Version},
		{"Project Manager", r.ProjectManager}, {"QA Lead", r.QaLead},
		{"Environment", r.Environment}, {"RAG Status", string(r.RagStatus)},
	}
	y := 36.0
	for i, kv := range meta {
		x := reportLeft + float64(i%2)*95
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(x, y, kv[0]+":")
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(x+32, y, tr(kv[1]))
		if i%2 == 1 {
			y += 7
		}
	}
	drawRag(pdf, r.RagStatus, 178, 56)

	d, td, e, ds := r.DefectsDistribution, r.TestDistribution, r.TestCaseExecution, r.DefectStatus
	aggregate(pdf, "Defects Distribution", reportLeft, 66, [][2]string{
		{"Critical", strconv.Itoa(d.Critical)},
		{"High", strconv.Itoa(d.High)},
		{"Medium", strconv.Itoa(d.Medium)},
		{"Low", strconv.Itoa(d.Low)},
		{"Total", strconv.Itoa(d.Total())},
	})
	aggregate(pdf, "Test Distribution", 105, 66, [][2]string{
		{"Functional", strconv.Itoa(td.Functional)},
		{"Regression", strconv.Itoa(td.Regression)},
		{"Integration", strconv.Itoa(td.Integration)},
		{"Performance", strconv.Itoa(td.Performance)},
		{"Security", strconv.Itoa(td.Security)},
	})
	aggregate(pdf, "Test Case Execution", reportLeft, 122, [][2]string{
		{"Total", strconv.Itoa(e.Total)},
		{"Executed", strconv.Itoa(e.Executed)},
		{"Passed", strconv.Itoa(e.Passed)},
		{"Failed", strconv.Itoa(e.Failed)},
		{"Blocked", strconv.Itoa(e.Blocked)},
		{"Not Run", strconv.Itoa(e.NotRun)},
	})
	aggregate(pdf, "Defect Status", 105, 122, [][2]string{
		{"Open", strconv.Itoa(ds.Open)},
		{"In Progress", strconv.Itoa(ds.InProgress)},
		{"Resolved", strconv.Itoa(ds.Resolved)},
		{"Closed", strconv.Itoa(ds.Closed)},
		{"Reopened", strconv.Itoa(ds.Reopened)},
	})

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(reportLeft, 184, "Summary")
	pdf.SetFont("Helvetica", "", 10)
	y = 187
	for _, line := range pdf.SplitLines([]byte(tr(r.Summary)), reportWidth) {
		if y+summaryLineHeight > overflowY {
			pdf.AddPage()
			y = continuationTop
		}
		pdf.SetXY(reportLeft, y)
		pdf.CellFormat(reportWidth, summaryLineHeight, string(line), "", 0, "L", false, 0, "")
		y += summaryLineHeight
	}

	y += 8
	if pdf.PageNo() == 1 && y < 215 {
		y = 215
	}
	// keep the title with the header and at least one row
	if y+4+2*bugRowHeight > overflowY {
		pdf.AddPage()
		y = continuationTop
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(reportLeft, y, "Bug Details")
	y += 4
	y = bugHeader(pdf, y)

	pdf.SetFont("Helvetica", "", 9)
	for _, b := range r.BugDetails {
		if y > overflowY {
			pdf.AddPage()
			y = bugHeader(pdf, continuationTop)
			pdf.SetFont("Helvetica", "", 9)
		}
		cells := []string{b.BugID, b.Title, b.Severity, b.Status, b.AssignedTo, b.Module}
		x := reportLeft
		for i, w := range bugColumnWidths {
			pdf.SetXY(x, y)
			pdf.CellFormat(w, bugRowHeight, fit(pdf, tr(cells[i]), w-2), "1", 0, "L", false, 0, "")
			x += w
		}
		y += bugRowHeight
	}
	if len(r.BugDetails) == 0 {
		pdf.SetXY(reportLeft, y)
		pdf.CellFormat(reportWidth, bugRowHeight, "No bugs recorded", "1", 0, "C", false, 0, "")
	}
	return pdf
}

var (
	bugColumnHeaders = []string{"Bug ID", "Title", "Severity", "Status", "Assigned To", "Module"}
	bugColumnWidths  = []float64{30, 60, 20, 20, 30, 30}
)

func bugHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := reportLeft
	for i, w := range bugColumnWidths {
		pdf.SetXY(x, y)
		pdf.CellFormat(w, bugRowHeight, bugColumnHeaders[i], "1", 0, "L", true, 0, "")
		x += w
	}
	return y + bugRowHeight
}

// aggregate draws a titled two-column counter table at a fixed position.
func aggregate(pdf *fpdf.Fpdf, title string, x, y float64, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(x, y, title)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Helvetica", "", 10)
	for i, row := range rows {
		rowY := y + 3 + float64(i)*7
		pdf.Rect(x, rowY, 90, 7, "D")
		pdf.Text(x+2, rowY+5, row[0])
		pdf.Text(x+70, rowY+5, row[1])
	}
	pdf.SetDrawColor(0, 0, 0)
}

func drawRag(pdf *fpdf.Fpdf, status qareport.RagStatus, x, y float64) {
	switch status {
	case qareport.RagRed:
		pdf.SetFillColor(229, 57, 53)
	case qareport.RagAmber:
		pdf.SetFillColor(255, 179, 0)
	case qareport.RagGreen:
		pdf.SetFillColor(67, 160, 71)
	default:
		return
	}
	pdf.Circle(x, y, 5, "F")
}

// fit truncates s with an ellipsis so it fits in w at the current font.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
