package out

import (
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"studytrack/internal/modules/report/domain"
	reportout "studytrack/internal/modules/report/port/out"
)

// PDFRenderer lays the dashboard out on A4 pages with the core Arial font.
type PDFRenderer struct{}

func NewPDFRenderer() reportout.Renderer {
	return PDFRenderer{}
}

// dailyBarWidth is the length in mm of the busiest day's bar.
const dailyBarWidth = 110.0

type pdfColumn struct {
	title string
	width float64
}

func (PDFRenderer) Render(_ context.Context, s domain.Snapshot, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Study report: "+s.Student, true)
	pdf.SetAuthor("studytrack", false)
	pdf.SetCreationDate(s.GeneratedAt)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Study Report: "+s.Student), "", 1, "L", false, 0, "")
	if greeting := s.Greeting(); greeting != "" {
		pdf.SetFont("Arial", "I", 11)
		pdf.MultiCell(0, 6, tr(greeting), "", "L", false)
	}
	pdf.Ln(4)

	heading(pdf, "Summary")
	pdf.SetFont("Arial", "", 11)
	for _, line := range domain.SummaryLines(s) {
		pdf.CellFormat(55, 7, tr(line.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(line.Value), "", 1, "L", false, 0, "")
	}

	if lines := domain.SubjectLines(s.Totals.SubjectHours); len(lines) > 0 {
		heading(pdf, "Hours by subject")
		pdf.SetFont("Arial", "", 11)
		for _, line := range lines {
			pdf.CellFormat(55, 7, tr(line.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, line.Value, "", 1, "L", false, 0, "")
		}
	}

	if days, peak := domain.DailySeries(s.Totals.DailyStudy); len(days) > 0 {
		heading(pdf, "Daily study")
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(166, 227, 161)
		for _, day := range days {
			pdf.CellFormat(30, 6, day.Date, "", 0, "L", false, 0, "")
			x, y := pdf.GetXY()
			if peak > 0 {
				pdf.Rect(x, y+1, dailyBarWidth*day.Hours/peak, 4, "F")
			}
			pdf.SetX(x + dailyBarWidth + 4)
			pdf.CellFormat(0, 6, domain.HoursText(day.Hours), "", 1, "L", false, 0, "")
		}
	}

	heading(pdf, "Suggestions")
	pdf.SetFont("Arial", "", 11)
	if len(s.Suggestions) == 0 {
		pdf.CellFormat(0, 7, "  - None.", "", 1, "L", false, 0, "")
	}
	for _, text := range s.Suggestions {
		pdf.MultiCell(0, 7, tr("  - "+text), "", "L", false)
	}

	heading(pdf, "Recent assignments")
	rows := make([][]string, 0, len(s.RecentAssignments))
	for _, a := range s.RecentAssignments {
		rows = append(rows, []string{fmt.Sprint(a.ID), a.Title, a.Subject, a.Deadline, a.Status, domain.ScoreText(a.Score)})
	}
	table(pdf, tr, []pdfColumn{{"#", 10}, {"Title", 55}, {"Subject", 35}, {"Deadline", 28}, {"Status", 28}, {"Score", 20}}, rows)

	heading(pdf, "Projects")
	rows = rows[:0]
	for _, p := range s.Projects {
		rows = append(rows, []string{fmt.Sprint(p.ID), p.Title, p.Status, p.Deadline, fmt.Sprintf("%d%%", p.Progress)})
	}
	table(pdf, tr, []pdfColumn{{"#", 10}, {"Title", 70}, {"Status", 35}, {"Deadline", 35}, {"Progress", 26}}, rows)

	heading(pdf, "Timetable")
	rows = rows[:0]
	for _, slot := range s.Timetable {
		rows = append(rows, []string{slot.Day, slot.Time, slot.Subject, fmt.Sprintf("%g h", slot.DurationHours)})
	}
	table(pdf, tr, []pdfColumn{{"Day", 35}, {"Time", 25}, {"Subject", 80}, {"Duration", 36}}, rows)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf report: %w", err)
	}
	return nil
}

func heading(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func table(pdf *fpdf.Fpdf, tr func(string) string, cols []pdfColumn, rows [][]string) {
	if len(rows) == 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 7, "  - None.", "", 1, "L", false, 0, "")
		return
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 230, 241)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		for i, c := range cols {
			pdf.CellFormat(c.width, 7, tr(row[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
