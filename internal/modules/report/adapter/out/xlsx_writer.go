package out

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"studytrack/internal/modules/report/domain"
	reportout "studytrack/internal/modules/report/port/out"
)

const (
	SheetSummary     = "Summary"
	SheetAssignments = "Assignments"
	SheetWorks       = "Works"
	SheetProjects    = "Projects"
	SheetSessions    = "Sessions"
	SheetTimetable   = "Timetable"
)

// WorkbookWriter exports every collection to its own sheet.
type WorkbookWriter struct{}

func NewWorkbookWriter() reportout.Renderer {
	return WorkbookWriter{}
}

type sheet struct {
	name   string
	header []any
	rows   [][]any
}

func (WorkbookWriter) Render(_ context.Context, s domain.Snapshot, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	summary := sheet{name: SheetSummary, header: []any{"Field", "Value"}}
	for _, line := range domain.SummaryLines(s) {
		summary.rows = append(summary.rows, []any{line.Label, line.Value})
	}
	for _, line := range domain.SubjectLines(s.Totals.SubjectHours) {
		summary.rows = append(summary.rows, []any{"Hours: " + line.Label, line.Value})
	}
	days, _ := domain.DailySeries(s.Totals.DailyStudy)
	for _, day := range days {
		summary.rows = append(summary.rows, []any{"Day " + day.Date, day.Hours})
	}
	for _, text := range s.Suggestions {
		summary.rows = append(summary.rows, []any{"Suggestion", text})
	}

	sheets := []sheet{summary, assignmentsSheet(s), worksSheet(s), projectsSheet(s), sessionsSheet(s), timetableSheet(s)}
	for _, sh := range sheets {
		if sh.name != SheetSummary {
			if _, err := f.NewSheet(sh.name); err != nil {
				return fmt.Errorf("create sheet %s: %w", sh.name, err)
			}
		}
		if err := writeSheet(f, sh, headerStyle); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sh sheet, headerStyle int) error {
	header := sh.header
	if err := f.SetSheetRow(sh.name, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sh.name, err)
	}
	last, err := excelize.CoordinatesToCellName(len(sh.header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sh.name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sh.name, err)
	}
	for i, row := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sh.name, i+1, err)
		}
	}
	lastCol, _, err := excelize.SplitCellName(last)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sh.name, "A", lastCol, 18); err != nil {
		return fmt.Errorf("size %s columns: %w", sh.name, err)
	}
	return nil
}

func assignmentsSheet(s domain.Snapshot) sheet {
	sh := sheet{name: SheetAssignments, header: []any{"ID", "Title", "Subject", "Deadline", "Difficulty", "Status", "Score", "Completed On"}}
	for _, a := range s.Assignments {
		var score any = ""
		if a.Score != nil {
			score = *a.Score
		}
		sh.rows = append(sh.rows, []any{a.ID, a.Title, a.Subject, a.Deadline, a.Difficulty, a.Status, score, a.CompletionDate})
	}
	return sh
}

func worksSheet(s domain.Snapshot) sheet {
	sh := sheet{name: SheetWorks, header: []any{"ID", "Title", "Subject", "Hours", "Completed", "Date"}}
	for _, w := range s.Works {
		sh.rows = append(sh.rows, []any{w.ID, w.Title, w.Subject, w.DurationHours, w.Completed, w.Date})
	}
	return sh
}

func projectsSheet(s domain.Snapshot) sheet {
	sh := sheet{name: SheetProjects, header: []any{"ID", "Title", "Description", "Deadline", "Status", "Progress"}}
	for _, p := range s.Projects {
		sh.rows = append(sh.rows, []any{p.ID, p.Title, p.Description, p.Deadline, p.Status, p.Progress})
	}
	return sh
}

func sessionsSheet(s domain.Snapshot) sheet {
	sh := sheet{name: SheetSessions, header: []any{"Date", "Timestamp", "Subject", "Hours", "Topics"}}
	for _, session := range s.Sessions {
		sh.rows = append(sh.rows, []any{session.Date, session.Timestamp, session.Subject, session.DurationHours, session.Topics})
	}
	return sh
}

func timetableSheet(s domain.Snapshot) sheet {
	sh := sheet{name: SheetTimetable, header: []any{"Day", "Time", "Subject", "Hours"}}
	for _, slot := range s.Timetable {
		sh.rows = append(sh.rows, []any{slot.Day, slot.Time, slot.Subject, slot.DurationHours})
	}
	return sh
}
