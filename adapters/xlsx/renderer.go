// Package xlsx renders a user's task list into a styled spreadsheet.
package xlsx

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"mytodo/core"
)

// ContentType is the xlsx MIME type for download responses.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Tasks"

var header = []string{"ID", "Task", "Priority", "Status"}

// Background fills keyed by priority class.
var fillColors = map[core.Priority]string{
	core.PriorityCritical:  "FFCCCC",
	core.PriorityUrgent:    "FFF0B8",
	core.PriorityImportant: "C8F0D0",
	core.PriorityNormal:    "E9EAEC",
}

type rowStyleKey struct {
	priority core.Priority
	done     bool
}

// Render builds the workbook: one header row, then one row per task in the
// order received. Any engine failure maps to ErrExportUnavailable so the
// caller never serves a partial file.
func Render(tasks []core.Task) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, unavailable(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F46E5"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, unavailable(err)
	}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(sheetName, cell, h); err != nil {
			return nil, unavailable(err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "D1", headerStyle); err != nil {
		return nil, unavailable(err)
	}

	// One style per (priority, done) pair, created on first use. Done rows
	// compose dim italic text with the priority fill.
	styles := make(map[rowStyleKey]int)
	rowStyle := func(key rowStyleKey) (int, error) {
		if id, ok := styles[key]; ok {
			return id, nil
		}
		style := &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColors[key.priority]}},
		}
		if key.done {
			style.Font = &excelize.Font{Italic: true, Color: "444444"}
		}
		id, err := f.NewStyle(style)
		if err != nil {
			return 0, err
		}
		styles[key] = id
		return id, nil
	}

	for i, t := range tasks {
		row := i + 2

		status := "Pending"
		if t.Completed {
			status = "Done"
		}

		// ID and Task go in as text so numeric-looking values survive
		// spreadsheet number formatting.
		cells := []string{
			fmt.Sprintf("%d", t.ID),
			t.Text,
			t.Priority().Label(),
			status,
		}
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellStr(sheetName, cell, v); err != nil {
				return nil, unavailable(err)
			}
		}

		styleID, err := rowStyle(rowStyleKey{priority: t.Priority(), done: t.Completed})
		if err != nil {
			return nil, unavailable(err)
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(cells), row)
		if err := f.SetCellStyle(sheetName, first, last, styleID); err != nil {
			return nil, unavailable(err)
		}
	}

	for _, cw := range []struct {
		col   string
		width float64
	}{
		{"A", 8},
		{"B", 50},
		{"C", 22},
		{"D", 12},
	} {
		if err := f.SetColWidth(sheetName, cw.col, cw.col, cw.width); err != nil {
			return nil, unavailable(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, unavailable(err)
	}
	return buf.Bytes(), nil
}

// Filename names a download per the tasks_{filter}_{timestamp}.xlsx convention.
func Filename(f core.ExportFilter, at time.Time) string {
	return fmt.Sprintf("tasks_%s_%s.xlsx", f, at.Format("20060102_150405"))
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", core.ErrExportUnavailable, err)
}
