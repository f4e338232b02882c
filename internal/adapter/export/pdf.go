// Package export renders a snapshot of the board for download.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"taskboard/internal/app/board"
)

// BoardPDF writes the kanban columns, one section per status.
func BoardPDF(columns []board.Column, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Tasks", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Tasks")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(40, 6, "Generated "+generatedAt.UTC().Format(time.RFC3339))
	pdf.Ln(10)

	for _, column := range columns {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s (%d)", column.Status, len(column.Tasks))), "B", 1, "L", false, 0, "")
		pdf.Ln(2)

		if len(column.Tasks) == 0 {
			pdf.SetFont("Arial", "I", 9)
			pdf.Cell(0, 6, "No tasks")
			pdf.Ln(8)
			continue
		}

		for _, task := range column.Tasks {
			pdf.SetFont("Arial", "B", 10)
			pdf.MultiCell(0, 5, tr(task.Title), "", "L", false)
			pdf.SetFont("Arial", "", 9)
			pdf.MultiCell(0, 5, tr(task.Description), "", "L", false)

			people := "Assignee: " + task.Assignee.Name
			if task.Reviewer != nil {
				people += "    Reviewer: " + task.Reviewer.Name
			}
			pdf.MultiCell(0, 5, tr(people), "", "L", false)
			pdf.Ln(3)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
