package admin

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"salesperf/internal/evaluation"
)

const reportHistoryLimit = 25

// WriteReport renders the admin overview as a PDF: the roster with point
// totals followed by the most recent history entries.
func WriteReport(w io.Writer, employees []evaluation.Employee, history []evaluation.HistoryEntry) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Sales Evaluation Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Employees")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, emp := range employees {
		pdf.Cell(0, 7, fmt.Sprintf("%s (%s, %s) - %d pt, %d evaluations",
			emp.Name, emp.Department, emp.Position, emp.Points, len(emp.Evaluations)))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Recent Evaluations (%d total)", len(history)))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(history) == 0 {
		pdf.Cell(0, 7, "No evaluations recorded.")
		pdf.Ln(6)
	}
	for i, entry := range history {
		if i >= reportHistoryLimit {
			break
		}
		pdf.Cell(0, 7, fmt.Sprintf("%s  %s by %s: %d/100 (+%d pt)",
			entry.Date.Format("2006-01-02"), entry.EmployeeName, entry.EvaluatorName, entry.TotalScore, entry.Points))
		pdf.Ln(6)
	}

	return pdf.Output(w)
}
