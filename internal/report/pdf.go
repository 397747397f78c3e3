package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	margin   = 40.0
	rowH     = 16.0
	colName  = 260.0
	colTotal = 100.0
	colRatio = 100.0
)

// WritePDF renders the summary as a one-page A4 report.
func WritePDF(w io.Writer, title string, s *Summary) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, title, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Runs: %d", s.Runs),
		fmt.Sprintf("Wins: %d (%.1f%%)", s.Wins, s.WinRate*100),
		fmt.Sprintf("Timed out: %d", s.Timeouts),
		fmt.Sprintf("Average duration: %.1fs", s.AvgTime),
		fmt.Sprintf("Average turns: %.2f", s.AvgTurns),
		fmt.Sprintf("Total damage: %d", s.TotalDamage),
	}
	for _, l := range lines {
		pdf.CellFormat(0, rowH, l, "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 219, 178)
	pdf.CellFormat(colName, rowH, "Actor", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colTotal, rowH, "Damage", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colRatio, rowH, "Share", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, k := range s.Actors() {
		sh := s.ByActor[k]
		pdf.CellFormat(colName, rowH, k, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colTotal, rowH, fmt.Sprintf("%d", sh.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colRatio, rowH, fmt.Sprintf("%.1f%%", sh.Ratio*100), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
