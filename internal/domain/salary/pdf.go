package salary

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type SlipData struct {
	EmployeeID   int64
	EmployeeName string
	Period       string
	Breakdown    Breakdown
	GeneratedAt  time.Time
}

// BuildSlipPDF renders a salary slip and returns the document bytes plus a
// download filename.
func BuildSlipPDF(data SlipData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "SALARY SLIP", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Company Name: Admin Portal System", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Period: "+capitalize(data.Period), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+data.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Employee Details:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Name: "+data.EmployeeName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("ID: %d", data.EmployeeID), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Salary Breakdown:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	pdf.CellFormat(100, 6, "Basic Salary:", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", data.Breakdown.Basic), "", 1, "R", false, 0, "")
	pdf.CellFormat(100, 6, "HRA (40%):", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", data.Breakdown.HRA), "", 1, "R", false, 0, "")
	pdf.CellFormat(100, 6, "PF (12%):", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", data.Breakdown.PF), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 8, "Net Salary:", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", data.Breakdown.Net), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 6, "This is a computer generated salary slip.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("salary_slip_%s_%s.pdf", strings.ReplaceAll(data.EmployeeName, " ", "_"), data.Period)
	return buf.Bytes(), filename, nil
}

func capitalize(value string) string {
	runes := []rune(strings.TrimSpace(value))
	if len(runes) == 0 {
		return ""
	}
	return strings.ToUpper(string(runes[:1])) + strings.ToLower(string(runes[1:]))
}
