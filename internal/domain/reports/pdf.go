package reports

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hrportal/internal/domain/attendance"
)

type Service struct {
	Store      *Store
	Attendance *attendance.Store
}

func NewService(store *Store, attendanceStore *attendance.Store) *Service {
	return &Service{Store: store, Attendance: attendanceStore}
}

// BuildPDF renders the requested report and returns the document bytes plus
// a download filename. Data-access failures degrade into error lines inside
// the document rather than failing the request.
func (s *Service) BuildPDF(ctx context.Context, req Request) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, titleCase(req.Type)+" Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Report Details:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Type: "+titleCase(req.Type), "", 1, "L", false, 0, "")
	if req.StartDate != nil && req.EndDate != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case TypeAttendance:
		s.attendanceSections(ctx, pdf, req)
	case TypeTravel:
		s.expenseSections(ctx, pdf, req, "Travel Expenses", s.Store.TravelRange)
	case TypeGeneral:
		s.expenseSections(ctx, pdf, req, "General Expenses", s.Store.GeneralRange)
	default:
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "No data available for this report type.", "", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 6, "This is a computer generated report.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), reportFilename(req), nil
}

func (s *Service) attendanceSections(ctx context.Context, pdf *gofpdf.Fpdf, req Request) {
	records, err := s.Attendance.ListRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		writeErrorLine(pdf, "attendance", err)
		return
	}
	if len(records) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "No attendance records found for the selected period.", "", 1, "L", false, 0, "")
		return
	}

	stats := Summarize(records)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Attendance Summary Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary Statistics:", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Employees: %d", stats.TotalEmployees), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Records: %d", stats.TotalRecords), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Present: %d", stats.Present), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Absent: %d", stats.Absent), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Late: %d", stats.Late), "", 1, "L", false, 0, "")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Daily Attendance Details", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(30, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Employee", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Check In", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Check Out", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "Status", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, rec := range records {
		pdf.CellFormat(30, 6, rec.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, truncate(rec.EmployeeName, 20), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, clockOrDash(rec.Shift1In), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, clockOrDash(rec.Shift1Out), "1", 0, "C", false, 0, "")

		status := attendance.Status(rec.Shift1In)
		if status == attendance.StatusPresent {
			pdf.CellFormat(20, 6, status, "1", 1, "C", false, 0, "")
		} else {
			pdf.SetFont("Helvetica", "B", 8)
			pdf.CellFormat(20, 6, strings.ToUpper(status), "1", 1, "C", false, 0, "")
			pdf.SetFont("Helvetica", "", 8)
		}
	}
}

func (s *Service) expenseSections(ctx context.Context, pdf *gofpdf.Fpdf, req Request, label string, fetch func(context.Context, *time.Time, *time.Time) ([]ExpenseRow, error)) {
	rows, err := fetch(ctx, req.StartDate, req.EndDate)
	if err != nil {
		writeErrorLine(pdf, strings.ToLower(label), err)
		return
	}
	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("No %s records found for the selected period.", strings.ToLower(label)), "", 1, "L", false, 0, "")
		return
	}

	totals, grand := EmployeeTotals(rows)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Employee-wise "+label+" Summary", "", 1, "C", false, 0, "")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 8, "Total Expenses by Employee:", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(100, 6, "Employee Name", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Total Amount", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, total := range totals {
		pdf.CellFormat(100, 6, truncate(total.EmployeeName, 30), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", total.Total), "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 8, "GRAND TOTAL:", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", grand), "1", 1, "R", false, 0, "")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Daily "+label+" Details", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(30, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Employee", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Amount", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, group := range GroupByDate(rows) {
		for _, row := range group.Rows {
			pdf.CellFormat(30, 6, group.Date, "1", 0, "C", false, 0, "")
			pdf.CellFormat(50, 6, truncate(row.EmployeeName, 20), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, truncate(row.Description, 15), "1", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "B", 8)
			pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", row.Amount), "1", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 8)
		}

		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(120, 6, fmt.Sprintf("Day Total (%s):", group.Date), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", group.Total), "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.Ln(2)
	}
}

func writeErrorLine(pdf *gofpdf.Fpdf, section string, err error) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Error loading %s data: %v", section, err), "", 1, "L", false, 0, "")
}

func clockOrDash(t *attendance.TimeOfDay) string {
	if t == nil {
		return "-"
	}
	return t.Clock12()
}

// truncate shortens by runes so multibyte names never split mid-character.
func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}

func titleCase(value string) string {
	words := strings.Fields(strings.TrimSpace(value))
	for i, word := range words {
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[:1])) + strings.ToLower(string(runes[1:]))
	}
	if len(words) == 0 {
		return "Report"
	}
	return strings.Join(words, " ")
}

func reportFilename(req Request) string {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(req.Type)), " ", "_")
	if base == "" {
		base = "report"
	}
	if req.StartDate != nil && req.EndDate != nil {
		return fmt.Sprintf("%s_report_%s_%s.pdf", base, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	return base + "_report.pdf"
}
