package reports

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"smartleave/internal/domain/leave"
)

// BalancesPDF renders the same table as BalancesCSV as a printable report.
func BalancesPDF(users []leave.User, types []leave.LeaveTypeDefinition) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Leave Balance Report")
	pdf.Ln(14)

	nameW := 70.0
	roleW := 30.0
	colW := 28.0

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(nameW, 8, "Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(roleW, 8, "Role", "1", 0, "L", true, 0, "")
	for _, t := range types {
		pdf.CellFormat(colW, 8, t.ID, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, u := range users {
		pdf.CellFormat(nameW, 8, u.FullName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(roleW, 8, string(u.Role), "1", 0, "L", false, 0, "")
		for _, t := range types {
			pdf.CellFormat(colW, 8, strconv.Itoa(u.Balance.Days(t.ID)), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
