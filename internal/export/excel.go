// Package export renders members, payments and related records into Excel
// workbooks and PDF invoice receipts for download.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gymcrm/internal/model"
)

const dateLayout = "02/01/2006"

// ExcelWriter builds xlsx workbooks from CRM records.
type ExcelWriter struct{}

// NewExcelWriter creates a new Excel writer.
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

// Members writes one row per member with their trainer assignment.
func (w *ExcelWriter) Members(members []model.Member) ([]byte, error) {
	sheet := "Members"
	headers := []string{"Membership No.", "Name", "Email", "Phone", "Status", "Joining Date", "Trainer"}
	widths := []float64{15, 25, 30, 15, 12, 15, 20}

	f, err := newSheet(sheet, headers, widths)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for i := range members {
		m := &members[i]
		trainer := "Not Assigned"
		if m.Trainer != nil {
			trainer = m.Trainer.Name
		}
		if err := writeRow(f, sheet, i+2,
			m.MembershipNumber,
			m.Name,
			orNA(m.Email),
			m.Phone,
			string(m.Status),
			m.JoiningDate.Format(dateLayout),
			trainer,
		); err != nil {
			return nil, err
		}
	}
	return workbookBytes(f)
}

// Payments writes the payment register plus a Summary sheet with totals.
func (w *ExcelWriter) Payments(payments []model.Payment) ([]byte, error) {
	sheet := "Payments"
	headers := []string{"Invoice No.", "Member Name", "Membership No.", "Amount", "Payment Mode", "Payment Date", "Transaction ID"}
	widths := []float64{15, 25, 15, 12, 15, 15, 20}

	f, err := newSheet(sheet, headers, widths)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	total := 0.0
	for i := range payments {
		p := &payments[i]
		memberName, membershipNumber := "", ""
		if p.Member != nil {
			memberName = p.Member.Name
			membershipNumber = p.Member.MembershipNumber
		}
		amount, _ := p.Amount.Float64()
		total += amount
		if err := writeRow(f, sheet, i+2,
			p.InvoiceNumber,
			memberName,
			membershipNumber,
			amount,
			string(p.PaymentMode),
			p.PaymentDate.Format(dateLayout),
			orNA(p.TransactionID),
		); err != nil {
			return nil, err
		}
	}

	summary := "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(summary, "A", "B", 20); err != nil {
		return nil, err
	}
	rows := [][]any{
		{"Metric", "Value"},
		{"Total Payments", len(payments)},
		{"Total Amount", fmt.Sprintf("%.2f", total)},
	}
	for i, cells := range rows {
		if err := writeRow(f, summary, i+1, cells...); err != nil {
			return nil, err
		}
	}
	return workbookBytes(f)
}

// Memberships writes one row per plan assignment.
func (w *ExcelWriter) Memberships(memberships []model.Membership) ([]byte, error) {
	sheet := "Memberships"
	headers := []string{"Member Name", "Membership No.", "Plan", "Start Date", "End Date", "Amount", "Status"}
	widths := []float64{25, 15, 20, 15, 15, 12, 12}

	f, err := newSheet(sheet, headers, widths)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for i := range memberships {
		m := &memberships[i]
		memberName, membershipNumber, planName := "", "", ""
		if m.Member != nil {
			memberName = m.Member.Name
			membershipNumber = m.Member.MembershipNumber
		}
		if m.Plan != nil {
			planName = m.Plan.Name
		}
		status := "Inactive"
		if m.Active {
			status = "Active"
		}
		amount, _ := m.FinalAmount.Float64()
		if err := writeRow(f, sheet, i+2,
			memberName,
			membershipNumber,
			planName,
			m.StartDate.Format(dateLayout),
			m.EndDate.Format(dateLayout),
			amount,
			status,
		); err != nil {
			return nil, err
		}
	}
	return workbookBytes(f)
}

// Leads writes the pipeline export.
func (w *ExcelWriter) Leads(leads []model.Lead) ([]byte, error) {
	sheet := "Leads"
	headers := []string{"Name", "Phone", "Email", "Source", "Status", "Interested Plan", "Follow-Up Date", "Created"}
	widths := []float64{25, 15, 30, 15, 12, 20, 15, 15}

	f, err := newSheet(sheet, headers, widths)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for i := range leads {
		l := &leads[i]
		followUp := "N/A"
		if l.FollowUpDate != nil {
			followUp = l.FollowUpDate.Format(dateLayout)
		}
		if err := writeRow(f, sheet, i+2,
			l.Name,
			l.Phone,
			orNA(l.Email),
			string(l.Source),
			string(l.Status),
			orNA(l.InterestedPlan),
			followUp,
			l.CreatedAt.Format(dateLayout),
		); err != nil {
			return nil, err
		}
	}
	return workbookBytes(f)
}

// Attendance writes one row per visit.
func (w *ExcelWriter) Attendance(records []model.Attendance) ([]byte, error) {
	sheet := "Attendance"
	headers := []string{"Member Name", "Membership No.", "Date", "Check-In", "Check-Out", "Duration (mins)"}
	widths := []float64{25, 15, 15, 12, 12, 15}

	f, err := newSheet(sheet, headers, widths)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for i := range records {
		a := &records[i]
		memberName, membershipNumber := "", ""
		if a.Member != nil {
			memberName = a.Member.Name
			membershipNumber = a.Member.MembershipNumber
		}
		checkOut := "Not checked out"
		duration := any("N/A")
		if a.CheckOut != nil {
			checkOut = a.CheckOut.Format("15:04")
			duration = a.Duration
		}
		if err := writeRow(f, sheet, i+2,
			memberName,
			membershipNumber,
			a.Date.Format(dateLayout),
			a.CheckIn.Format("15:04"),
			checkOut,
			duration,
		); err != nil {
			return nil, err
		}
	}
	return workbookBytes(f)
}

func newSheet(sheet string, headers []string, widths []float64) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			f.Close()
			return nil, err
		}
	}

	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := writeRow(f, sheet, 1, cells...); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
