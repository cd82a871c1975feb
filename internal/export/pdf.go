package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"gymcrm/internal/model"
)

var (
	colorPrimary = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// InvoicePDF renders payment receipts with Maroto.
type InvoicePDF struct{}

// NewInvoicePDF creates a new invoice PDF generator.
func NewInvoicePDF() *InvoicePDF {
	return &InvoicePDF{}
}

// Receipt renders the payment as an A4 invoice and returns its bytes. The gym
// profile supplies the letterhead; a nil profile renders a bare receipt.
func (g *InvoicePDF) Receipt(payment *model.Payment, member *model.Member, profile *model.GymProfile) ([]byte, error) {
	gymName := "Gym"
	if profile != nil && profile.Name != "" {
		gymName = profile.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+payment.InvoiceNumber, true).
		WithAuthor(gymName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(payment, profile, gymName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(memberRow(member))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountTableRows(payment)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(payment))
	m.AddRows(footerRow(payment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(payment *model.Payment, profile *model.GymProfile, gymName string) core.Row {
	contact := ""
	if profile != nil {
		contact = fmt.Sprintf("%s, %s   |   %s   |   %s",
			orDash(profile.Address), orDash(profile.City),
			orDash(profile.Phone), orDash(profile.Email))
	}

	return row.New(20).Add(
		col.New(7).Add(
			text.New(gymName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(contact, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PAYMENT RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(payment.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
			text.New("Date: "+payment.PaymentDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

func memberRow(member *model.Member) core.Row {
	name, number, phone := "", "", ""
	if member != nil {
		name, number, phone = member.Name, member.MembershipNumber, member.Phone
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RECEIVED FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Membership No: %s   |   Phone: %s", number, orDash(phone)),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func amountTableRows(payment *model.Payment) []core.Row {
	header := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	rows := []core.Row{
		row.New(8).Add(
			header("Description", 6, align.Left),
			header("Mode", 3, align.Center),
			header("Amount", 3, align.Right),
		),
	}

	base := payment.Amount
	if payment.GSTAmount != nil {
		base = base.Sub(*payment.GSTAmount)
	}
	rows = append(rows, row.New(7).Add(
		col.New(6).Add(text.New("Membership payment", props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(string(payment.PaymentMode), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(money(base), props.Text{Size: 8, Align: align.Right, Top: 1})),
	))

	if payment.GSTAmount != nil && payment.GSTPercentage != nil {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("GST @ %s%%", payment.GSTPercentage.StringFixed(1)),
				props.Text{Size: 8, Top: 1})),
			col.New(3),
			col.New(3).Add(text.New(money(*payment.GSTAmount), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func totalsRow(payment *model.Payment) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PAID:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(money(payment.Amount), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

func footerRow(payment *model.Payment) core.Row {
	ref := "Transaction: " + payment.TransactionID
	return row.New(12).Add(
		col.New(12).Add(
			text.New(ref, props.Text{Size: 7, Color: colorGray, Top: 4}),
			text.New("This is a computer generated receipt and does not require a signature.",
				props.Text{Size: 7, Color: colorGray, Top: 9}),
		),
	)
}

func money(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
