package invoice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// GSTRate is the fixed tax rate applied to every invoice (18%).
var GSTRate = decimal.NewFromFloat(0.18)

// GSTMaxLen caps GST identification numbers (GSTIN is 15 characters).
const GSTMaxLen = 15

// LineItem - one billable row on the invoice.
// Quantity and Rate are kept as the raw strings the form sends us:
// the user may be half-way through typing ("1.", "-", "") and nothing
// in the system is allowed to crash on that. The calculator and the
// validator do the parsing.
type LineItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
}

// Amount is quantity * rate, never stored. Unparseable input counts as zero.
func (li LineItem) Amount() decimal.Decimal {
	return parseAmount(li.Quantity).Mul(parseAmount(li.Rate)).Round(2)
}

// Invoice - the single mutable record for one editing session.
// Subtotal/GST/Total are derived and recomputed after every mutation;
// they are never written directly.
type Invoice struct {
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	DueDate       string `json:"dueDate"`

	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyGST     string `json:"companyGST"`

	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientAddress string `json:"clientAddress"`
	ClientGST     string `json:"clientGST"`

	LineItems []LineItem `json:"lineItems"`

	Notes string `json:"notes"`

	Subtotal decimal.Decimal `json:"subtotal"`
	GST      decimal.Decimal `json:"gst"`
	Total    decimal.Decimal `json:"total"`
}

// New builds the default invoice a fresh session starts from:
// a random INV-xxxx number, dated today, due in 30 days, company
// placeholders, and exactly one empty line item (quantity 1, rate 0).
func New() *Invoice {
	now := time.Now()

	inv := &Invoice{
		InvoiceNumber:  fmt.Sprintf("INV-%d", 1000+rand.Intn(9000)),
		InvoiceDate:    now.Format("2006-01-02"),
		DueDate:        now.AddDate(0, 0, 30).Format("2006-01-02"),
		CompanyName:    "Your Company Name",
		CompanyAddress: "123 Business Street, City, State 12345",
		CompanyEmail:   "billing@yourcompany.com",
		CompanyPhone:   "+1 (555) 123-4567",
		ClientName:     "",
		Notes:          "Thank you for your business!",
		LineItems: []LineItem{
			{ID: 1, Description: "", Quantity: "1", Rate: "0"},
		},
	}

	inv.Subtotal, inv.GST, inv.Total = CalculateTotals(inv.LineItems)
	return inv
}

// parseAmount turns raw form input into a decimal, treating anything
// unparseable as zero so transient keystrokes never break the totals.
func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
