package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field names the validator and the store dispatch on. The HTTP layer
// passes whatever string the frontend sends; anything not listed here
// simply has no rule and no storage slot.
type Field string

const (
	FieldInvoiceNumber  Field = "invoiceNumber"
	FieldInvoiceDate    Field = "invoiceDate"
	FieldDueDate        Field = "dueDate"
	FieldCompanyName    Field = "companyName"
	FieldCompanyAddress Field = "companyAddress"
	FieldCompanyEmail   Field = "companyEmail"
	FieldCompanyPhone   Field = "companyPhone"
	FieldCompanyGST     Field = "companyGST"
	FieldClientName     Field = "clientName"
	FieldClientEmail    Field = "clientEmail"
	FieldClientAddress  Field = "clientAddress"
	FieldClientGST      Field = "clientGST"
	FieldNotes          Field = "notes"
	FieldDescription    Field = "description"
	FieldQuantity       Field = "quantity"
	FieldRate           Field = "rate"
)

var (
	// Loose shape check, same as the classic \S+@\S+\.\S+ — we are not
	// trying to outsmart RFC 5322 here.
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	digitPattern = regexp.MustCompile(`[0-9]`)
	gstPattern   = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
)

// ValidateField checks a single field value and returns a human-readable
// error message, or "" when the value passes. Pure: the caller (the Store)
// decides what to do with the message. Fields without a rule always pass.
func ValidateField(field Field, value string) string {
	switch field {
	case FieldClientEmail:
		// Empty is fine - the email is optional.
		if value != "" && !emailPattern.MatchString(value) {
			return "Invalid email address"
		}
	case FieldClientName:
		if strings.TrimSpace(value) == "" {
			return "Client name is required"
		}
		if digitPattern.MatchString(value) {
			return "Client name should contain only letters"
		}
	case FieldCompanyGST, FieldClientGST:
		if len(value) > GSTMaxLen {
			return "GST number should not exceed 15 characters"
		}
		if value != "" && !gstPattern.MatchString(value) {
			return "GST number should contain only letters and numbers"
		}
	case FieldQuantity, FieldRate:
		if !isNonNegativeNumber(value) {
			return "Must be a positive number"
		}
	}
	return ""
}

// ValidateForm re-checks the whole invoice the way submission sees it.
// Line-item errors are keyed "quantity_<index>" / "rate_<index>" by the
// item's position at validation time — NOT by the bare field name the
// live editor uses. The two keying schemes are kept distinct on purpose.
func ValidateForm(inv *Invoice) map[string]string {
	errs := make(map[string]string)

	put := func(key string, field Field, value string) {
		if msg := ValidateField(field, value); msg != "" {
			errs[key] = msg
		}
	}

	put("clientName", FieldClientName, inv.ClientName)
	put("clientEmail", FieldClientEmail, inv.ClientEmail)
	put("companyGST", FieldCompanyGST, inv.CompanyGST)
	put("clientGST", FieldClientGST, inv.ClientGST)

	for i, item := range inv.LineItems {
		if !isNonNegativeNumber(item.Quantity) {
			errs[fmt.Sprintf("quantity_%d", i)] = "Quantity must be a positive number"
		}
		if !isNonNegativeNumber(item.Rate) {
			errs[fmt.Sprintf("rate_%d", i)] = "Rate must be a positive number"
		}
	}

	return errs
}

// isNonNegativeNumber: parses as a number, not negative, not empty.
// Note the enforced lower bound for quantity is 0 even though the form
// labels the input "min 1" — new items default to 1, but 0 is accepted.
func isNonNegativeNumber(value string) bool {
	if value == "" {
		return false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return n >= 0
}
