package qr

import (
	"encoding/json"

	qrcode "github.com/skip2/go-qrcode"

	"invoice-generator/internal/invoice"
)

// payload is the exact set of fields a scanner should see, in this
// order. Pretty-printed JSON so a phone camera shows something readable.
type payload struct {
	Invoice string `json:"Invoice"`
	Client  string `json:"Client"`
	Date    string `json:"Date"`
	Amount  string `json:"Amount"`
	Company string `json:"Company"`
	GST     string `json:"GST"`
}

// BuildPayload serializes the invoice summary that goes into the QR code.
// Deterministic: the same invoice always yields the same string.
func BuildPayload(inv invoice.Invoice) string {
	gst := inv.CompanyGST
	if gst == "" {
		gst = "N/A"
	}

	data, err := json.MarshalIndent(payload{
		Invoice: inv.InvoiceNumber,
		Client:  inv.ClientName,
		Date:    inv.InvoiceDate,
		Amount:  "₹" + inv.Total.StringFixed(2),
		Company: inv.CompanyName,
		GST:     gst,
	}, "", "  ")
	if err != nil {
		// A struct of plain strings cannot fail to marshal.
		return ""
	}
	return string(data)
}

// Encode renders the invoice summary as a scannable PNG.
// Medium error correction, same as the original preview widget.
func Encode(inv invoice.Invoice, size int) ([]byte, error) {
	return qrcode.Encode(BuildPayload(inv), qrcode.Medium, size)
}
