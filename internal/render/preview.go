package render

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"strings"

	"invoice-generator/internal/invoice"
)

// Preview turns the invoice into the self-contained HTML document the
// exporter snapshots. Plain inline CSS only - the export pipeline chokes
// on anything fancier, and a PDF does not need it anyway.

type itemView struct {
	Lines  []string
	Qty    string
	Rate   string
	Amount string
}

type previewView struct {
	Inv          invoice.Invoice
	CompanyGST   string
	AddressLines []string
	Items        []itemView
	Subtotal     string
	GST          string
	Total        string
	QRDataURI    template.URL
}

// Preview renders the invoice as HTML. qrPNG may be nil when no QR code
// should be embedded.
func Preview(inv invoice.Invoice, qrPNG []byte) (string, error) {
	view := previewView{
		Inv:          inv,
		CompanyGST:   inv.CompanyGST,
		AddressLines: splitLines(inv.ClientAddress),
		Subtotal:     inv.Subtotal.StringFixed(2),
		GST:          inv.GST.StringFixed(2),
		Total:        inv.Total.StringFixed(2),
	}

	for _, item := range inv.LineItems {
		view.Items = append(view.Items, itemView{
			Lines:  splitLines(item.Description),
			Qty:    item.Quantity,
			Rate:   item.Rate,
			Amount: item.Amount().StringFixed(2),
		})
	}

	if len(qrPNG) > 0 {
		view.QRDataURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qrPNG))
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Inv.InvoiceNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; color: #000; background: #fff; margin: 40px; }
  h1 { color: #1e40af; margin: 0 0 12px 0; }
  table { width: 100%; border-collapse: collapse; margin: 24px 0; }
  th { text-align: left; background: #f3f4f6; border-bottom: 2px solid #d1d5db; padding: 10px; }
  td { border-bottom: 1px solid #e5e7eb; padding: 8px 10px; vertical-align: top; }
  .right { text-align: right; }
  .center { text-align: center; }
  .header, .parties { display: flex; justify-content: space-between; border-bottom: 1px solid #d1d5db; padding-bottom: 18px; margin-bottom: 18px; }
  .totals { width: 260px; margin-left: auto; }
  .totals .grand { font-weight: bold; font-size: 1.1em; border-top: 1px solid #d1d5db; }
  .muted { color: #6b7280; font-size: 0.85em; }
  .footer { text-align: center; margin-top: 32px; border-top: 1px solid #e5e7eb; padding-top: 16px; }
</style>
</head>
<body>
<div class="header">
  <div>
    <h1>INVOICE</h1>
    <p><strong>{{.Inv.CompanyName}}</strong><br>
    {{.Inv.CompanyAddress}}<br>
    {{.Inv.CompanyEmail}}<br>
    {{.Inv.CompanyPhone}}{{if .CompanyGST}}<br>GST: {{.CompanyGST}}{{end}}</p>
  </div>
  <div class="right">
    <p>Invoice #: <strong>{{.Inv.InvoiceNumber}}</strong><br>
    Date: {{.Inv.InvoiceDate}}<br>
    Due Date: {{.Inv.DueDate}}</p>
  </div>
</div>

<div class="parties">
  <div>
    <h3>Bill To:</h3>
    <p><strong>{{.Inv.ClientName}}</strong>
    {{if .Inv.ClientGST}}<br>GST: {{.Inv.ClientGST}}{{end}}
    {{if .Inv.ClientEmail}}<br>{{.Inv.ClientEmail}}{{end}}
    {{range .AddressLines}}<br>{{.}}{{end}}</p>
  </div>
  {{if .QRDataURI}}
  <div class="center">
    <img src="{{.QRDataURI}}" width="80" height="80" alt="QR">
    <div class="muted">Scan to verify<br>invoice details</div>
  </div>
  {{end}}
</div>

<table>
  <thead>
    <tr><th>Description</th><th class="center">Qty</th><th class="right">Rate</th><th class="right">Amount</th></tr>
  </thead>
  <tbody>
    {{range .Items}}
    <tr>
      <td>{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</td>
      <td class="center">{{.Qty}}</td>
      <td class="right">₹{{.Rate}}</td>
      <td class="right">₹{{.Amount}}</td>
    </tr>
    {{end}}
  </tbody>
</table>

<table class="totals">
  <tr><td>Subtotal:</td><td class="right">₹{{.Subtotal}}</td></tr>
  <tr><td>GST (18%):</td><td class="right">₹{{.GST}}</td></tr>
  <tr class="grand"><td>Total Amount:</td><td class="right">₹{{.Total}}</td></tr>
</table>

{{if .Inv.Notes}}
<div>
  <h4>Notes:</h4>
  <p class="muted">{{.Inv.Notes}}</p>
</div>
{{end}}

<div class="footer muted">Thank you for your business!</div>
</body>
</html>
`))
