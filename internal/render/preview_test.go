package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-generator/internal/invoice"
)

func TestPreviewRendersInvoice(t *testing.T) {
	store := invoice.NewStore()
	store.UpdateField(invoice.FieldClientName, "Jane Doe")
	store.UpdateField(invoice.FieldClientAddress, "This is a very long client address line")
	id := store.Invoice().LineItems[0].ID
	store.UpdateLineItem(id, invoice.FieldDescription, "Consulting services")
	store.UpdateLineItem(id, invoice.FieldQuantity, "2")
	store.UpdateLineItem(id, invoice.FieldRate, "50")

	html, err := Preview(store.Invoice(), nil)
	require.NoError(t, err)

	inv := store.Invoice()
	assert.Contains(t, html, inv.InvoiceNumber)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "Consulting services")
	assert.Contains(t, html, "₹100.00") // line amount
	assert.Contains(t, html, "₹118.00") // total
	assert.Contains(t, html, "GST (18%)")
	assert.Contains(t, html, "Thank you for your business!")

	// Wrapped address lines render as separate <br>-joined lines.
	for _, line := range strings.Split(inv.ClientAddress, "\n") {
		assert.Contains(t, html, line)
	}

	assert.NotContains(t, html, "data:image/png", "no QR was supplied")
}

func TestPreviewEmbedsQR(t *testing.T) {
	html, err := Preview(*invoice.New(), []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	assert.Contains(t, html, "data:image/png;base64,")
}

func TestPreviewEscapesUserInput(t *testing.T) {
	inv := *invoice.New()
	inv.ClientName = `<script>alert("x")</script>`

	html, err := Preview(inv, nil)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}
