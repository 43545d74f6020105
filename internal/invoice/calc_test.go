package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		wantSubtotal string
		wantGST      string
		wantTotal    string
	}{
		{
			name:         "default seed item",
			items:        []LineItem{{ID: 1, Quantity: "1", Rate: "0"}},
			wantSubtotal: "0.00",
			wantGST:      "0.00",
			wantTotal:    "0.00",
		},
		{
			name: "two items",
			items: []LineItem{
				{ID: 1, Quantity: "1", Rate: "0"},
				{ID: 2, Quantity: "2", Rate: "50"},
			},
			wantSubtotal: "100.00",
			wantGST:      "18.00",
			wantTotal:    "118.00",
		},
		{
			name:         "fractional rate",
			items:        []LineItem{{ID: 1, Quantity: "3", Rate: "19.99"}},
			wantSubtotal: "59.97",
			wantGST:      "10.79",
			wantTotal:    "70.76",
		},
		{
			name: "unparseable input counts as zero",
			items: []LineItem{
				{ID: 1, Quantity: "abc", Rate: "100"},
				{ID: 2, Quantity: "2", Rate: ""},
				{ID: 3, Quantity: "4", Rate: "25"},
			},
			wantSubtotal: "100.00",
			wantGST:      "18.00",
			wantTotal:    "118.00",
		},
		{
			name:         "no items",
			items:        nil,
			wantSubtotal: "0.00",
			wantGST:      "0.00",
			wantTotal:    "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, gst, total := CalculateTotals(tt.items)
			assert.Equal(t, tt.wantSubtotal, subtotal.StringFixed(2))
			assert.Equal(t, tt.wantGST, gst.StringFixed(2))
			assert.Equal(t, tt.wantTotal, total.StringFixed(2))
		})
	}
}

func TestCalculateTotalsRoundsBeforeSumming(t *testing.T) {
	// subtotal 10.71, gst = 10.71*0.18 = 1.9278 -> 1.93,
	// total = 10.71 + 1.93 (rounded values), not round(12.6378).
	items := []LineItem{{ID: 1, Quantity: "1", Rate: "10.71"}}

	subtotal, gst, total := CalculateTotals(items)
	assert.Equal(t, "10.71", subtotal.StringFixed(2))
	assert.Equal(t, "1.93", gst.StringFixed(2))
	assert.Equal(t, "12.64", total.StringFixed(2))
}

func TestCalculateTotalsIsIdempotent(t *testing.T) {
	items := []LineItem{
		{ID: 1, Quantity: "7", Rate: "13.37"},
		{ID: 2, Quantity: "0", Rate: "99"},
	}

	s1, g1, t1 := CalculateTotals(items)
	s2, g2, t2 := CalculateTotals(items)

	assert.True(t, s1.Equal(s2))
	assert.True(t, g1.Equal(g2))
	assert.True(t, t1.Equal(t2))
}
