package invoice

import (
	"strings"
	"sync"
)

// Store owns one invoice, its error map, and the submitted flag.
// All mutation goes through the methods below; each one runs
// validate -> transform -> store -> recompute as a single step, so a
// reader never observes totals that are stale relative to the items.
//
// Logically the store is driven by one user at a time (one browser
// session), but HTTP requests can overlap, so a mutex keeps each
// operation atomic.
type Store struct {
	mu        sync.Mutex
	inv       *Invoice
	errors    map[string]string
	submitted bool
	nextID    int64
}

// NewStore creates a store seeded with the default invoice.
func NewStore() *Store {
	return &Store{
		inv:    New(),
		errors: make(map[string]string),
		nextID: 2, // the seed line item took id 1
	}
}

// Invoice returns a snapshot copy of the current invoice. The line-item
// slice is copied so the caller can never mutate store state through it.
func (s *Store) Invoice() Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := *s.inv
	snap.LineItems = make([]LineItem, len(s.inv.LineItems))
	copy(snap.LineItems, s.inv.LineItems)
	return snap
}

// Errors returns a copy of the current error map.
func (s *Store) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Submitted reports whether the invoice passed full validation at least once.
func (s *Store) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// UpdateField applies one top-level field edit.
//
// Special cases, in order:
//  1. GST fields longer than 15 characters are rejected outright —
//     the stored value stays as it was, no error is recorded.
//  2. clientName has digit characters stripped before anything else
//     sees the value.
//  3. clientAddress is re-wrapped to 25-character lines before storing.
//
// Unknown field names are silent no-ops: with a closed record there is
// nowhere to put them, and nothing here is allowed to fail.
func (s *Store) UpdateField(field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if (field == FieldCompanyGST || field == FieldClientGST) && len(value) > GSTMaxLen {
		return
	}
	if field == FieldClientName {
		value = stripDigits(value)
	}
	if field == FieldClientAddress {
		value = WrapAddress(value)
	}

	s.mergeError(string(field), ValidateField(field, value))

	switch field {
	case FieldInvoiceNumber:
		s.inv.InvoiceNumber = value
	case FieldInvoiceDate:
		s.inv.InvoiceDate = value
	case FieldDueDate:
		s.inv.DueDate = value
	case FieldCompanyName:
		s.inv.CompanyName = value
	case FieldCompanyAddress:
		s.inv.CompanyAddress = value
	case FieldCompanyEmail:
		s.inv.CompanyEmail = value
	case FieldCompanyPhone:
		s.inv.CompanyPhone = value
	case FieldCompanyGST:
		s.inv.CompanyGST = value
	case FieldClientName:
		s.inv.ClientName = value
	case FieldClientEmail:
		s.inv.ClientEmail = value
	case FieldClientAddress:
		s.inv.ClientAddress = value
	case FieldClientGST:
		s.inv.ClientGST = value
	case FieldNotes:
		s.inv.Notes = value
	default:
		// No such top-level field - accept and ignore.
	}

	s.recompute()
}

// UpdateLineItem applies one edit to the line item with the given id.
// A missing id is a silent no-op (the row may have just been removed by
// a quick second click - that is not an error).
//
// Note the error map key here is the bare field name ("quantity"),
// while full-form validation keys by position ("quantity_0"). The two
// schemes are intentionally left distinct.
func (s *Store) UpdateLineItem(id int64, field Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.inv.LineItems {
		if s.inv.LineItems[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	switch field {
	case FieldDescription:
		s.inv.LineItems[idx].Description = WrapDescription(value)
	case FieldQuantity:
		s.mergeError(string(field), ValidateField(field, value))
		s.inv.LineItems[idx].Quantity = value
	case FieldRate:
		s.mergeError(string(field), ValidateField(field, value))
		s.inv.LineItems[idx].Rate = value
	default:
		// No such line-item field - accept and ignore.
	}

	s.recompute()
}

// AddLineItem appends a fresh empty row (quantity 1, rate 0) and returns
// its id. Ids are handed out by a store-scoped counter and never reused,
// so a removed row's id can never match a later one.
func (s *Store) AddLineItem() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.inv.LineItems = append(s.inv.LineItems, LineItem{
		ID:       id,
		Quantity: "1",
		Rate:     "0",
	})

	s.recompute()
	return id
}

// RemoveLineItem deletes the row with the given id. The last remaining
// row can never be removed - an invoice always has at least one item.
// Unknown ids are silent no-ops.
func (s *Store) RemoveLineItem(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.inv.LineItems) <= 1 {
		return
	}

	items := s.inv.LineItems[:0]
	for _, item := range s.inv.LineItems {
		if item.ID != id {
			items = append(items, item)
		}
	}
	s.inv.LineItems = items

	s.recompute()
}

// Submit runs full-form validation. On success the submitted flag goes
// true (one-way: a later failing run does not pull it back down) and
// the error map is cleared. On failure the rebuilt error map replaces
// whatever the live editor had accumulated.
func (s *Store) Submit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := ValidateForm(s.inv)
	s.errors = errs

	if len(errs) > 0 {
		return false
	}

	s.submitted = true
	return true
}

// recompute refreshes the derived totals. Callers hold the lock, so the
// new totals become visible in the same step as the mutation itself.
func (s *Store) recompute() {
	s.inv.Subtotal, s.inv.GST, s.inv.Total = CalculateTotals(s.inv.LineItems)
}

// mergeError records or clears one field's message.
func (s *Store) mergeError(key, msg string) {
	if msg == "" {
		delete(s.errors, key)
	} else {
		s.errors[key] = msg
	}
}

func stripDigits(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, value)
}
