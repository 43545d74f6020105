package handlers

import (
	"net/http"
	"strconv"

	"invoice-generator/internal/invoice"

	"github.com/gin-gonic/gin"
)

// storeFrom pulls the session's invoice store out of the context
// (put there by the session middleware).
func storeFrom(c *gin.Context) *invoice.Store {
	return c.MustGet("store").(*invoice.Store)
}

// invoiceState is the full picture the frontend renders from: the
// invoice record, the error map, and the submitted gate.
func invoiceState(store *invoice.Store) gin.H {
	return gin.H{
		"invoice":   store.Invoice(),
		"errors":    store.Errors(),
		"submitted": store.Submitted(),
	}
}

// --- GET: Current invoice state ---
func GetInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, invoiceState(storeFrom(c)))
}

// FieldUpdateRequest is one top-level field edit from the form.
type FieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// --- PUT: Update a top-level invoice field ---
// Validation failures are NOT HTTP errors: they land in the error map
// and the edit flow keeps going, exactly like typing in a form should.
func UpdateField(c *gin.Context) {
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	store := storeFrom(c)
	store.UpdateField(invoice.Field(req.Field), req.Value)

	c.JSON(http.StatusOK, invoiceState(store))
}

// ItemUpdateRequest is one edit to a single line-item field.
type ItemUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// --- PUT: Update one line item ---
// An unknown item id is a silent no-op (the row may have just been
// removed) - the response simply reflects the current state.
func UpdateLineItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	store := storeFrom(c)
	store.UpdateLineItem(id, invoice.Field(req.Field), req.Value)

	c.JSON(http.StatusOK, invoiceState(store))
}

// --- POST: Add a line item ---
func AddLineItem(c *gin.Context) {
	store := storeFrom(c)
	id := store.AddLineItem()

	c.JSON(http.StatusCreated, gin.H{
		"id":        id,
		"invoice":   store.Invoice(),
		"errors":    store.Errors(),
		"submitted": store.Submitted(),
	})
}

// --- DELETE: Remove a line item ---
// Removing the last remaining row is a guarded no-op; the caller just
// gets the unchanged state back.
func RemoveLineItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	store := storeFrom(c)
	store.RemoveLineItem(id)

	c.JSON(http.StatusOK, invoiceState(store))
}

// --- POST: Submit the form ---
// Runs full validation. Passing flips the one-way submitted gate that
// unlocks export; failing returns the rebuilt error map.
func SubmitInvoice(c *gin.Context) {
	store := storeFrom(c)

	if !store.Submit() {
		c.JSON(http.StatusUnprocessableEntity, invoiceState(store))
		return
	}

	c.JSON(http.StatusOK, invoiceState(store))
}
