package handlers

import (
	"fmt"
	"net/http"

	"invoice-generator/internal/export"
	"invoice-generator/internal/qr"
	"invoice-generator/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Snapshotter converts the rendered preview into the downloadable
// asset. main points it at the real conversion service (EXPORTER_URL);
// tests swap in a fake. The default covers a local Gotenberg container.
var Snapshotter export.Exporter = export.NewClient("http://localhost:3000")

// --- GET: QR code for the current invoice ---
// The payload is the fixed summary a scanner should verify against the
// printed document.
func GetInvoiceQR(c *gin.Context) {
	store := storeFrom(c)

	png, err := qr.Encode(store.Invoice(), 320)
	if err != nil {
		log.Error().Err(err).Msg("qr encode failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// --- POST: Export the invoice as PDF or PNG ---
// Hard-gated on the submitted flag: the form must pass full validation
// before anything leaves the building. An exporter failure is a generic
// retryable notice - the invoice state (submitted included) is untouched,
// so the user just tries again.
func ExportInvoice(c *gin.Context) {
	store := storeFrom(c)

	if !store.Submitted() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Submit the form first to enable download"})
		return
	}

	format, ok := export.ParseFormat(c.DefaultQuery("format", "pdf"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be pdf or png"})
		return
	}

	inv := store.Invoice()

	qrPNG, err := qr.Encode(inv, 160)
	if err != nil {
		// The document is still exportable without the QR badge.
		log.Warn().Err(err).Msg("qr encode failed, exporting without it")
		qrPNG = nil
	}

	html, err := render.Preview(inv, qrPNG)
	if err != nil {
		log.Error().Err(err).Msg("preview render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not render the invoice"})
		return
	}

	asset, err := Snapshotter.Render(c.Request.Context(), html, format)
	if err != nil {
		log.Error().Err(err).Str("format", string(format)).Msg("export failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Export failed. Please try again."})
		return
	}

	filename := fmt.Sprintf("%s.%s", inv.InvoiceNumber, format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, format.ContentType(), asset)
}
