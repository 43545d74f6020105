package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Format selects what kind of asset the snapshot service produces.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// ParseFormat maps the query-string value onto a known format.
func ParseFormat(raw string) (Format, bool) {
	switch Format(raw) {
	case FormatPDF:
		return FormatPDF, true
	case FormatPNG:
		return FormatPNG, true
	}
	return "", false
}

// ContentType is the MIME type of the produced asset.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "application/pdf"
}

// Exporter is the snapshot service contract: hand it a rendered HTML
// document, get back a downloadable binary asset. How it rasterizes or
// paginates is its own business.
type Exporter interface {
	Render(ctx context.Context, html string, format Format) ([]byte, error)
}

// Client talks to a Gotenberg-compatible conversion service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Render uploads the HTML document and returns the converted bytes.
func (c *Client) Render(ctx context.Context, html string, format Format) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, bytes.NewBufferString(html)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/forms/chromium/convert/html"
	if format == FormatPNG {
		endpoint = c.baseURL + "/forms/chromium/screenshot/html"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("snapshot service returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
