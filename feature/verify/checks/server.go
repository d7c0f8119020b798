package checks

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"image-verifier/core/client"
)

// ServerReport strictly types the result of a server image check.
type ServerReport struct {
	URL           string     `json:"url"`
	StatusCode    int        `json:"status_code,omitempty"`
	ContentType   string     `json:"content_type,omitempty"`
	ContentLength int        `json:"content_length"`
	Image         *ImageInfo `json:"image,omitempty"`
	Passed        bool       `json:"passed"`
	Error         string     `json:"error,omitempty"`
}

// CheckServerImage fetches path from the server and verifies the body is a 1x1 image.
// Network errors, non-200 statuses and decode failures are recorded on the report.
func CheckServerImage(ctx context.Context, c client.Client, path string) *ServerReport {
	report := &ServerReport{URL: c.BaseURL() + path}

	resp, err := c.Get(ctx, path)
	if err != nil {
		report.Error = fmt.Sprintf("request failed: %v", err)
		return report
	}
	report.StatusCode = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		report.Error = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		return report
	}
	report.ContentType = resp.ContentType()
	if report.ContentType == "" {
		report.ContentType = NoContentType
	}
	report.ContentLength = len(resp.Body)

	info, err := DecodeImage(bytes.NewReader(resp.Body))
	if err != nil {
		report.Error = fmt.Sprintf("failed to decode server image: %v", err)
		return report
	}
	report.Image = info

	if !info.IsSinglePixel() {
		report.Error = fmt.Sprintf("unexpected server image size, expected (%d, %d), got %s", ExpectedWidth, ExpectedHeight, info.Size())
		return report
	}

	report.Passed = true
	return report
}
