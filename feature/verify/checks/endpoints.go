package checks

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"image-verifier/core/client"
)

// Endpoint is a path probed by ScanEndpoints together with its display label.
type Endpoint struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// DefaultEndpoints lists the endpoints scanned after the image checks, in order.
var DefaultEndpoints = []Endpoint{
	{Path: "/api/json", Label: "JSON API"},
	{Path: "/download", Label: "File download"},
	{Path: "/html-test", Label: "HTML test"},
}

// NoContentType is reported when a response carries no Content-Type header.
const NoContentType = "N/A"

// EndpointResult is the outcome of probing a single endpoint.
type EndpointResult struct {
	Endpoint
	StatusCode  int    `json:"status_code,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	// JSONKeys holds the top-level keys of a JSON object body, in document order.
	JSONKeys []string `json:"json_keys,omitempty"`
	// JSONType is the kind of a valid JSON body (object, array, string, ...).
	JSONType string `json:"json_type,omitempty"`
	// Title is the <title> of an HTML body.
	Title  string `json:"title,omitempty"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}

// ScanEndpoints probes every endpoint in order. A failing endpoint never stops the scan.
func ScanEndpoints(ctx context.Context, c client.Client, endpoints []Endpoint) []EndpointResult {
	results := make([]EndpointResult, 0, len(endpoints))
	for _, ep := range endpoints {
		results = append(results, probeEndpoint(ctx, c, ep))
	}
	return results
}

func probeEndpoint(ctx context.Context, c client.Client, ep Endpoint) EndpointResult {
	result := EndpointResult{Endpoint: ep}

	resp, err := c.Get(ctx, ep.Path)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result
	}
	result.StatusCode = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		return result
	}
	result.Passed = true

	result.ContentType = resp.ContentType()
	if result.ContentType == "" {
		result.ContentType = NoContentType
	}

	// Body inspection is best effort; parse failures leave the fields empty.
	contentType := strings.ToLower(result.ContentType)
	switch {
	case strings.Contains(contentType, "json"):
		if keys, kind, err := DescribeJSON(resp.Body); err == nil {
			result.JSONKeys = keys
			result.JSONType = kind
		}
	case strings.Contains(contentType, "html"):
		if title, err := HTMLTitle(resp.Body); err == nil {
			result.Title = title
		}
	}

	return result
}
