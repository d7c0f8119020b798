package verify

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"image-verifier/feature/verify/checks"

	"github.com/fatih/color"
)

// Section headings, in the order a full run prints them.
const (
	SectionLocal     = "📁 Local image:"
	SectionServer    = "🌐 Server image:"
	SectionEndpoints = "🧪 Other endpoints:"
	SectionResults   = "📊 Results:"
)

// Reporter renders check outcomes as human readable text.
type Reporter struct {
	w       io.Writer
	success func(a ...interface{}) string
	failure func(a ...interface{}) string
	heading func(a ...interface{}) string
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		w:       w,
		success: color.New(color.FgGreen).SprintFunc(),
		failure: color.New(color.FgRed).SprintFunc(),
		heading: color.New(color.FgCyan, color.Bold).SprintFunc(),
	}
}

// Header prints the banner that opens a run.
func (r *Reporter) Header() {
	fmt.Fprintln(r.w, r.heading("🔍 Verifying image server results"))
	fmt.Fprintln(r.w, strings.Repeat("=", 40))
}

// Section prints a section heading preceded by a blank line.
func (r *Reporter) Section(title string) {
	fmt.Fprintf(r.w, "\n%s\n", r.heading(title))
}

func (r *Reporter) ok(format string, a ...interface{}) {
	fmt.Fprintln(r.w, r.success("✅ "+fmt.Sprintf(format, a...)))
}

func (r *Reporter) fail(format string, a ...interface{}) {
	fmt.Fprintln(r.w, r.failure("❌ "+fmt.Sprintf(format, a...)))
}

func (r *Reporter) detail(label string, value interface{}) {
	fmt.Fprintf(r.w, "   %s: %v\n", label, value)
}

func (r *Reporter) image(info *checks.ImageInfo) {
	r.detail("Size", info.Size())
	r.detail("Mode", info.Mode)
	r.detail("Format", info.Format)
	if info.Pixel != "" {
		r.detail("Pixel", info.Pixel)
	}
}

// Local prints the outcome of the local image check.
func (r *Reporter) Local(report *checks.LocalReport) {
	if report.Image == nil {
		r.fail("%s", report.Error)
		return
	}
	r.ok("Opened image: %s", report.Path)
	r.image(report.Image)
	r.detail("File size", fmt.Sprintf("%d bytes", report.FileSize))
	if !report.Passed {
		r.fail("%s", report.Error)
	}
}

// Server prints the outcome of the server image check.
func (r *Reporter) Server(report *checks.ServerReport) {
	switch {
	case report.StatusCode == 0:
		r.fail("Server image %s", report.Error)
		return
	case report.StatusCode != http.StatusOK:
		r.fail("Server image request failed, status code: %d", report.StatusCode)
		return
	}

	r.ok("Server image request succeeded")
	r.detail("Content-Type", report.ContentType)
	r.detail("Content-Length", fmt.Sprintf("%d bytes", report.ContentLength))
	if report.Image != nil {
		r.image(report.Image)
	}
	if !report.Passed {
		r.fail("%s", report.Error)
	}
}

// Endpoint prints the outcome of a single endpoint probe.
func (r *Reporter) Endpoint(result checks.EndpointResult) {
	switch {
	case result.StatusCode == 0:
		r.fail("%s - error: %s", result.Label, result.Error)
		return
	case !result.Passed:
		r.fail("%s - status code: %d", result.Label, result.StatusCode)
		return
	}

	r.ok("%s - status code: %d", result.Label, result.StatusCode)
	r.detail("Content-Type", result.ContentType)
	switch result.JSONType {
	case "":
	case checks.JSONObject:
		r.detail("JSON keys", quoteList(result.JSONKeys))
	default:
		r.detail("JSON type", result.JSONType)
	}
	if result.Title != "" {
		r.detail("Title", result.Title)
	}
}

// Summary prints the final results block.
func (r *Reporter) Summary(sum *Summary) {
	r.Section(SectionResults)
	if sum.Local != nil {
		r.detail("Local image", r.verdict(sum.Local.Passed))
	}
	if sum.Server != nil {
		r.detail("Server image", r.verdict(sum.Server.Passed))
	}
	if sum.Endpoints != nil {
		r.detail("Endpoints", fmt.Sprintf("%d/%d reachable", sum.EndpointsPassed(), len(sum.Endpoints)))
	}
	r.detail("Execution time", sum.ExecutionTime)

	if sum.Passed() {
		fmt.Fprintf(r.w, "\n%s\n", r.success("🎉 All checks passed!"))
	} else {
		fmt.Fprintf(r.w, "\n%s\n", r.failure("⚠️ Some checks failed, please check the server status"))
	}
}

func (r *Reporter) verdict(passed bool) string {
	if passed {
		return r.success("✅ passed")
	}
	return r.failure("❌ failed")
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
