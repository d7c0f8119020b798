// Package verify runs the smoke test of the image development server.
//
// A full run performs three independent checks in a fixed order:
//
//   - Local: decodes the generated fixture (test_1x1_pixel.png) and verifies it is 1x1.
//   - Server: fetches /image from the server and verifies the body decodes to a 1x1 image.
//   - Endpoints: probes /api/json, /download and /html-test and reports status,
//     content type, JSON keys and HTML titles.
//
// Every check is a single best-effort attempt. Failures are printed and recorded on the
// Summary; they never stop the run, so the final results block is always printed.
//
// # Output
//
// The human readable report is written to the writer given to NewService (stdout for the
// CLI). Structured logs go through zap and carry the run's run_id.
//
// # Usage
//
//	svc := verify.NewService(c, "/image", cfg.Verify, log, os.Stdout)
//	sum := svc.Run(ctx)
//	if !sum.Passed() { ... }
package verify
