// Package logger provides a structured logging facility based on Zap.
//
// Logs are written to stderr so they never interleave with the verification report,
// which is printed to stdout.
//
// # Run IDs
//
// Every verification run is tagged with a run ID. WithRunID attaches it to a logger so
// that all entries emitted during one run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, runID)
//	log.Warn("Check failed", zap.String("check", "server"))
package logger
