// Package checks implements the individual verification routines.
//
// Each routine makes a single best-effort attempt and records every failure on its
// report instead of returning an error, so a caller can always run the next check.
package checks
