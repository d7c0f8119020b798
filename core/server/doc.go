// Package server holds the configuration of the development server under test.
//
// The verifier never serves anything itself; it only needs to know where the server
// listens and which path returns the single pixel image.
package server
