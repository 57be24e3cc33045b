// Package energy exposes the built energy system over HTTP.
//
// The service builds the system lazily from the configured workbook source
// on the first request and serves it from memory afterwards. The handler
// offers region listing, technology listing (global and per region) and a
// whole-system summary.
package energy
