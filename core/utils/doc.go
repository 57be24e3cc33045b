// Package utils provides small conversion helpers shared across the
// application, mainly for coercing raw spreadsheet cell values into the
// numeric types the pipeline works with.
package utils
