// Package balance provides the normalized tabular view of the national
// energy-balance workbooks consumed by the RES pipeline.
//
// Two workbooks feed the pipeline: the capacity (indicator) workbook, whose
// cells flag which technology/fuel combinations are structurally possible,
// and the balance workbook, whose cells hold real signed energy magnitudes
// in petajoules. Both share the same layout: one sheet per country, a fixed
// header row listing the commodity columns, and a first column holding the
// sector/technology row labels.
//
// # Normalization
//
// The loader applies the same cleanup to every sheet before the data reaches
// the core:
//   - column and row labels are whitespace-trimmed
//   - the blank label of the units row becomes "Unit"
//   - missing or non-numeric cells become 0.0
//
// # Sources
//
// Workbooks are read either from the local filesystem or from object storage
// (see Source, PathSource and ObjectSource). Parsing is done with excelize.
package balance
