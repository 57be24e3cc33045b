// Package osemosys derives model input data from a built energy system.
//
// It translates the technology list into the SETS (REGION, TECHNOLOGY, FUEL)
// and the AccumulatedAnnualDemand parameter of the OSeMOSYS input format,
// and writes them as a workbook with one sheet per column group.
//
// # Naming Convention
//
// Labels concatenate three-letter codes: a TECHNOLOGY entry is
// <REG><TEC><FUE>, a FUEL entry <REG><FUE>. Demand technologies are
// prefixed DEM inside the label so consuming sectors never collide with
// producers of the same code.
package osemosys
