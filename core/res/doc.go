// Package res builds a Reference Energy System (RES) out of the national
// energy-balance statistics of Latin America and the Caribbean.
//
// The RES is a graph of Technology and Fuel entities: every technology owns
// the fuel flows it consumes and/or produces, and every entity is addressed
// by a composite identity key that never includes energy values.
//
// # Pipeline
//
// The construction runs in four strictly ordered stages:
//
//  1. Skeleton: the capacity (indicator) workbook is scanned and every
//     structurally possible technology/fuel combination is registered with
//     its energy initialized to zero (BuildSkeleton).
//  2. Values: the balance workbook is scanned independently and a parallel
//     technology list is built carrying the real signed energies in PJ
//     (BuildValued).
//  3. Merge: each skeleton technology is matched against its valued
//     counterpart by identity key and the energies are copied in (Merge).
//     A missing counterpart is a data-integrity fault, not a silent skip.
//  4. Reduce: the paired loss technologies reported as separate line items
//     by the source statistics are collapsed into one aggregate loss
//     technology per region by energy summation (Reduce).
//
// Stages 1 and 2 have no data dependency on each other; Build runs them
// concurrently and joins before merging.
//
// # Label resolution
//
// Raw row/column labels (country, sector and commodity names as printed in
// the workbooks) are translated by pure lookup functions into region,
// technology and fuel codes following the OSeMOSYS three-letter naming
// convention. Unrecognized labels (unit rows, subtotals, the final-demand
// aggregate) are a normal outcome and are skipped, never an error.
package res
