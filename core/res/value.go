package res

import (
	"sort"

	"res-builder/core/balance"
)

// BuildValued scans the balance dataset and builds the technology list that
// carries the real signed energies in PJ. The traversal and categorization
// logic mirrors BuildSkeleton exactly; only the energy handling differs:
//
//   - export and unused-waste outputs are recorded negative
//   - demand and secondary-loss inputs are recorded negative
//   - secondary-conversion flows go through a split-flow pass that clamps
//     sign artifacts left by the shared source column
//
// The result is ephemeral: it exists to be consumed by Merge.
func BuildValued(ds balance.Dataset) []*Technology {
	var techs []*Technology

	sheets := make([]string, 0, len(ds))
	for sheetKey := range ds {
		sheets = append(sheets, sheetKey)
	}
	sort.Strings(sheets)

	for _, sheetKey := range sheets {
		region, ok := sheetRegion(sheetKey)
		if !ok {
			continue
		}

		table := ds[sheetKey]
		cols := resolveColumns(table.Columns)
		for r, row := range table.Rows {
			tid, ok := ResolveTechnology(row.Label)
			if !ok {
				continue
			}

			t := &Technology{Category: tid.Category, Code: tid.Code, Region: region}
			for c, fid := range cols {
				if fid == nil {
					continue
				}
				if !includeFuel(tid.Category, tid.Code, fid.Tier) {
					continue
				}
				energy := signedEnergy(tid.Category, tid.Code, table.Cell(r, c))
				attach(t, *fid, region, energy)
			}
			techs = append(techs, t)
		}
	}

	splitFlow(techs)
	return techs
}

// signedEnergy applies the recording direction conventions to a raw cell.
func signedEnergy(cat Category, techCode string, raw float64) float64 {
	switch {
	case cat == CategorySupply && techCode == "EXP":
		return -raw
	case cat == CategoryPrimaryLoss && techCode == "WAS":
		return -raw
	case cat == CategoryDemand, cat == CategorySecondaryLoss:
		return -raw
	default:
		return raw
	}
}

// splitFlow corrects secondary-conversion fuels after construction: the
// source table reports consumption and derivation of a secondary fuel in
// one shared column, so a positive residue on an input or a negative
// residue on an output belongs to the other side and is zeroed here.
// Post-condition: every input energy <= 0 and every output energy >= 0.
func splitFlow(techs []*Technology) {
	for _, t := range techs {
		if t.Category != CategorySecondaryConversion {
			continue
		}
		for _, f := range t.Inputs {
			if f.EnergyPJ > 0 {
				f.EnergyPJ = 0
			}
		}
		for _, f := range t.Outputs {
			if f.EnergyPJ < 0 {
				f.EnergyPJ = 0
			}
		}
	}
}
