package osemosys

import (
	"math"
	"sort"

	"res-builder/core/res"
)

// DemandYear is the statistics year the accumulated annual demand column
// reports.
const DemandYear = 2021

// DemandRow is one AccumulatedAnnualDemand observation: the demand
// technology label consuming a fuel in a region, with the absolute energy
// amount.
type DemandRow struct {
	Region   string
	Label    string
	EnergyPJ float64
}

// AccumulatedAnnualDemand builds the parameter rows from every
// demand-shaped technology. Consumed energies carry a negative sign in the
// balance convention; the parameter reports magnitudes.
func AccumulatedAnnualDemand(techs []*res.Technology) []DemandRow {
	var rows []DemandRow
	for _, t := range techs {
		if t.Key().Class != res.ClassDemand {
			continue
		}
		for _, f := range t.Inputs {
			rows = append(rows, DemandRow{
				Region:   t.Region,
				Label:    "DEM" + t.Code + f.Code,
				EnergyPJ: math.Abs(f.EnergyPJ),
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Region != rows[j].Region {
			return rows[i].Region < rows[j].Region
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}
