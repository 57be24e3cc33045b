package osemosys

import (
	"sort"

	"res-builder/core/res"
)

// Sets holds the model index columns derived from a built energy system.
// Labels follow the three-letter concatenation convention: REGION is <REG>,
// FUEL is <REG><FUE> and TECHNOLOGY is <REG><TEC><FUE>.
type Sets struct {
	Regions      []string
	Technologies []string
	Fuels        []string
}

// techCode returns the label code of a technology. Demand-shaped
// technologies are prefixed DEM so that consuming sectors are
// distinguishable from their producing counterparts.
func techCode(t *res.Technology) string {
	if t.Key().Class == res.ClassDemand {
		return "DEM" + t.Code
	}
	return t.Code
}

// labelFuels returns the fuel lists that contribute technology labels for
// the given technology: outputs for primary, inputs for demand, both for
// conversion.
func labelFuels(t *res.Technology) []*res.Fuel {
	switch t.Key().Class {
	case res.ClassPrimary:
		return t.Outputs
	case res.ClassDemand:
		return t.Inputs
	default:
		return append(append([]*res.Fuel{}, t.Outputs...), t.Inputs...)
	}
}

// BuildSets derives the REGION, TECHNOLOGY and FUEL set columns from the
// built technology list. Each column is de-duplicated and sorted.
func BuildSets(techs []*res.Technology) Sets {
	regions := make(map[string]struct{})
	techLabels := make(map[string]struct{})
	fuels := make(map[string]struct{})

	for _, t := range techs {
		code := techCode(t)
		for _, f := range labelFuels(t) {
			regions[t.Region] = struct{}{}
			techLabels[t.Region+code+f.Code] = struct{}{}
			fuels[t.Region+f.Code] = struct{}{}
		}
	}

	return Sets{
		Regions:      sortedKeys(regions),
		Technologies: sortedKeys(techLabels),
		Fuels:        sortedKeys(fuels),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
