package res

import "fmt"

// lossPair describes one pair of semantically duplicated loss technologies:
// the absorber survives carrying the summed energies, the donor is removed.
type lossPair struct {
	category Category
	absorber string
	donor    string
}

// The source statistics report these as separate line items, but downstream
// modeling treats each pair as a single aggregate loss technology per region.
var lossPairs = []lossPair{
	{category: CategoryPrimaryLoss, absorber: "INV", donor: "WAS"},
	{category: CategorySecondaryLoss, absorber: "OWN", donor: "LOS"},
}

// Reduce collapses the paired loss technologies of every region: the
// unused-waste technology is summed into inventory-variation (output fuels)
// and transformation losses into own-consumption (input fuels). Summation
// is energy-conserving; donor fuels with no matching absorber slot are
// carried over instead of dropped.
//
// Regions where the donor is absent are left untouched, which makes Reduce
// a no-op on an already-reduced list. A donor without its absorber is a
// data precondition violation and fails the run.
func Reduce(techs []*Technology) ([]*Technology, error) {
	removed := make(map[*Technology]struct{})

	for _, pair := range lossPairs {
		absorbers := make(map[string]*Technology)
		donors := make(map[string]*Technology)
		for _, t := range techs {
			if t.Category != pair.category {
				continue
			}
			switch t.Code {
			case pair.absorber:
				absorbers[t.Region] = t
			case pair.donor:
				donors[t.Region] = t
			}
		}

		for region, donor := range donors {
			absorber, ok := absorbers[region]
			if !ok {
				return nil, fmt.Errorf("res: region %s has loss technology %s but no %s to absorb it",
					region, pair.donor, pair.absorber)
			}
			absorb(absorber, donor)
			removed[donor] = struct{}{}
		}
	}

	if len(removed) == 0 {
		return techs, nil
	}

	out := techs[:0]
	for _, t := range techs {
		if _, gone := removed[t]; !gone {
			out = append(out, t)
		}
	}
	return out, nil
}

// absorb sums every donor fuel into the matching absorber fuel. The fuel
// lists summed over follow the pair's category shape: primary losses carry
// outputs, secondary losses carry inputs.
func absorb(absorber, donor *Technology) {
	if absorber.Category.shape().hasOutputs {
		absorber.Outputs = sumFuels(absorber.Outputs, donor.Outputs)
	}
	if absorber.Category.shape().hasInputs {
		absorber.Inputs = sumFuels(absorber.Inputs, donor.Inputs)
	}
}

// sumFuels adds src energies into dst by fuel identity, appending any src
// fuel that has no slot in dst so no energy is discarded.
func sumFuels(dst, src []*Fuel) []*Fuel {
	index := make(map[FuelKey]*Fuel, len(dst))
	for _, f := range dst {
		index[f.Key()] = f
	}

	for _, f := range src {
		if d, ok := index[f.Key()]; ok {
			d.EnergyPJ += f.EnergyPJ
			continue
		}
		dst = append(dst, f)
		index[f.Key()] = f
	}
	return dst
}
