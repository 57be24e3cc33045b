package res

import "fmt"

// MatchError reports a skeleton entity with no counterpart in the valued
// list. The indicator matrix is defined as a superset of the balance
// matrix's possibilities, so a failed lookup is a data-integrity fault in
// the inputs, never a normal outcome.
type MatchError struct {
	// Tech identifies the skeleton technology that failed to match.
	Tech TechKey
	// Fuel is set when the technology matched but one of its fuel slots
	// had no counterpart.
	Fuel *FuelKey
	// Direction is "input" or "output" when Fuel is set.
	Direction string
}

func (e *MatchError) Error() string {
	if e.Fuel != nil {
		return fmt.Sprintf("res: no %s fuel %s in valued technology %s", e.Direction, e.Fuel, e.Tech)
	}
	return fmt.Sprintf("res: no valued counterpart for technology %s", e.Tech)
}

// Merge copies the energies of the valued list into the skeleton, matching
// technologies and fuels by identity key. The skeleton instances remain
// canonical: same identity, same instances, new energy values. Which fuel
// lists are copied follows the category shape (outputs for supply-side,
// inputs for demand-side, both for conversion).
//
// Merge returns the skeleton slice itself; the valued list is garbage once
// Merge returns.
func Merge(skeleton, valued []*Technology) ([]*Technology, error) {
	index := make(map[TechKey]*Technology, len(valued))
	for _, t := range valued {
		index[t.Key()] = t
	}

	for _, t := range skeleton {
		src, ok := index[t.Key()]
		if !ok {
			return nil, &MatchError{Tech: t.Key()}
		}

		shape := t.Category.shape()
		if shape.hasInputs {
			if err := copyEnergies(t, t.Inputs, src.Inputs, "input"); err != nil {
				return nil, err
			}
		}
		if shape.hasOutputs {
			if err := copyEnergies(t, t.Outputs, src.Outputs, "output"); err != nil {
				return nil, err
			}
		}
	}
	return skeleton, nil
}

// copyEnergies copies energy values from src fuels onto dst fuels by fuel
// identity. dst drives the iteration: every skeleton slot must find its
// valued counterpart.
func copyEnergies(t *Technology, dst, src []*Fuel, direction string) error {
	index := make(map[FuelKey]*Fuel, len(src))
	for _, f := range src {
		index[f.Key()] = f
	}

	for _, f := range dst {
		s, ok := index[f.Key()]
		if !ok {
			key := f.Key()
			return &MatchError{Tech: t.Key(), Fuel: &key, Direction: direction}
		}
		f.EnergyPJ = s.EnergyPJ
	}
	return nil
}
