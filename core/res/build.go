package res

import (
	"sync"

	"res-builder/core/balance"
)

// Build runs the full pipeline: skeleton and valued lists are built
// concurrently from their independent datasets, joined, merged and reduced.
// The returned list is the canonical RES, ready for serialization.
func Build(indicator, bal balance.Dataset) ([]*Technology, error) {
	var (
		skeleton []*Technology
		valued   []*Technology
		wg       sync.WaitGroup
	)

	// The two builders read disjoint inputs and write disjoint outputs.
	wg.Add(2)

	go func() {
		defer wg.Done()
		skeleton = BuildSkeleton(indicator)
	}()

	go func() {
		defer wg.Done()
		valued = BuildValued(bal)
	}()

	wg.Wait()

	merged, err := Merge(skeleton, valued)
	if err != nil {
		return nil, err
	}
	return Reduce(merged)
}

// TotalEnergyPJ sums the signed energy of every flow in the list. Useful
// for run summaries and conservation checks.
func TotalEnergyPJ(techs []*Technology) float64 {
	var total float64
	for _, t := range techs {
		for _, f := range t.Inputs {
			total += f.EnergyPJ
		}
		for _, f := range t.Outputs {
			total += f.EnergyPJ
		}
	}
	return total
}
