package res

import (
	"testing"

	"res-builder/core/balance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_CopiesEnergyIntoSkeleton(t *testing.T) {
	indicator := sheet(
		[]string{"PETRÓLEO"},
		balance.Row{Label: "PRODUCCIÓN", Cells: []float64{1}},
	)
	bal := sheet(
		[]string{"PETRÓLEO"},
		balance.Row{Label: "PRODUCCIÓN", Cells: []float64{12.5}},
	)

	skeleton := BuildSkeleton(indicator)
	valued := BuildValued(bal)

	merged, err := Merge(skeleton, valued)
	require.NoError(t, err)
	require.Len(t, merged, 1)

	pro := merged[0]
	assert.Equal(t, CategorySupply, pro.Category)
	assert.Equal(t, "PRO", pro.Code)
	assert.Equal(t, "CRI", pro.Region)
	require.Len(t, pro.Outputs, 1)
	assert.Equal(t, FuelKey{Tier: TierPrimary, Code: "CRU", Region: "CRI"}, pro.Outputs[0].Key())
	assert.Equal(t, 12.5, pro.Outputs[0].EnergyPJ)

	// The skeleton instances remain canonical.
	assert.Same(t, skeleton[0], merged[0])
}

func TestMerge_MissingEnergyDefaultsToZero(t *testing.T) {
	indicator := sheet(
		[]string{"PETRÓLEO", "GAS NATURAL"},
		balance.Row{Label: "IMPORTACIÓN", Cells: []float64{1, 1}},
	)
	bal := sheet(
		[]string{"PETRÓLEO", "GAS NATURAL"},
		balance.Row{Label: "IMPORTACIÓN", Cells: []float64{3, 0}},
	)

	merged, err := Merge(BuildSkeleton(indicator), BuildValued(bal))
	require.NoError(t, err)
	require.Len(t, merged, 1)
	require.Len(t, merged[0].Outputs, 2)
	assert.Equal(t, 3.0, merged[0].Outputs[0].EnergyPJ)
	assert.Zero(t, merged[0].Outputs[1].EnergyPJ)
}

func TestMerge_Conservation(t *testing.T) {
	indicator := sheet(
		[]string{"PETRÓLEO", "DIÉSEL OIL", "ELECTRICIDAD"},
		balance.Row{Label: "REFINERÍAS", Cells: []float64{1, 1, 0}},
		balance.Row{Label: "CENTRALES ELÉCTRICAS", Cells: []float64{1, 1, 1}},
		balance.Row{Label: "TRANSPORTE", Cells: []float64{0, 1, 1}},
	)
	bal := sheet(
		[]string{"PETRÓLEO", "DIÉSEL OIL", "ELECTRICIDAD"},
		balance.Row{Label: "REFINERÍAS", Cells: []float64{-20, 19, 0}},
		balance.Row{Label: "CENTRALES ELÉCTRICAS", Cells: []float64{-5, -4, 8}},
		balance.Row{Label: "TRANSPORTE", Cells: []float64{0, 12, 2}},
	)

	skeleton := BuildSkeleton(indicator)
	valued := BuildValued(bal)
	valuedTotal := TotalEnergyPJ(valued)

	merged, err := Merge(skeleton, valued)
	require.NoError(t, err)

	// Skeleton and valued lists carry identical slots here, so the total
	// signed energy must survive the merge exactly.
	assert.InDelta(t, valuedTotal, TotalEnergyPJ(merged), 1e-9)
}

func TestMerge_MissingTechnologyFails(t *testing.T) {
	skeleton := []*Technology{
		{Category: CategorySupply, Code: "PRO", Region: "CRI"},
	}

	_, err := Merge(skeleton, nil)
	require.Error(t, err)

	var matchErr *MatchError
	require.ErrorAs(t, err, &matchErr)
	assert.Equal(t, "PRO", matchErr.Tech.Code)
	assert.Equal(t, "CRI", matchErr.Tech.Region)
	assert.Nil(t, matchErr.Fuel)
	assert.Contains(t, err.Error(), "CRI")
}

func TestMerge_MissingFuelFails(t *testing.T) {
	skeleton := []*Technology{
		{
			Category: CategorySupply, Code: "PRO", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "CRI"}},
		},
	}
	valued := []*Technology{
		{
			Category: CategorySupply, Code: "PRO", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "NGS", Region: "CRI", EnergyPJ: 2}},
		},
	}

	_, err := Merge(skeleton, valued)
	require.Error(t, err)

	var matchErr *MatchError
	require.ErrorAs(t, err, &matchErr)
	require.NotNil(t, matchErr.Fuel)
	assert.Equal(t, "CRU", matchErr.Fuel.Code)
	assert.Equal(t, "output", matchErr.Direction)
}

func TestMerge_IdentityMatchIsExact(t *testing.T) {
	// Same code and region but a different category must not match.
	skeleton := []*Technology{
		{Category: CategoryPrimaryLoss, Code: "WAS", Region: "CRI"},
	}
	valued := []*Technology{
		{Category: CategorySupply, Code: "WAS", Region: "CRI"},
	}

	_, err := Merge(skeleton, valued)
	assert.Error(t, err)
}
