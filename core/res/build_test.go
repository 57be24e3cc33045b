package res

import (
	"testing"

	"res-builder/core/balance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EndToEnd(t *testing.T) {
	columns := []string{"PETRÓLEO", "DIÉSEL OIL", "ELECTRICIDAD"}

	indicator := sheet(
		columns,
		balance.Row{Label: "PRODUCCIÓN", Cells: []float64{1, 0, 0}},
		balance.Row{Label: "REFINERÍAS", Cells: []float64{1, 1, 0}},
		balance.Row{Label: "CENTRALES ELÉCTRICAS", Cells: []float64{0, 1, 1}},
		balance.Row{Label: "TRANSPORTE", Cells: []float64{0, 1, 1}},
		balance.Row{Label: "VARIACIÓN DE INVENTARIOS", Cells: []float64{1, 0, 0}},
		balance.Row{Label: "NO APROVECHADO", Cells: []float64{1, 0, 0}},
	)
	bal := sheet(
		columns,
		balance.Row{Label: "PRODUCCIÓN", Cells: []float64{30, 0, 0}},
		balance.Row{Label: "REFINERÍAS", Cells: []float64{-25, 24, 0}},
		balance.Row{Label: "CENTRALES ELÉCTRICAS", Cells: []float64{0, -10, 8}},
		balance.Row{Label: "TRANSPORTE", Cells: []float64{0, 14, 8}},
		balance.Row{Label: "VARIACIÓN DE INVENTARIOS", Cells: []float64{-2, 0, 0}},
		balance.Row{Label: "NO APROVECHADO", Cells: []float64{3, 0, 0}},
	)

	techs, err := Build(indicator, bal)
	require.NoError(t, err)

	// PRO, REF, PWR, TRA plus the collapsed loss technology.
	require.Len(t, techs, 5)
	assert.Nil(t, findTech(t, techs, CategoryPrimaryLoss, "WAS", "CRI"))

	pro := findTech(t, techs, CategorySupply, "PRO", "CRI")
	require.NotNil(t, pro)
	require.Len(t, pro.Outputs, 1)
	assert.Equal(t, 30.0, pro.Outputs[0].EnergyPJ)

	ref := findTech(t, techs, CategoryPrimaryConversion, "REF", "CRI")
	require.NotNil(t, ref)
	require.Len(t, ref.Inputs, 1)
	assert.Equal(t, -25.0, ref.Inputs[0].EnergyPJ)
	require.Len(t, ref.Outputs, 1)
	assert.Equal(t, 24.0, ref.Outputs[0].EnergyPJ)

	pwr := findTech(t, techs, CategoryTertiaryConversion, "PWR", "CRI")
	require.NotNil(t, pwr)
	require.Len(t, pwr.Inputs, 1)
	assert.Equal(t, -10.0, pwr.Inputs[0].EnergyPJ)
	require.Len(t, pwr.Outputs, 1)
	assert.Equal(t, 8.0, pwr.Outputs[0].EnergyPJ)

	tra := findTech(t, techs, CategoryDemand, "TRA", "CRI")
	require.NotNil(t, tra)
	require.Len(t, tra.Inputs, 2)
	for _, f := range tra.Inputs {
		assert.Negative(t, f.EnergyPJ)
	}

	// Inventory variation absorbed the negated waste row.
	inv := findTech(t, techs, CategoryPrimaryLoss, "INV", "CRI")
	require.NotNil(t, inv)
	require.Len(t, inv.Outputs, 1)
	assert.Equal(t, -5.0, inv.Outputs[0].EnergyPJ)
}

func TestBuild_MismatchSurfacesMatchError(t *testing.T) {
	indicator := sheet(
		[]string{"PETRÓLEO"},
		balance.Row{Label: "PRODUCCIÓN", Cells: []float64{1}},
	)
	bal := sheet(
		[]string{"PETRÓLEO"},
		balance.Row{Label: "IMPORTACIÓN", Cells: []float64{5}},
	)

	_, err := Build(indicator, bal)
	require.Error(t, err)

	var matchErr *MatchError
	assert.ErrorAs(t, err, &matchErr)
}

func TestBuild_EmptyDatasets(t *testing.T) {
	techs, err := Build(balance.Dataset{}, balance.Dataset{})
	require.NoError(t, err)
	assert.Empty(t, techs)
}
