package res

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lossFixture() []*Technology {
	return []*Technology{
		{
			Category: CategoryPrimaryLoss, Code: "INV", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "CRI", EnergyPJ: 2.0}},
		},
		{
			Category: CategoryPrimaryLoss, Code: "WAS", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "CRI", EnergyPJ: 3.0}},
		},
		{
			Category: CategorySecondaryLoss, Code: "OWN", Region: "CRI",
			Inputs: []*Fuel{{Tier: TierSecondary, Code: "DSL", Region: "CRI", EnergyPJ: -1.0}},
		},
		{
			Category: CategorySecondaryLoss, Code: "LOS", Region: "CRI",
			Inputs: []*Fuel{{Tier: TierSecondary, Code: "DSL", Region: "CRI", EnergyPJ: -0.5}},
		},
	}
}

func TestReduce_CollapsesLossPairs(t *testing.T) {
	techs := lossFixture()
	before := TotalEnergyPJ(techs)

	reduced, err := Reduce(techs)
	require.NoError(t, err)
	require.Len(t, reduced, 2)

	inv := findTech(t, reduced, CategoryPrimaryLoss, "INV", "CRI")
	require.NotNil(t, inv)
	require.Len(t, inv.Outputs, 1)
	assert.Equal(t, 5.0, inv.Outputs[0].EnergyPJ)

	own := findTech(t, reduced, CategorySecondaryLoss, "OWN", "CRI")
	require.NotNil(t, own)
	require.Len(t, own.Inputs, 1)
	assert.Equal(t, -1.5, own.Inputs[0].EnergyPJ)

	assert.Nil(t, findTech(t, reduced, CategoryPrimaryLoss, "WAS", "CRI"))
	assert.Nil(t, findTech(t, reduced, CategorySecondaryLoss, "LOS", "CRI"))

	// Consolidation, not deletion: total signed energy is conserved.
	assert.InDelta(t, before, TotalEnergyPJ(reduced), 1e-9)
}

func TestReduce_PerRegion(t *testing.T) {
	techs := []*Technology{
		{
			Category: CategoryPrimaryLoss, Code: "INV", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "CRI", EnergyPJ: 1}},
		},
		{
			Category: CategoryPrimaryLoss, Code: "WAS", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "CRI", EnergyPJ: 2}},
		},
		{
			Category: CategoryPrimaryLoss, Code: "INV", Region: "ARG",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "ARG", EnergyPJ: 10}},
		},
		{
			Category: CategoryPrimaryLoss, Code: "WAS", Region: "ARG",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "ARG", EnergyPJ: 20}},
		},
	}

	reduced, err := Reduce(techs)
	require.NoError(t, err)
	require.Len(t, reduced, 2)

	cri := findTech(t, reduced, CategoryPrimaryLoss, "INV", "CRI")
	require.NotNil(t, cri)
	assert.Equal(t, 3.0, cri.Outputs[0].EnergyPJ)

	arg := findTech(t, reduced, CategoryPrimaryLoss, "INV", "ARG")
	require.NotNil(t, arg)
	assert.Equal(t, 30.0, arg.Outputs[0].EnergyPJ)
}

func TestReduce_UnmatchedDonorFuelCarriedOver(t *testing.T) {
	techs := []*Technology{
		{
			Category: CategoryPrimaryLoss, Code: "INV", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "CRI", EnergyPJ: 2}},
		},
		{
			Category: CategoryPrimaryLoss, Code: "WAS", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "NGS", Region: "CRI", EnergyPJ: 4}},
		},
	}
	before := TotalEnergyPJ(techs)

	reduced, err := Reduce(techs)
	require.NoError(t, err)
	require.Len(t, reduced, 1)

	inv := reduced[0]
	require.Len(t, inv.Outputs, 2)
	assert.InDelta(t, before, TotalEnergyPJ(reduced), 1e-9)
}

func TestReduce_Idempotent(t *testing.T) {
	techs := lossFixture()

	reduced, err := Reduce(techs)
	require.NoError(t, err)

	again, err := Reduce(reduced)
	require.NoError(t, err)
	assert.Equal(t, reduced, again)
}

func TestReduce_DonorWithoutAbsorberFails(t *testing.T) {
	techs := []*Technology{
		{
			Category: CategoryPrimaryLoss, Code: "WAS", Region: "CRI",
			Outputs: []*Fuel{{Tier: TierPrimary, Code: "CRU", Region: "CRI", EnergyPJ: 3}},
		},
	}

	_, err := Reduce(techs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRI")
	assert.Contains(t, err.Error(), "INV")
}

func TestReduce_NoLossTechnologiesIsNoop(t *testing.T) {
	techs := []*Technology{
		{Category: CategorySupply, Code: "PRO", Region: "CRI"},
	}

	reduced, err := Reduce(techs)
	require.NoError(t, err)
	assert.Equal(t, techs, reduced)
}
