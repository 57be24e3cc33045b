package res

import (
	"res-builder/core/balance"
)

// resolveColumns maps each commodity column of a table to its FuelID.
// Unresolved columns (units, subtotals) get a nil entry and are skipped by
// the traversals.
func resolveColumns(columns []string) []*FuelID {
	ids := make([]*FuelID, len(columns))
	for i, col := range columns {
		if id, ok := ResolveFuel(col); ok {
			ids[i] = &id
		}
	}
	return ids
}

// includeFuel says whether a commodity tier participates in a technology's
// flows at all. The filter is shared by the structure and value builders so
// the skeleton and the valued list always carry the same fuel slots.
func includeFuel(cat Category, techCode string, tier Tier) bool {
	switch cat {
	case CategorySupply, CategoryPrimaryLoss:
		// Extraction produces raw resources only; derived commodities
		// under PRO are refinery subtotal artifacts.
		if techCode == "PRO" {
			return tier == TierPrimary
		}
		return true
	case CategoryPrimaryConversion, CategorySecondaryConversion:
		return tier != TierTertiary
	default:
		return true
	}
}

// attach places one fuel observation on the technology according to the
// category partition rules. Secondary-conversion technologies record
// secondary fuels on both sides, as two independent instances: the source
// table reports the initial amount and the derived amount in one column.
func attach(t *Technology, id FuelID, region string, energy float64) {
	fuel := &Fuel{Tier: id.Tier, Code: id.Code, Region: region, EnergyPJ: energy}

	switch t.Category {
	case CategorySupply, CategoryPrimaryLoss:
		t.Outputs = append(t.Outputs, fuel)

	case CategoryPrimaryConversion:
		switch id.Tier {
		case TierPrimary:
			t.Inputs = append(t.Inputs, fuel)
		case TierSecondary:
			t.Outputs = append(t.Outputs, fuel)
		}

	case CategorySecondaryConversion:
		t.Inputs = append(t.Inputs, fuel)
		if id.Tier == TierSecondary {
			out := &Fuel{Tier: id.Tier, Code: id.Code, Region: region, EnergyPJ: energy}
			t.Outputs = append(t.Outputs, out)
		}

	case CategoryTertiaryConversion:
		if id.Tier == TierTertiary {
			t.Outputs = append(t.Outputs, fuel)
		} else {
			t.Inputs = append(t.Inputs, fuel)
		}

	case CategoryDemand, CategorySecondaryLoss:
		t.Inputs = append(t.Inputs, fuel)
	}
}

// sheetRegion resolves the region of a sheet, skipping sheets whose key does
// not follow the "<prefix> - <country>" convention or whose country is not
// in the lookup table.
func sheetRegion(sheetKey string) (string, bool) {
	country, ok := balance.SheetCountry(sheetKey)
	if !ok {
		return "", false
	}
	return ResolveRegion(country)
}
