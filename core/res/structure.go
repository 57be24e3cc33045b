package res

import (
	"sort"

	"res-builder/core/balance"
)

// slot is one structurally possible (technology, fuel, region) combination
// observed in the indicator dataset.
type slot struct {
	tech   TechID
	fuel   FuelID
	region string
}

// BuildSkeleton scans the indicator dataset and instantiates every
// structurally possible technology with its complete, zero-valued set of
// fuel slots. Cell values are read only for truthiness: any non-zero cell
// marks the combination as possible.
//
// The result is deterministic: technologies are ordered by region, category
// and code, fuel slots by tier and code.
func BuildSkeleton(ds balance.Dataset) []*Technology {
	slots := collectSlots(ds)

	grouped := make(map[TechKey][]slot)
	for s := range slots {
		key := TechKey{
			Class:    s.tech.Category.Class(),
			Category: s.tech.Category,
			Code:     s.tech.Code,
			Region:   s.region,
		}
		grouped[key] = append(grouped[key], s)
	}

	keys := make([]TechKey, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Code < b.Code
	})

	techs := make([]*Technology, 0, len(keys))
	for _, key := range keys {
		group := grouped[key]
		sort.Slice(group, func(i, j int) bool {
			a, b := group[i].fuel, group[j].fuel
			if a.Tier != b.Tier {
				return a.Tier < b.Tier
			}
			return a.Code < b.Code
		})

		t := &Technology{Category: key.Category, Code: key.Code, Region: key.Region}
		for _, s := range group {
			attach(t, s.fuel, s.region, 0)
		}
		techs = append(techs, t)
	}
	return techs
}

// collectSlots resolves and deduplicates every attributable (row, column)
// pair with a non-zero indicator cell.
func collectSlots(ds balance.Dataset) map[slot]struct{} {
	slots := make(map[slot]struct{})
	for sheetKey, table := range ds {
		region, ok := sheetRegion(sheetKey)
		if !ok {
			continue
		}

		cols := resolveColumns(table.Columns)
		for r, row := range table.Rows {
			tid, ok := ResolveTechnology(row.Label)
			if !ok {
				continue
			}
			for c, fid := range cols {
				if fid == nil {
					continue
				}
				if !includeFuel(tid.Category, tid.Code, fid.Tier) {
					continue
				}
				if table.Cell(r, c) == 0 {
					continue
				}
				slots[slot{tech: tid, fuel: *fid, region: region}] = struct{}{}
			}
		}
	}
	return slots
}
