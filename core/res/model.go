package res

import "fmt"

// Tier classifies a commodity by how processed it is.
type Tier string

const (
	// TierPrimary covers raw resources (crude oil, natural gas, ...).
	TierPrimary Tier = "FUE001"
	// TierSecondary covers refined or processed commodities.
	TierSecondary Tier = "FUE002"
	// TierTertiary covers electricity.
	TierTertiary Tier = "FUE003"
)

// Category classifies a technology and determines which fuel lists it owns.
type Category string

const (
	// CategorySupply covers production, import and export activities.
	CategorySupply Category = "SUP"
	// CategoryPrimaryConversion covers refineries, gas processing plants,
	// coal washers and distilleries.
	CategoryPrimaryConversion Category = "UPS001"
	// CategorySecondaryConversion covers coking plants and blast furnaces,
	// which both consume and derive secondary fuels.
	CategorySecondaryConversion Category = "UPS002"
	// CategoryTertiaryConversion covers power plants and self-producers.
	CategoryTertiaryConversion Category = "UPS003"
	// CategoryDemand covers the final consumption sectors.
	CategoryDemand Category = "DEM"
	// CategoryPrimaryLoss covers inventory variation and unused waste.
	CategoryPrimaryLoss Category = "LOS001"
	// CategorySecondaryLoss covers own consumption and
	// transformation/transport losses.
	CategorySecondaryLoss Category = "LOS002"
)

// Class is the structural family of a technology: it fixes which fuel lists
// are populated, independently of the finer-grained category.
type Class string

const (
	// ClassPrimary technologies hold output fuels only.
	ClassPrimary Class = "primary"
	// ClassConversion technologies hold input and output fuels.
	ClassConversion Class = "conversion"
	// ClassDemand technologies hold input fuels only.
	ClassDemand Class = "demand"
)

// flowShape says which fuel lists a category populates.
type flowShape struct {
	hasInputs  bool
	hasOutputs bool
}

// categoryShapes is the dispatch table replacing per-class subtypes: the
// category alone decides the shape of a technology.
var categoryShapes = map[Category]flowShape{
	CategorySupply:              {hasOutputs: true},
	CategoryPrimaryLoss:         {hasOutputs: true},
	CategoryPrimaryConversion:   {hasInputs: true, hasOutputs: true},
	CategorySecondaryConversion: {hasInputs: true, hasOutputs: true},
	CategoryTertiaryConversion:  {hasInputs: true, hasOutputs: true},
	CategoryDemand:              {hasInputs: true},
	CategorySecondaryLoss:       {hasInputs: true},
}

// Class returns the structural family of the category.
func (c Category) Class() Class {
	switch c {
	case CategorySupply, CategoryPrimaryLoss:
		return ClassPrimary
	case CategoryPrimaryConversion, CategorySecondaryConversion, CategoryTertiaryConversion:
		return ClassConversion
	default:
		return ClassDemand
	}
}

// shape returns the fuel-list shape for the category.
func (c Category) shape() flowShape {
	return categoryShapes[c]
}

// Fuel is one flow of a commodity for one technology.
type Fuel struct {
	// Tier is the commodity tier, set by which lookup table matched.
	Tier Tier
	// Code is the 3-6 letter commodity code.
	Code string
	// Region is the 3-letter country code.
	Region string
	// EnergyPJ is the signed energy magnitude in petajoules.
	EnergyPJ float64
}

// FuelKey is the identity of a fuel flow. Energy is deliberately excluded:
// two flows are the same flow regardless of magnitude.
type FuelKey struct {
	Tier   Tier
	Code   string
	Region string
}

// Key returns the identity key of the fuel.
func (f *Fuel) Key() FuelKey {
	return FuelKey{Tier: f.Tier, Code: f.Code, Region: f.Region}
}

func (k FuelKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Tier, k.Code, k.Region)
}

// Technology is one energy conversion, supply or demand activity in a region.
type Technology struct {
	// Category decides which of Inputs/Outputs are populated.
	Category Category
	// Code is the 3-letter technology code.
	Code string
	// Region is the 3-letter country code.
	Region string
	// Inputs are the consumed fuel flows, ordered as discovered.
	Inputs []*Fuel
	// Outputs are the produced fuel flows, ordered as discovered.
	Outputs []*Fuel
}

// TechKey is the identity of a technology. Two technologies are the same
// entity iff all four fields match; fuel lists and energies never
// participate in identity.
type TechKey struct {
	Class    Class
	Category Category
	Code     string
	Region   string
}

// Key returns the identity key of the technology.
func (t *Technology) Key() TechKey {
	return TechKey{
		Class:    t.Category.Class(),
		Category: t.Category,
		Code:     t.Code,
		Region:   t.Region,
	}
}

func (k TechKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Category, k.Code, k.Region)
}
