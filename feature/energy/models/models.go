package models

// FuelView is the JSON projection of a single fuel flow.
type FuelView struct {
	Tier     string  `json:"tier"`
	Code     string  `json:"code"`
	Region   string  `json:"region"`
	EnergyPJ float64 `json:"energy_pj"`
}

// TechnologyView is the JSON projection of a built technology.
type TechnologyView struct {
	Category string     `json:"category"`
	Class    string     `json:"class"`
	Code     string     `json:"code"`
	Region   string     `json:"region"`
	Inputs   []FuelView `json:"inputs,omitempty"`
	Outputs  []FuelView `json:"outputs,omitempty"`
}

// Summary is the JSON projection of a whole-system overview.
type Summary struct {
	Regions       int     `json:"regions"`
	Technologies  int     `json:"technologies"`
	TotalEnergyPJ float64 `json:"total_energy_pj"`
}
