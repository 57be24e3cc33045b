package models

import "time"

// Run is one persisted build of the energy system.
type Run struct {
	// ID is a UUID assigned at save time.
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Regions       int       `json:"regions"`
	Technologies  int       `json:"technologies"`
	TotalEnergyPJ float64   `json:"total_energy_pj"`

	Rows []TechnologyRow `gorm:"foreignKey:RunID" json:"rows,omitempty"`
}

// TechnologyRow is one technology of a persisted run.
type TechnologyRow struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RunID    string `gorm:"size:36;index" json:"-"`
	Category string `gorm:"size:8" json:"category"`
	Code     string `gorm:"size:8" json:"code"`
	Region   string `gorm:"size:3" json:"region"`

	Fuels []FuelRow `gorm:"foreignKey:TechnologyRowID" json:"fuels,omitempty"`
}

// Fuel flow directions as stored.
const (
	DirectionInput  = "input"
	DirectionOutput = "output"
)

// FuelRow is one fuel flow of a persisted technology.
type FuelRow struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	TechnologyRowID uint    `gorm:"index" json:"-"`
	Direction       string  `gorm:"size:6" json:"direction"`
	Tier            string  `gorm:"size:8" json:"tier"`
	Code            string  `gorm:"size:8" json:"code"`
	Region          string  `gorm:"size:3" json:"region"`
	EnergyPJ        float64 `json:"energy_pj"`
}
