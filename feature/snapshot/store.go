package snapshot

import (
	"context"

	"res-builder/core/res"
	"res-builder/feature/snapshot/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// listLimit caps the run listing; runs are yearly artifacts, so the cap is
// generous.
const listLimit = 50

// Store persists built energy systems.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new snapshot store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the snapshot tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.Run{}, &models.TechnologyRow{}, &models.FuelRow{})
}

// Save persists the built technology list as a new run inside a single
// transaction and returns the stored record.
func (s *Store) Save(ctx context.Context, techs []*res.Technology) (*models.Run, error) {
	run := &models.Run{
		ID:            uuid.NewString(),
		Regions:       countRegions(techs),
		Technologies:  len(techs),
		TotalEnergyPJ: res.TotalEnergyPJ(techs),
		Rows:          rowList(techs),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(run).Error
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first, without their rows.
func (s *Store) ListRuns(ctx context.Context) ([]models.Run, error) {
	var runs []models.Run
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(listLimit).
		Find(&runs).Error
	return runs, err
}

// LoadRun returns one run with its technology and fuel rows.
// Returns gorm.ErrRecordNotFound when the run does not exist.
func (s *Store) LoadRun(ctx context.Context, id string) (*models.Run, error) {
	var run models.Run
	err := s.db.WithContext(ctx).
		Preload("Rows.Fuels").
		Preload("Rows").
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func countRegions(techs []*res.Technology) int {
	seen := make(map[string]struct{})
	for _, t := range techs {
		seen[t.Region] = struct{}{}
	}
	return len(seen)
}

func rowList(techs []*res.Technology) []models.TechnologyRow {
	rows := make([]models.TechnologyRow, 0, len(techs))
	for _, t := range techs {
		row := models.TechnologyRow{
			Category: string(t.Category),
			Code:     t.Code,
			Region:   t.Region,
		}
		for _, f := range t.Inputs {
			row.Fuels = append(row.Fuels, fuelRow(f, models.DirectionInput))
		}
		for _, f := range t.Outputs {
			row.Fuels = append(row.Fuels, fuelRow(f, models.DirectionOutput))
		}
		rows = append(rows, row)
	}
	return rows
}

func fuelRow(f *res.Fuel, direction string) models.FuelRow {
	return models.FuelRow{
		Direction: direction,
		Tier:      string(f.Tier),
		Code:      f.Code,
		Region:    f.Region,
		EnergyPJ:  f.EnergyPJ,
	}
}
