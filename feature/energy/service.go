package energy

import (
	"context"
	"sync"

	"res-builder/core/balance"
	"res-builder/core/res"
	"res-builder/feature/energy/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service owns the built energy system. The system is built lazily on first
// use from the configured workbook source and kept for the lifetime of the
// process; inputs are yearly statistics, so there is nothing to refresh.
type Service struct {
	source balance.Source
	logger *zap.Logger

	mu    sync.RWMutex
	techs []*res.Technology
	sf    singleflight.Group
}

// NewService creates a new energy service.
func NewService(source balance.Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// System returns the built technology list, building it on first call.
// Uses singleflight so concurrent first requests trigger a single build.
func (s *Service) System(ctx context.Context) ([]*res.Technology, error) {
	s.mu.RLock()
	techs := s.techs
	s.mu.RUnlock()
	if techs != nil {
		return techs, nil
	}

	result, err, _ := s.sf.Do("build", func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		s.mu.RLock()
		techs := s.techs
		s.mu.RUnlock()
		if techs != nil {
			return techs, nil
		}

		indicator, bal, err := s.source.Datasets(ctx)
		if err != nil {
			return nil, err
		}

		built, err := res.Build(indicator, bal)
		if err != nil {
			return nil, err
		}

		s.logger.Info("Energy system built",
			zap.Int("technologies", len(built)),
			zap.Float64("total_pj", res.TotalEnergyPJ(built)),
		)

		s.mu.Lock()
		s.techs = built
		s.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*res.Technology), nil
}

// Regions returns the region codes present in the built system, sorted.
func (s *Service) Regions(ctx context.Context) ([]string, error) {
	techs, err := s.System(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var regions []string
	for _, t := range techs {
		if _, ok := seen[t.Region]; ok {
			continue
		}
		seen[t.Region] = struct{}{}
		regions = append(regions, t.Region)
	}
	return regions, nil
}

// Technologies returns the JSON views of every built technology.
func (s *Service) Technologies(ctx context.Context) ([]models.TechnologyView, error) {
	techs, err := s.System(ctx)
	if err != nil {
		return nil, err
	}
	return viewList(techs), nil
}

// RegionTechnologies returns the views of the technologies of one region.
// The second return reports whether the region exists in the built system.
func (s *Service) RegionTechnologies(ctx context.Context, region string) ([]models.TechnologyView, bool, error) {
	techs, err := s.System(ctx)
	if err != nil {
		return nil, false, err
	}

	var filtered []*res.Technology
	found := false
	for _, t := range techs {
		if t.Region == region {
			found = true
			filtered = append(filtered, t)
		}
	}
	return viewList(filtered), found, nil
}

// Summary returns the whole-system overview.
func (s *Service) Summary(ctx context.Context) (*models.Summary, error) {
	techs, err := s.System(ctx)
	if err != nil {
		return nil, err
	}

	regions, err := s.Regions(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Summary{
		Regions:       len(regions),
		Technologies:  len(techs),
		TotalEnergyPJ: res.TotalEnergyPJ(techs),
	}, nil
}

func viewList(techs []*res.Technology) []models.TechnologyView {
	views := make([]models.TechnologyView, 0, len(techs))
	for _, t := range techs {
		views = append(views, models.TechnologyView{
			Category: string(t.Category),
			Class:    string(t.Key().Class),
			Code:     t.Code,
			Region:   t.Region,
			Inputs:   fuelViews(t.Inputs),
			Outputs:  fuelViews(t.Outputs),
		})
	}
	return views
}

func fuelViews(fuels []*res.Fuel) []models.FuelView {
	if len(fuels) == 0 {
		return nil
	}
	views := make([]models.FuelView, 0, len(fuels))
	for _, f := range fuels {
		views = append(views, models.FuelView{
			Tier:     string(f.Tier),
			Code:     f.Code,
			Region:   f.Region,
			EnergyPJ: f.EnergyPJ,
		})
	}
	return views
}
