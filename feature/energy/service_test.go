package energy_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"res-builder/core/balance"
	"res-builder/feature/energy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSource serves fixed datasets and counts how often it is read.
type stubSource struct {
	indicator balance.Dataset
	balance   balance.Dataset
	err       error
	calls     int32
}

func (s *stubSource) Datasets(context.Context) (balance.Dataset, balance.Dataset, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.indicator, s.balance, nil
}

func fixtureSource() *stubSource {
	columns := []string{"PETRÓLEO", "DIÉSEL OIL"}
	indicator := balance.Dataset{
		"01 - Costa Rica": {
			Columns: columns,
			Rows: []balance.Row{
				{Label: "PRODUCCIÓN", Cells: []float64{1, 0}},
				{Label: "REFINERÍAS", Cells: []float64{1, 1}},
				{Label: "TRANSPORTE", Cells: []float64{0, 1}},
			},
		},
	}
	bal := balance.Dataset{
		"01 - Costa Rica": {
			Columns: columns,
			Rows: []balance.Row{
				{Label: "PRODUCCIÓN", Cells: []float64{30, 0}},
				{Label: "REFINERÍAS", Cells: []float64{-25, 24}},
				{Label: "TRANSPORTE", Cells: []float64{0, 14}},
			},
		},
	}
	return &stubSource{indicator: indicator, balance: bal}
}

func TestService_SystemBuildsOnce(t *testing.T) {
	src := fixtureSource()
	svc := energy.NewService(src, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			techs, err := svc.System(context.Background())
			assert.NoError(t, err)
			assert.Len(t, techs, 3)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&src.calls))
}

func TestService_SystemError(t *testing.T) {
	src := &stubSource{err: errors.New("bucket unreachable")}
	svc := energy.NewService(src, zap.NewNop())

	_, err := svc.System(context.Background())
	require.Error(t, err)

	// Failed builds are not cached; the next call retries the source.
	_, err = svc.System(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&src.calls))
}

func TestService_Regions(t *testing.T) {
	svc := energy.NewService(fixtureSource(), zap.NewNop())

	regions, err := svc.Regions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CRI"}, regions)
}

func TestService_RegionTechnologies(t *testing.T) {
	svc := energy.NewService(fixtureSource(), zap.NewNop())

	techs, found, err := svc.RegionTechnologies(context.Background(), "CRI")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, techs, 3)

	_, found, err = svc.RegionTechnologies(context.Background(), "ATL")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_Summary(t *testing.T) {
	svc := energy.NewService(fixtureSource(), zap.NewNop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Regions)
	assert.Equal(t, 3, summary.Technologies)
	// 30 - 25 + 24 - 14 PJ of signed flow across the system.
	assert.InDelta(t, 15.0, summary.TotalEnergyPJ, 1e-9)
}
