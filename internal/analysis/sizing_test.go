package analysis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household-energy-sim/internal/dispatch"
	"household-energy-sim/internal/model"
)

func daySeries() ([]model.GenerationSample, []model.ConsumptionSample) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	solar := []float64{0, 0, 6, 6, 0, 0}
	load := []float64{2, 2, 1, 1, 3, 3}
	gen := make([]model.GenerationSample, len(solar))
	cons := make([]model.ConsumptionSample, len(load))
	for i := range solar {
		ts := t0.Add(time.Duration(i) * time.Hour)
		gen[i] = model.GenerationSample{Time: ts, Readings: model.Readings{Solar: solar[i]}}
		cons[i] = model.ConsumptionSample{Time: ts, PowerKW: load[i]}
	}
	return gen, cons
}

func TestSweepCapacities_RanksByDeficit(t *testing.T) {
	sim, err := dispatch.New(dispatch.DefaultIntervalHours, nil)
	require.NoError(t, err)
	gen, cons := daySeries()
	base := model.BatteryParams{MaxChargeKW: 5, MaxDischargeKW: 5, Efficiency: 1}
	empty := 0.0

	out, err := SweepCapacities(sim, gen, cons, base, []float64{2, 10, 6}, &empty)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Starting empty: 4 kWh unmet before sunrise regardless of size.
	// Midday surplus is 10 kWh; evening needs 6 kWh.
	// 2 kWh: evening deficit 4 -> total 8. 6 and 10 kWh: evening covered -> total 4.
	assert.Equal(t, 6.0, out[0].CapacityKWh)
	assert.Equal(t, 10.0, out[1].CapacityKWh)
	assert.Equal(t, 2.0, out[2].CapacityKWh)
	assert.InDelta(t, 4, out[0].ResidualDeficitKWh, 1e-9)
	assert.InDelta(t, 8, out[2].ResidualDeficitKWh, 1e-9)
	assert.InDelta(t, 0, out[0].FinalSOC, 1e-9)
	assert.InDelta(t, 4, out[1].FinalSOC, 1e-9)
}

func TestSweepCapacities_ScenariosDoNotShareCharge(t *testing.T) {
	sim, err := dispatch.New(dispatch.DefaultIntervalHours, nil)
	require.NoError(t, err)
	gen, cons := daySeries()
	base := model.BatteryParams{MaxChargeKW: 5, MaxDischargeKW: 5, Efficiency: 1}

	out, err := SweepCapacities(sim, gen, cons, base, []float64{10, 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, out[0].Summary, out[1].Summary)
	assert.Equal(t, out[0].FinalSOC, out[1].FinalSOC)
}

func TestSweepCapacities_Rejects(t *testing.T) {
	sim, err := dispatch.New(dispatch.DefaultIntervalHours, nil)
	require.NoError(t, err)
	gen, cons := daySeries()
	base := model.BatteryParams{MaxChargeKW: 5, MaxDischargeKW: 5, Efficiency: 1}

	_, err = SweepCapacities(sim, gen, cons, base, nil, nil)
	var inErr *model.InputError
	assert.True(t, errors.As(err, &inErr))

	_, err = SweepCapacities(sim, gen, cons, base, []float64{0}, nil)
	assert.True(t, errors.As(err, &inErr))

	bad := 1.5
	_, err = SweepCapacities(sim, gen, cons, base, []float64{5}, &bad)
	assert.True(t, errors.As(err, &inErr))
}
