package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refParams = BatteryParams{
	CapacityKWh:    10,
	MaxChargeKW:    5,
	MaxDischargeKW: 5,
	Efficiency:     0.95,
}

func TestBattery_NewFullStartsAtCapacity(t *testing.T) {
	b, err := NewFullBattery(refParams)
	require.NoError(t, err)
	assert.InDelta(t, 10, b.SOC(), 1e-9)
	assert.InDelta(t, 1, b.SOCFraction(), 1e-9)
}

func TestBattery_ChargeWhenFullDrawsNothing(t *testing.T) {
	b, err := NewFullBattery(refParams)
	require.NoError(t, err)

	drawn := b.Charge(5, 1)
	assert.Equal(t, 0.0, drawn)
	assert.Equal(t, 10.0, b.SOC())
}

func TestBattery_ChargeAppliesEfficiency(t *testing.T) {
	b, err := NewBattery(refParams, 0)
	require.NoError(t, err)

	drawn := b.Charge(2, 1)
	assert.InDelta(t, 2, drawn, 1e-9)
	assert.InDelta(t, 1.9, b.SOC(), 1e-9)
}

func TestBattery_ChargeSaturatesAtCapacity(t *testing.T) {
	b, err := NewBattery(refParams, 8)
	require.NoError(t, err)

	// 5 kWh * 0.95 would store 4.75, only 2 fits.
	drawn := b.Charge(5, 1)
	assert.InDelta(t, 2/0.95, drawn, 1e-9)
	assert.Equal(t, 10.0, b.SOC())
}

func TestBattery_ZeroChargeLeavesSOC(t *testing.T) {
	b, err := NewBattery(refParams, 4)
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.Charge(0, 1))
	assert.Equal(t, 0.0, b.Charge(5, 0))
	assert.Equal(t, 4.0, b.SOC())
}

func TestBattery_DischargeClampsToSOC(t *testing.T) {
	b, err := NewBattery(refParams, 3)
	require.NoError(t, err)

	supplied := b.Discharge(5, 1)
	assert.Equal(t, 3.0, supplied)
	assert.Equal(t, 0.0, b.SOC())
}

func TestBattery_DischargeNoLoss(t *testing.T) {
	b, err := NewBattery(refParams, 6)
	require.NoError(t, err)

	supplied := b.Discharge(2, 1.5)
	assert.InDelta(t, 3, supplied, 1e-9)
	assert.InDelta(t, 3, b.SOC(), 1e-9)
}

func TestBattery_RoundTripLosesEfficiency(t *testing.T) {
	b, err := NewBattery(refParams, 0)
	require.NoError(t, err)

	const e = 4.0
	b.Charge(e, 1)
	supplied := b.Discharge(e, 1)
	assert.InDelta(t, e*0.95, supplied, 1e-9)
	assert.Less(t, supplied, e)
	assert.InDelta(t, 0, b.SOC(), 1e-9)
}

func TestBattery_SOCStaysInBounds(t *testing.T) {
	b, err := NewBattery(refParams, 5)
	require.NoError(t, err)

	requests := []struct {
		charge bool
		kw, h  float64
	}{
		{true, 5, 1}, {true, 5, 3}, {false, 5, 1}, {false, 5, 4},
		{true, 0.3, 0.5}, {false, 100, 1}, {true, 100, 1},
	}
	for _, r := range requests {
		if r.charge {
			b.Charge(r.kw, r.h)
		} else {
			b.Discharge(r.kw, r.h)
		}
		assert.GreaterOrEqual(t, b.SOC(), 0.0)
		assert.LessOrEqual(t, b.SOC(), refParams.CapacityKWh)
	}
}

func TestBattery_Validate(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(p *BatteryParams)
		soc   float64
		field string
	}{
		{"zero capacity", func(p *BatteryParams) { p.CapacityKWh = 0 }, 0, "capacity_kwh"},
		{"negative charge", func(p *BatteryParams) { p.MaxChargeKW = -1 }, 0, "max_charge_kw"},
		{"negative discharge", func(p *BatteryParams) { p.MaxDischargeKW = -1 }, 0, "max_discharge_kw"},
		{"zero efficiency", func(p *BatteryParams) { p.Efficiency = 0 }, 0, "efficiency"},
		{"efficiency above one", func(p *BatteryParams) { p.Efficiency = 1.1 }, 0, "efficiency"},
		{"soc above capacity", func(p *BatteryParams) {}, 11, "initial_soc_kwh"},
		{"negative soc", func(p *BatteryParams) {}, -1, "initial_soc_kwh"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := refParams
			tc.mut(&p)
			_, err := NewBattery(p, tc.soc)
			var inErr *InputError
			require.True(t, errors.As(err, &inErr), "want InputError, got %v", err)
			assert.Equal(t, tc.field, inErr.Field)
		})
	}
}
