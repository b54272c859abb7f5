package model

import "math"

// BatteryParams defines the physical parameters of the household battery.
// Units:
// - CapacityKWh: kWh
// - MaxChargeKW / MaxDischargeKW: kW
// - Efficiency: (0, 1], applied on charge only
//
// The power limits are advisory. Battery.Charge and Battery.Discharge do not
// enforce them; the dispatch policy clamps requests before calling in.
type BatteryParams struct {
	CapacityKWh    float64
	MaxChargeKW    float64
	MaxDischargeKW float64
	Efficiency     float64
}

// BatteryState captures mutable state.
type BatteryState struct {
	// SOCKWh is the stored energy, always within [0, CapacityKWh].
	SOCKWh float64
}

// Battery is a convenience wrapper bundling params + state.
// A Battery belongs to exactly one simulation run; never share one across runs.
type Battery struct {
	Params BatteryParams
	State  BatteryState
}

func (p BatteryParams) Validate() error {
	if isBad(p.CapacityKWh) || p.CapacityKWh <= 0 {
		return inputErrorf("capacity_kwh", "must be > 0, got %v", p.CapacityKWh)
	}
	if isBad(p.MaxChargeKW) || p.MaxChargeKW < 0 {
		return inputErrorf("max_charge_kw", "must be >= 0, got %v", p.MaxChargeKW)
	}
	if isBad(p.MaxDischargeKW) || p.MaxDischargeKW < 0 {
		return inputErrorf("max_discharge_kw", "must be >= 0, got %v", p.MaxDischargeKW)
	}
	if isBad(p.Efficiency) || p.Efficiency <= 0 || p.Efficiency > 1 {
		return inputErrorf("efficiency", "must be in (0, 1], got %v", p.Efficiency)
	}
	return nil
}

// NewBattery builds a battery holding initialSOCKWh.
func NewBattery(params BatteryParams, initialSOCKWh float64) (*Battery, error) {
	b := &Battery{
		Params: params,
		State:  BatteryState{SOCKWh: initialSOCKWh},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFullBattery builds a battery that starts at capacity.
func NewFullBattery(params BatteryParams) (*Battery, error) {
	return NewBattery(params, params.CapacityKWh)
}

func (b *Battery) Validate() error {
	if err := b.Params.Validate(); err != nil {
		return err
	}
	soc := b.State.SOCKWh
	if isBad(soc) || soc < 0 || soc > b.Params.CapacityKWh {
		return inputErrorf("initial_soc_kwh", "must be within [0, %v], got %v", b.Params.CapacityKWh, soc)
	}
	return nil
}

// Charge stores powerKW for durationH, losing (1 - Efficiency) on the way in,
// and returns the energy drawn from the surplus in kWh.
//
// When the stored increment would overshoot capacity, SOC saturates at
// capacity and the return value is the pre-efficiency draw needed for the
// increment that fit. A full battery therefore returns 0.
func (b *Battery) Charge(powerKW, durationH float64) float64 {
	drawn := powerKW * durationH
	stored := drawn * b.Params.Efficiency
	if b.State.SOCKWh+stored > b.Params.CapacityKWh {
		stored = b.Params.CapacityKWh - b.State.SOCKWh
		b.State.SOCKWh = b.Params.CapacityKWh
		return stored / b.Params.Efficiency
	}
	b.State.SOCKWh += stored
	return drawn
}

// Discharge releases up to powerKW for durationH and returns the energy
// supplied in kWh, clamped to the current SOC. No loss is modelled on the way out.
func (b *Battery) Discharge(powerKW, durationH float64) float64 {
	supplied := powerKW * durationH
	if supplied > b.State.SOCKWh {
		supplied = b.State.SOCKWh
	}
	b.State.SOCKWh -= supplied
	return supplied
}

func (b *Battery) SOC() float64 {
	return b.State.SOCKWh
}

// SOCFraction is SOC relative to capacity in [0, 1].
func (b *Battery) SOCFraction() float64 {
	return b.State.SOCKWh / b.Params.CapacityKWh
}

func isBad(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
