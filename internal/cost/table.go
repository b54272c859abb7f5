package cost

import (
	"fmt"
	"math"

	"household-energy-sim/internal/model"
)

// UnitCost is the capital cost and monthly yield of one installed unit.
type UnitCost struct {
	CostPerUnit      float64 `json:"cost_per_unit" yaml:"cost_per_unit"`
	EnergyPerUnitKWh float64 `json:"energy_per_unit_kwh" yaml:"energy_per_unit_kwh"`
}

// UnitCostTable maps each source kind to its unit economics.
// The table is copied in by value so an Estimator never sees later edits.
type UnitCostTable struct {
	Solar UnitCost `json:"solar" yaml:"solar"`
	Wind  UnitCost `json:"wind" yaml:"wind"`
	Tidal UnitCost `json:"tidal" yaml:"tidal"`
}

// DefaultUnitCosts are the reference economics: per panel, turbine and plant.
func DefaultUnitCosts() UnitCostTable {
	return UnitCostTable{
		Solar: UnitCost{CostPerUnit: 200, EnergyPerUnitKWh: 30},
		Wind:  UnitCost{CostPerUnit: 1000, EnergyPerUnitKWh: 120},
		Tidal: UnitCost{CostPerUnit: 5000, EnergyPerUnitKWh: 300},
	}
}

func (t UnitCostTable) Get(k model.SourceKind) UnitCost {
	switch k {
	case model.Solar:
		return t.Solar
	case model.Wind:
		return t.Wind
	case model.Tidal:
		return t.Tidal
	}
	return UnitCost{}
}

func (t UnitCostTable) Validate() error {
	for _, k := range model.SourceKinds {
		u := t.Get(k)
		if math.IsNaN(u.CostPerUnit) || math.IsInf(u.CostPerUnit, 0) || u.CostPerUnit < 0 {
			return &model.InputError{Field: string(k) + ".cost_per_unit", Reason: fmt.Sprintf("must be >= 0, got %v", u.CostPerUnit)}
		}
		if math.IsNaN(u.EnergyPerUnitKWh) || math.IsInf(u.EnergyPerUnitKWh, 0) || u.EnergyPerUnitKWh <= 0 {
			return &model.InputError{Field: string(k) + ".energy_per_unit_kwh", Reason: fmt.Sprintf("must be > 0, got %v", u.EnergyPerUnitKWh)}
		}
	}
	return nil
}

// UnitCostOverride is a partial UnitCost. Nil fields keep the base value; an
// explicit 0 replaces it (a free unit, or a zero yield that Validate rejects).
type UnitCostOverride struct {
	CostPerUnit      *float64 `json:"cost_per_unit,omitempty" yaml:"cost_per_unit"`
	EnergyPerUnitKWh *float64 `json:"energy_per_unit_kwh,omitempty" yaml:"energy_per_unit_kwh"`
}

// TableOverride is the partial form of UnitCostTable read from config and requests.
type TableOverride struct {
	Solar UnitCostOverride `json:"solar" yaml:"solar"`
	Wind  UnitCostOverride `json:"wind" yaml:"wind"`
	Tidal UnitCostOverride `json:"tidal" yaml:"tidal"`
}

// Merge overlays the set fields of override onto t.
func (t UnitCostTable) Merge(override TableOverride) UnitCostTable {
	out := t
	out.Solar = mergeUnit(out.Solar, override.Solar)
	out.Wind = mergeUnit(out.Wind, override.Wind)
	out.Tidal = mergeUnit(out.Tidal, override.Tidal)
	return out
}

func mergeUnit(base UnitCost, override UnitCostOverride) UnitCost {
	if override.CostPerUnit != nil {
		base.CostPerUnit = *override.CostPerUnit
	}
	if override.EnergyPerUnitKWh != nil {
		base.EnergyPerUnitKWh = *override.EnergyPerUnitKWh
	}
	return base
}
