package cost

import (
	"fmt"
	"math"

	"household-energy-sim/internal/model"
)

// Units is the installed unit count per source. Absent sources are omitted.
type Units map[model.SourceKind]int

// Estimate is the capital cost of one combination.
type Estimate struct {
	TotalCost float64 `json:"total_cost"`
	Units     Units   `json:"units"`
}

// Estimator prices source combinations against a fixed UnitCostTable.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	table UnitCostTable
}

func NewEstimator(table UnitCostTable) (*Estimator, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{table: table}, nil
}

func (e *Estimator) Table() UnitCostTable { return e.table }

// UnitCount sizes a source to deliver energyKWh.
//
// Solar and wind use math.RoundToEven(energy / energy_per_unit), so a yield
// exactly halfway between two unit counts goes to the even one. The result can
// under- or over-provision the input energy; that is inherent to unit costing.
//
// Tidal is pinned to one plant whenever it participates, whatever the energy.
// This is a simplification of the cost model: a real plant would scale with demand.
//
// A count that does not fit in an int is an InputError.
func (e *Estimator) UnitCount(k model.SourceKind, energyKWh float64) (int, error) {
	if k == model.Tidal {
		return 1, nil
	}
	per := e.table.Get(k).EnergyPerUnitKWh
	n := math.RoundToEven(energyKWh / per)
	if math.IsNaN(n) || n < 0 || n >= float64(math.MaxInt) {
		return 0, &model.InputError{Field: string(k), Reason: fmt.Sprintf("%v kWh needs more units than can be counted", energyKWh)}
	}
	return int(n), nil
}

// Estimate prices the members of combo using r; readings of sources outside
// combo are ignored and contribute no units or cost.
func (e *Estimator) Estimate(combo model.Combination, r model.Readings) (Estimate, error) {
	if err := r.Validate(); err != nil {
		return Estimate{}, err
	}
	est := Estimate{Units: Units{}}
	for _, k := range model.SourceKinds {
		if !combo.Has(k) {
			continue
		}
		n, err := e.UnitCount(k, r.Get(k))
		if err != nil {
			return Estimate{}, err
		}
		est.Units[k] = n
		est.TotalCost += float64(n) * e.table.Get(k).CostPerUnit
	}
	if math.IsInf(est.TotalCost, 0) {
		return Estimate{}, &model.InputError{Field: "total_cost", Reason: fmt.Sprintf("%s cost overflows", combo.Name)}
	}
	return est, nil
}
