package analysis

import (
	"fmt"
	"sort"

	"household-energy-sim/internal/dispatch"
	"household-energy-sim/internal/model"
)

// SizingOutcome summarises one battery capacity run over the same series.
type SizingOutcome struct {
	CapacityKWh float64
	FinalSOC    float64
	dispatch.Summary
}

// SweepCapacities reruns the series once per capacity, each with its own
// freshly built battery so no charge carries between scenarios.
// The battery starts full unless initialSOCFraction is given, in which case the
// start is that fraction of each scenario's capacity.
//
// Outcomes are sorted by residual deficit ascending, then capacity ascending.
func SweepCapacities(sim *dispatch.Simulator, gen []model.GenerationSample, cons []model.ConsumptionSample,
	base model.BatteryParams, capacities []float64, initialSOCFraction *float64) ([]SizingOutcome, error) {
	if sim == nil {
		return nil, fmt.Errorf("simulator is nil")
	}
	if len(capacities) == 0 {
		return nil, &model.InputError{Field: "capacities", Reason: "at least one capacity is required"}
	}
	if initialSOCFraction != nil && (*initialSOCFraction < 0 || *initialSOCFraction > 1) {
		return nil, &model.InputError{Field: "initial_soc_fraction", Reason: fmt.Sprintf("must be within [0, 1], got %v", *initialSOCFraction)}
	}

	out := make([]SizingOutcome, 0, len(capacities))
	for _, capKWh := range capacities {
		params := base
		params.CapacityKWh = capKWh

		var start *float64
		if initialSOCFraction != nil {
			s := *initialSOCFraction * capKWh
			start = &s
		}

		res, err := sim.RunFresh(gen, cons, params, start)
		if err != nil {
			return nil, fmt.Errorf("capacity %v kWh: %w", capKWh, err)
		}
		out = append(out, SizingOutcome{
			CapacityKWh: capKWh,
			FinalSOC:    res.FinalSOC,
			Summary:     res.Summary,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ResidualDeficitKWh != out[j].ResidualDeficitKWh {
			return out[i].ResidualDeficitKWh < out[j].ResidualDeficitKWh
		}
		return out[i].CapacityKWh < out[j].CapacityKWh
	})
	return out, nil
}
