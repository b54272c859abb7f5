package mix

import (
	"fmt"
	"math"

	"household-energy-sim/internal/cost"
	"household-energy-sim/internal/model"
)

// Evaluation is the outcome for one combination in one period.
type Evaluation struct {
	Combination    model.Combination
	TotalEnergyKWh float64
	Feasible       bool
	// DeficitKWh is load minus energy when infeasible, 0 otherwise.
	DeficitKWh float64
	// Estimate is nil for infeasible combinations.
	Estimate *cost.Estimate
}

// Result is the least-cost choice for one period.
// When nothing meets the load, Best is nil, BestCost is +Inf and BestConfig is empty.
type Result struct {
	Month       int
	LoadKWh     float64
	Readings    model.Readings
	Evaluations []Evaluation

	Best       *model.Combination
	BestCost   float64
	BestConfig cost.Units
}

// Met reports whether any combination covered the load.
func (r Result) Met() bool { return r.Best != nil }

// Selector picks the cheapest combination of sources that covers a period's load.
type Selector struct {
	estimator    *cost.Estimator
	profile      model.LoadProfile
	combinations []model.Combination
}

func NewSelector(estimator *cost.Estimator, profile model.LoadProfile) (*Selector, error) {
	if estimator == nil {
		return nil, fmt.Errorf("estimator is nil")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &Selector{
		estimator:    estimator,
		profile:      profile,
		combinations: model.PairCombinations(),
	}, nil
}

func (s *Selector) Estimator() *cost.Estimator { return s.estimator }

func (s *Selector) Profile() model.LoadProfile { return s.profile }

// Select evaluates readings against the load of a 1-based month.
func (s *Selector) Select(r model.Readings, month int) (*Result, error) {
	load, err := s.profile.Month(month)
	if err != nil {
		return nil, err
	}
	res, err := s.SelectLoad(r, load)
	if err != nil {
		return nil, err
	}
	res.Month = month
	return res, nil
}

// SelectLoad evaluates readings against an explicit load in kWh.
//
// A combination is feasible when its energy is at least loadKWh. Among feasible
// combinations the strictly cheapest wins; equal costs keep the earlier one in
// the fixed order Solar+Wind, Solar+Tidal, Wind+Tidal.
func (s *Selector) SelectLoad(r model.Readings, loadKWh float64) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(loadKWh) || math.IsInf(loadKWh, 0) || loadKWh < 0 {
		return nil, &model.InputError{Field: "load_kwh", Reason: fmt.Sprintf("must be a finite value >= 0, got %v", loadKWh)}
	}

	res := &Result{
		LoadKWh:     loadKWh,
		Readings:    r,
		Evaluations: make([]Evaluation, 0, len(s.combinations)),
		BestCost:    math.Inf(1),
		BestConfig:  cost.Units{},
	}

	for _, combo := range s.combinations {
		ev := Evaluation{
			Combination:    combo,
			TotalEnergyKWh: combo.Energy(r),
		}
		if ev.TotalEnergyKWh < loadKWh {
			ev.DeficitKWh = loadKWh - ev.TotalEnergyKWh
			res.Evaluations = append(res.Evaluations, ev)
			continue
		}
		ev.Feasible = true

		est, err := s.estimator.Estimate(combo, r.Only(combo.Members...))
		if err != nil {
			return nil, fmt.Errorf("estimate %s: %w", combo.Name, err)
		}
		ev.Estimate = &est
		res.Evaluations = append(res.Evaluations, ev)

		if est.TotalCost < res.BestCost {
			best := combo
			res.Best = &best
			res.BestCost = est.TotalCost
			res.BestConfig = est.Units
		}
	}
	return res, nil
}

// SelectYear evaluates twelve monthly readings, January first.
// Months are independent: an unmet month does not carry its deficit forward.
func (s *Selector) SelectYear(monthly []model.Readings) ([]*Result, error) {
	if len(monthly) != model.MonthsPerYear {
		return nil, &model.InputError{Field: "monthly", Reason: fmt.Sprintf("expected %d monthly readings, got %d", model.MonthsPerYear, len(monthly))}
	}
	out := make([]*Result, 0, len(monthly))
	for i, r := range monthly {
		res, err := s.Select(r, i+1)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", i+1, err)
		}
		out = append(out, res)
	}
	return out, nil
}
