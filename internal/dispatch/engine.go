package dispatch

import (
	"fmt"
	"math"

	"household-energy-sim/internal/model"
	"household-energy-sim/internal/policy"
)

// DefaultIntervalHours is the reference sampling step.
const DefaultIntervalHours = 1.0

type Simulator struct {
	intervalHours float64
	policy        policy.Policy
}

// New builds a simulator. A nil policy selects self-consumption.
func New(intervalHours float64, p policy.Policy) (*Simulator, error) {
	if math.IsNaN(intervalHours) || math.IsInf(intervalHours, 0) || intervalHours <= 0 {
		return nil, &model.InputError{Field: "interval_hours", Reason: fmt.Sprintf("must be > 0, got %v", intervalHours)}
	}
	if p == nil {
		p = policy.SelfConsumption{}
	}
	return &Simulator{intervalHours: intervalHours, policy: p}, nil
}

func (s *Simulator) IntervalHours() float64 { return s.intervalHours }

// Run walks aligned generation and consumption series through batt.
//
// All input checks happen before the first interval, so an error means batt
// was not touched. The battery's final SOC is reported as Result.FinalSOC.
//
// Charge and Discharge return kWh; net flow is adjusted by that energy divided
// by the interval length, i.e. the average kW moved. At 1 h intervals this is
// the returned energy itself.
func (s *Simulator) Run(gen []model.GenerationSample, cons []model.ConsumptionSample, batt *model.Battery) (*Result, error) {
	if batt == nil {
		return nil, fmt.Errorf("battery is nil")
	}
	if err := validateSeries(gen, cons); err != nil {
		return nil, err
	}

	dtH := s.intervalHours
	steps := make([]Step, 0, len(gen))
	var sum Summary

	for idx := range gen {
		g := gen[idx]
		c := cons[idx]

		total := g.Readings.Total()
		net := total - c.PowerKW

		req := s.policy.Decide(policy.Context{
			Index:     idx,
			Time:      g.Time,
			NetFlowKW: net,
			Battery:   batt,
		})

		step := Step{
			Index:           idx,
			Time:            g.Time,
			Generation:      g.Readings,
			GenerationKW:    total,
			ConsumptionKW:   c.PowerKW,
			NetFlowBeforeKW: net,
			SOCStartKWh:     batt.SOC(),
		}

		after := net
		if net > 0 {
			step.RequestedChargeKW = math.Max(0, req.ChargeKW)
			step.ChargeDrawnKWh = batt.Charge(step.RequestedChargeKW, dtH)
			after -= step.ChargeDrawnKWh / dtH
		} else {
			step.RequestedDischargeKW = math.Max(0, req.DischargeKW)
			step.DischargeSuppliedKWh = batt.Discharge(step.RequestedDischargeKW, dtH)
			after += step.DischargeSuppliedKWh / dtH
		}

		step.NetFlowAfterKW = after
		step.SOCEndKWh = batt.SOC()
		step.Action = model.ActionFromEnergy(step.ChargeDrawnKWh, step.DischargeSuppliedKWh)
		steps = append(steps, step)

		sum.EnergyChargedKWh += step.ChargeDrawnKWh
		sum.EnergyDischargedKWh += step.DischargeSuppliedKWh
		sum.ConsumptionKWh += c.PowerKW * dtH
		if after > 0 {
			sum.ResidualSurplusKWh += after * dtH
		} else {
			sum.ResidualDeficitKWh += -after * dtH
		}
	}

	sum.Intervals = len(steps)
	sum.SelfSufficiency = 1
	if sum.ConsumptionKWh > 0 {
		sum.SelfSufficiency = math.Max(0, 1-sum.ResidualDeficitKWh/sum.ConsumptionKWh)
	}

	return &Result{
		Policy:   s.policy.Name(),
		Steps:    steps,
		Summary:  sum,
		FinalSOC: batt.SOC(),
	}, nil
}

// RunFresh builds a private battery for this run only.
// A nil initialSOCKWh starts the battery full.
func (s *Simulator) RunFresh(gen []model.GenerationSample, cons []model.ConsumptionSample, params model.BatteryParams, initialSOCKWh *float64) (*Result, error) {
	soc := params.CapacityKWh
	if initialSOCKWh != nil {
		soc = *initialSOCKWh
	}
	batt, err := model.NewBattery(params, soc)
	if err != nil {
		return nil, err
	}
	return s.Run(gen, cons, batt)
}

func validateSeries(gen []model.GenerationSample, cons []model.ConsumptionSample) error {
	if err := model.CheckAlignment(gen, cons); err != nil {
		return err
	}
	if len(gen) == 0 {
		return &model.InputError{Field: "series", Reason: "no intervals"}
	}
	for i := range gen {
		if err := gen[i].Readings.Validate(); err != nil {
			return fmt.Errorf("generation interval %d: %w", i, err)
		}
		p := cons[i].PowerKW
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("consumption interval %d: %w", i, &model.InputError{Field: "power_kw", Reason: fmt.Sprintf("must be a finite value >= 0, got %v", p)})
		}
	}
	return nil
}
