package policy

import "math"

const SelfConsumptionName = "self_consumption"

// SelfConsumption soaks up surplus and covers deficit, clamped to the
// battery's advisory charge and discharge limits.
type SelfConsumption struct{}

func (SelfConsumption) Name() string { return SelfConsumptionName }

func (SelfConsumption) Decide(ctx Context) Request {
	p := ctx.Battery.Params
	switch {
	case ctx.NetFlowKW > 0:
		return Request{ChargeKW: math.Min(ctx.NetFlowKW, p.MaxChargeKW)}
	case ctx.NetFlowKW == 0:
		return Request{}
	}
	return Request{DischargeKW: math.Min(-ctx.NetFlowKW, p.MaxDischargeKW)}
}
