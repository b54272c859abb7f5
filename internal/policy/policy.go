package policy

import (
	"fmt"
	"time"

	"household-energy-sim/internal/model"
)

// Context is what a policy sees before the battery acts on an interval.
type Context struct {
	Index     int
	Time      time.Time
	NetFlowKW float64 // generation minus consumption, positive = surplus
	Battery   *model.Battery
}

// Request is the power the battery is asked to absorb or deliver.
// At most one of the fields is non-zero; both are non-negative.
type Request struct {
	ChargeKW    float64
	DischargeKW float64
}

// Policy turns an interval's net flow into a battery request.
// Power limits live here, not in model.Battery.
type Policy interface {
	Name() string
	Decide(ctx Context) Request
}

// Build returns the policy registered under name. Empty selects self-consumption.
func Build(name string) (Policy, error) {
	switch name {
	case "", SelfConsumptionName:
		return SelfConsumption{}, nil
	default:
		return nil, &model.InputError{Field: "policy", Reason: fmt.Sprintf("unsupported policy %q", name)}
	}
}
