package dispatch

import (
	"time"

	"household-energy-sim/internal/model"
)

// Step is one interval of the dispatch ledger.
// This is the primary artifact for "what happened" in a simulation.
type Step struct {
	Index int
	Time  time.Time

	Generation    model.Readings
	GenerationKW  float64
	ConsumptionKW float64

	// NetFlowBeforeKW is generation minus consumption; positive = surplus.
	NetFlowBeforeKW float64

	Action model.Action

	RequestedChargeKW    float64
	RequestedDischargeKW float64

	ChargeDrawnKWh       float64
	DischargeSuppliedKWh float64

	// NetFlowAfterKW is what remains for the grid once the battery acted.
	NetFlowAfterKW float64

	SOCStartKWh float64
	SOCEndKWh   float64
}

// Summary aggregates a run. Energies are in kWh.
type Summary struct {
	Intervals           int
	EnergyChargedKWh    float64 // drawn from surplus, before losses
	EnergyDischargedKWh float64
	ResidualSurplusKWh  float64
	ResidualDeficitKWh  float64
	ConsumptionKWh      float64
	// SelfSufficiency is the share of consumption not left as deficit, in [0, 1].
	SelfSufficiency float64
}

type Result struct {
	Policy   string
	Steps    []Step
	Summary  Summary
	FinalSOC float64
}
