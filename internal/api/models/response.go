package models

import "time"

// CombinationResult is one evaluated combination.
type CombinationResult struct {
	Name           string         `json:"name"`
	Sources        []string       `json:"sources"`
	TotalEnergyKWh float64        `json:"total_energy_kwh"`
	Feasible       bool           `json:"feasible"`
	DeficitKWh     *float64       `json:"deficit_kwh,omitempty"`
	Cost           *float64       `json:"cost,omitempty"`
	Units          map[string]int `json:"units,omitempty"`
}

// MixResponse is the selector outcome for one month.
// BestCost is null when nothing met the load (the in-process value is +Inf).
type MixResponse struct {
	Month        int                 `json:"month"`
	LoadKWh      float64             `json:"load_kwh"`
	Met          bool                `json:"met"`
	Message      string              `json:"message,omitempty"`
	Combinations []CombinationResult `json:"combinations"`
	Best         *string             `json:"best"`
	BestCost     *float64            `json:"best_cost"`
	BestConfig   map[string]int      `json:"best_config"`
}

type AnnualMixResponse struct {
	Months []MixResponse `json:"months"`
	// TotalCost sums the months that were met.
	TotalCost   float64 `json:"total_cost"`
	MonthsUnmet []int   `json:"months_unmet"`
}

// DispatchSummary contains aggregated dispatch results
type DispatchSummary struct {
	Policy              string     `json:"policy"`
	FinalSOCKWh         float64    `json:"final_soc_kwh"`
	TotalIntervals      int        `json:"total_intervals"`
	Window              TimeWindow `json:"window"`
	EnergyChargedKWh    float64    `json:"energy_charged_kwh"`
	EnergyDischargedKWh float64    `json:"energy_discharged_kwh"`
	ResidualSurplusKWh  float64    `json:"residual_surplus_kwh"`
	ResidualDeficitKWh  float64    `json:"residual_deficit_kwh"`
	ConsumptionKWh      float64    `json:"consumption_kwh"`
	SelfSufficiency     float64    `json:"self_sufficiency"`
}

// TimeWindow represents a time range
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DispatchResponse struct {
	ID      string          `json:"id"`
	Status  string          `json:"status"`
	Summary DispatchSummary `json:"summary"`
	Steps   []StepRow       `json:"steps,omitempty"`
}

// StepRow represents one interval in the dispatch ledger
type StepRow struct {
	Index                int       `json:"index"`
	Time                 time.Time `json:"time"`
	SolarKW              float64   `json:"solar_kw"`
	WindKW               float64   `json:"wind_kw"`
	TidalKW              float64   `json:"tidal_kw"`
	GenerationKW         float64   `json:"generation_kw"`
	ConsumptionKW        float64   `json:"consumption_kw"`
	NetFlowBeforeKW      float64   `json:"net_flow_before_kw"`
	Action               string    `json:"action"` // "CHARGING", "DISCHARGING", "IDLE"
	ChargeDrawnKWh       float64   `json:"charge_drawn_kwh"`
	DischargeSuppliedKWh float64   `json:"discharge_supplied_kwh"`
	NetFlowAfterKW       float64   `json:"net_flow_after_kw"`
	SOCStartKWh          float64   `json:"soc_start_kwh"`
	SOCEndKWh            float64   `json:"soc_end_kwh"`
}

type StepsResponse struct {
	ID    string    `json:"id"`
	Steps []StepRow `json:"steps"`
}

type SizingResult struct {
	Rank                int     `json:"rank"`
	CapacityKWh         float64 `json:"capacity_kwh"`
	FinalSOCKWh         float64 `json:"final_soc_kwh"`
	ResidualDeficitKWh  float64 `json:"residual_deficit_kwh"`
	ResidualSurplusKWh  float64 `json:"residual_surplus_kwh"`
	EnergyDischargedKWh float64 `json:"energy_discharged_kwh"`
	SelfSufficiency     float64 `json:"self_sufficiency"`
}

type SizingResponse struct {
	Results []SizingResult `json:"results"`
}

// BatteryInfo represents information about a battery preset
type BatteryInfo struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	File  string       `json:"file"`
	Specs BatterySpecs `json:"specs"`
}

// BatterySpecs contains battery specifications
type BatterySpecs struct {
	CapacityKWh    float64 `json:"capacity_kwh"`
	MaxChargeKW    float64 `json:"max_charge_kw"`
	MaxDischargeKW float64 `json:"max_discharge_kw"`
	Efficiency     float64 `json:"efficiency"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
