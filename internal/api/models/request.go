package models

import (
	"household-energy-sim/internal/config"
	"household-energy-sim/internal/cost"
	"household-energy-sim/internal/model"
)

// MixRequest is the body of POST /api/v1/mix.
// Unit costs and load profile fall back to the reference values when omitted.
type MixRequest struct {
	SolarKWh       float64             `json:"solar_kwh"`
	WindKWh        float64             `json:"wind_kwh"`
	TidalKWh       float64             `json:"tidal_kwh"`
	Month          int                 `json:"month"` // 1 = January
	UnitCosts      *cost.TableOverride `json:"unit_costs,omitempty"`
	LoadProfileKWh []float64           `json:"load_profile_kwh,omitempty"`
}

// AnnualMixRequest is the body of POST /api/v1/mix/annual.
type AnnualMixRequest struct {
	Monthly        []model.Readings    `json:"monthly" binding:"required"`
	UnitCosts      *cost.TableOverride `json:"unit_costs,omitempty"`
	LoadProfileKWh []float64           `json:"load_profile_kwh,omitempty"`
}

// DispatchRequest is the body of POST /api/v1/dispatch.
type DispatchRequest struct {
	BatteryFile   string                    `json:"battery_file,omitempty"` // preset id from GET /batteries
	Battery       config.BatteryConfig      `json:"battery,omitempty"`
	IntervalHours float64                   `json:"interval_hours,omitempty"`
	Policy        string                    `json:"policy,omitempty"`
	Generation    []model.GenerationSample  `json:"generation" binding:"required"`
	Consumption   []model.ConsumptionSample `json:"consumption" binding:"required"`
	IncludeSteps  bool                      `json:"include_steps,omitempty"`
}

// SizingRequest is the body of POST /api/v1/dispatch/sizing.
type SizingRequest struct {
	Battery            config.BatteryConfig      `json:"battery,omitempty"`
	CapacitiesKWh      []float64                 `json:"capacities_kwh" binding:"required"`
	InitialSOCFraction *float64                  `json:"initial_soc_fraction,omitempty"`
	IntervalHours      float64                   `json:"interval_hours,omitempty"`
	Generation         []model.GenerationSample  `json:"generation" binding:"required"`
	Consumption        []model.ConsumptionSample `json:"consumption" binding:"required"`
}
