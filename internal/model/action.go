package model

// Action is a human-friendly battery mode for a timestep.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// ActionFromEnergy classifies an interval by what the battery actually moved.
func ActionFromEnergy(drawnKWh, suppliedKWh float64) Action {
	switch {
	case drawnKWh > 0:
		return ActionCharging
	case suppliedKWh > 0:
		return ActionDischarging
	default:
		return ActionIdle
	}
}
