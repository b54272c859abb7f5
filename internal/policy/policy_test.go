package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household-energy-sim/internal/model"
)

func TestSelfConsumption_ClampsToLimits(t *testing.T) {
	b, err := model.NewBattery(model.BatteryParams{CapacityKWh: 10, MaxChargeKW: 3, MaxDischargeKW: 4, Efficiency: 1}, 5)
	require.NoError(t, err)
	p := SelfConsumption{}

	assert.Equal(t, Request{ChargeKW: 2}, p.Decide(Context{NetFlowKW: 2, Battery: b}))
	assert.Equal(t, Request{ChargeKW: 3}, p.Decide(Context{NetFlowKW: 7, Battery: b}))
	assert.Equal(t, Request{DischargeKW: 1.5}, p.Decide(Context{NetFlowKW: -1.5, Battery: b}))
	assert.Equal(t, Request{DischargeKW: 4}, p.Decide(Context{NetFlowKW: -9, Battery: b}))
	assert.Equal(t, Request{}, p.Decide(Context{NetFlowKW: 0, Battery: b}))

	// Deciding never touches the battery.
	assert.Equal(t, 5.0, b.SOC())
}

func TestBuild(t *testing.T) {
	p, err := Build("")
	require.NoError(t, err)
	assert.Equal(t, SelfConsumptionName, p.Name())

	_, err = Build("arbitrage")
	assert.Error(t, err)
}
