package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household-energy-sim/internal/model"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_DefaultsFillGaps(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "run.yaml", "battery:\n  capacity_kwh: 13.5\n")

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 13.5, *c.Battery.CapacityKWh)
	assert.Equal(t, 5.0, *c.Battery.MaxChargeKW)
	assert.Equal(t, 0.95, *c.Battery.Efficiency)
	assert.Nil(t, c.Battery.InitialSOCKWh)
	assert.Equal(t, 200.0, c.UnitCosts.Solar.CostPerUnit)
	assert.Equal(t, 1.0, c.IntervalHours)

	profile, err := c.LoadProfile()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultLoadProfile, profile)

	b, err := c.Battery.NewBattery()
	require.NoError(t, err)
	assert.Equal(t, 13.5, b.SOC())
}

func TestLoad_BatteryFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "batteries/wall.yaml", `
battery:
  name: wall
  capacity_kwh: 20
  max_charge_kw: 7
  max_discharge_kw: 7
  efficiency: 0.9
`)
	p := writeFile(t, dir, "run.yaml", `
battery_file: batteries/wall.yaml
battery:
  max_discharge_kw: 3
  initial_soc_kwh: 0
unit_costs:
  tidal:
    cost_per_unit: 4000
`)

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "wall", c.Battery.Name)
	assert.Equal(t, 20.0, *c.Battery.CapacityKWh)
	assert.Equal(t, 7.0, *c.Battery.MaxChargeKW)
	assert.Equal(t, 3.0, *c.Battery.MaxDischargeKW)
	require.NotNil(t, c.Battery.InitialSOCKWh)
	assert.Equal(t, 0.0, *c.Battery.InitialSOCKWh)
	assert.Equal(t, 4000.0, c.UnitCosts.Tidal.CostPerUnit)
	assert.Equal(t, 300.0, c.UnitCosts.Tidal.EnergyPerUnitKWh)

	b, err := c.Battery.NewBattery()
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.SOC())
}

func TestLoad_ExplicitZeroSurvivesDefaults(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "run.yaml", `
battery:
  max_charge_kw: 0
  max_discharge_kw: 0
  initial_soc_kwh: 0
unit_costs:
  solar:
    cost_per_unit: 0
`)

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, *c.Battery.MaxChargeKW)
	assert.Equal(t, 0.0, *c.Battery.MaxDischargeKW)
	assert.Equal(t, 10.0, *c.Battery.CapacityKWh)
	assert.Equal(t, 0.0, c.UnitCosts.Solar.CostPerUnit)
	assert.Equal(t, 30.0, c.UnitCosts.Solar.EnergyPerUnitKWh)

	params := c.Battery.ToModelParams()
	assert.Equal(t, 0.0, params.MaxChargeKW)
	assert.Equal(t, 0.0, params.MaxDischargeKW)
}

func TestLoad_BatteryFileZeroLimitKeptOverDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "batteries/export_only.yaml", `
battery:
  capacity_kwh: 8
  max_charge_kw: 0
`)
	p := writeFile(t, dir, "run.yaml", "battery_file: batteries/export_only.yaml\n")

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, *c.Battery.MaxChargeKW)
	assert.Equal(t, 5.0, *c.Battery.MaxDischargeKW)
	assert.Equal(t, 0.95, *c.Battery.Efficiency)
}

func TestMergeBattery(t *testing.T) {
	base := DefaultBattery()
	out := MergeBattery(base, BatteryConfig{Name: "garage", MaxChargeKW: Float(0), Efficiency: Float(0.9)})
	assert.Equal(t, "garage", out.Name)
	assert.Equal(t, 0.0, *out.MaxChargeKW)
	assert.Equal(t, 0.9, *out.Efficiency)
	assert.Equal(t, 10.0, *out.CapacityKWh)
	assert.Nil(t, out.InitialSOCKWh)

	// the override's pointers are copied, not shared
	soc := 2.0
	out = MergeBattery(base, BatteryConfig{InitialSOCKWh: &soc})
	soc = 9
	assert.Equal(t, 2.0, *out.InitialSOCKWh)
	assert.Equal(t, 5.0, *base.MaxChargeKW)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	p := writeFile(t, dir, "bad_eff.yaml", "battery:\n  efficiency: 1.5\n")
	_, err := Load(p)
	assert.ErrorContains(t, err, "battery config invalid")

	p = writeFile(t, dir, "bad_profile.yaml", "load_profile_kwh: [1, 2, 3]\n")
	_, err = Load(p)
	assert.Error(t, err)

	p = writeFile(t, dir, "bad_soc.yaml", "battery:\n  initial_soc_kwh: 50\n")
	_, err = Load(p)
	assert.Error(t, err)

	p = writeFile(t, dir, "broken.yaml", "battery: [\n")
	_, err = Load(p)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBatteryConfig_NewBatteryIsIndependent(t *testing.T) {
	cfg := DefaultBattery()
	a, err := cfg.NewBattery()
	require.NoError(t, err)
	b, err := cfg.NewBattery()
	require.NoError(t, err)

	a.Discharge(5, 1)
	assert.Equal(t, 5.0, a.SOC())
	assert.Equal(t, 10.0, b.SOC())
}

func TestConfig_NewSimulator(t *testing.T) {
	c := Default()
	sim, err := c.NewSimulator()
	require.NoError(t, err)
	assert.Equal(t, 1.0, sim.IntervalHours())

	c.Policy = "peak_shaving"
	assert.Error(t, c.Validate())
}
