package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"household-energy-sim/internal/cost"
	"household-energy-sim/internal/dispatch"
	"household-energy-sim/internal/model"
	"household-energy-sim/internal/policy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load battery parameters from a separate YAML (e.g. examples/batteries/*.yaml).
	// If both BatteryFile and Battery are provided, Battery overrides BatteryFile.
	BatteryFile string        `yaml:"battery_file"`
	Battery     BatteryConfig `yaml:"battery"`
	// UnitCosts is the resolved table; the unit_costs block is folded in by ApplyDefaults.
	UnitCosts         cost.UnitCostTable `yaml:"-"`
	UnitCostOverrides cost.TableOverride `yaml:"unit_costs"`
	LoadProfileKWh    []float64          `yaml:"load_profile_kwh"`
	IntervalHours     float64            `yaml:"interval_hours"`
	Policy            string             `yaml:"policy"`
}

// BatteryConfig fields are optional: nil means unset, and an explicit 0 is kept
// (max_charge_kw: 0 is a battery that never charges).
type BatteryConfig struct {
	Name           string   `yaml:"name" json:"name,omitempty"`
	CapacityKWh    *float64 `yaml:"capacity_kwh" json:"capacity_kwh,omitempty"`
	MaxChargeKW    *float64 `yaml:"max_charge_kw" json:"max_charge_kw,omitempty"`
	MaxDischargeKW *float64 `yaml:"max_discharge_kw" json:"max_discharge_kw,omitempty"`
	Efficiency     *float64 `yaml:"efficiency" json:"efficiency,omitempty"`
	// InitialSOCKWh nil means the battery starts full.
	InitialSOCKWh *float64 `yaml:"initial_soc_kwh" json:"initial_soc_kwh,omitempty"`
}

// Float returns a pointer to v, for filling BatteryConfig literals.
func Float(v float64) *float64 { return &v }

// DefaultBattery is the reference 10 kWh household battery.
func DefaultBattery() BatteryConfig {
	return BatteryConfig{
		Name:           "reference",
		CapacityKWh:    Float(10),
		MaxChargeKW:    Float(5),
		MaxDischargeKW: Float(5),
		Efficiency:     Float(0.95),
	}
}

// Default returns a config populated with the reference run's values.
func Default() *Config {
	return &Config{
		Battery:        DefaultBattery(),
		UnitCosts:      cost.DefaultUnitCosts(),
		LoadProfileKWh: append([]float64(nil), model.DefaultLoadProfile[:]...),
		IntervalHours:  dispatch.DefaultIntervalHours,
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// If battery_file is set, load it and merge in any explicit overrides from c.Battery.
	if c.BatteryFile != "" {
		batteryPath := c.BatteryFile
		if !filepath.IsAbs(batteryPath) {
			// Prefer the config file's directory, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), batteryPath)
			if _, err := os.Stat(cand); err == nil {
				batteryPath = cand
			}
		}
		loaded, err := LoadBatteryFile(batteryPath)
		if err != nil {
			return nil, err
		}
		c.Battery = MergeBattery(loaded, c.Battery)
	}
	return &c, nil
}

// ApplyDefaults fills every unset setting from Default.
func (c *Config) ApplyDefaults() {
	d := Default()
	c.Battery = MergeBattery(d.Battery, c.Battery)
	if c.UnitCosts == (cost.UnitCostTable{}) {
		c.UnitCosts = d.UnitCosts
	}
	c.UnitCosts = c.UnitCosts.Merge(c.UnitCostOverrides)
	if len(c.LoadProfileKWh) == 0 {
		c.LoadProfileKWh = d.LoadProfileKWh
	}
	if c.IntervalHours == 0 {
		c.IntervalHours = d.IntervalHours
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Battery.NewBattery(); err != nil {
		return fmt.Errorf("battery config invalid: %w", err)
	}
	if err := c.UnitCosts.Validate(); err != nil {
		return fmt.Errorf("unit_costs invalid: %w", err)
	}
	if _, err := c.LoadProfile(); err != nil {
		return err
	}
	if c.IntervalHours <= 0 {
		return &model.InputError{Field: "interval_hours", Reason: fmt.Sprintf("must be > 0, got %v", c.IntervalHours)}
	}
	if _, err := policy.Build(c.Policy); err != nil {
		return err
	}
	return nil
}

// NewSimulator builds the dispatch simulator described by the config.
func (c *Config) NewSimulator() (*dispatch.Simulator, error) {
	p, err := policy.Build(c.Policy)
	if err != nil {
		return nil, err
	}
	return dispatch.New(c.IntervalHours, p)
}

func (c *Config) LoadProfile() (model.LoadProfile, error) {
	return model.LoadProfileFromSlice(c.LoadProfileKWh)
}

func (b BatteryConfig) ToModelParams() model.BatteryParams {
	return model.BatteryParams{
		CapacityKWh:    deref(b.CapacityKWh),
		MaxChargeKW:    deref(b.MaxChargeKW),
		MaxDischargeKW: deref(b.MaxDischargeKW),
		Efficiency:     deref(b.Efficiency),
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// NewBattery builds a fresh battery; each call returns an independent instance.
func (b BatteryConfig) NewBattery() (*model.Battery, error) {
	params := b.ToModelParams()
	if b.InitialSOCKWh == nil {
		return model.NewFullBattery(params)
	}
	return model.NewBattery(params, *b.InitialSOCKWh)
}

type batteryFileWrapper struct {
	Battery BatteryConfig `yaml:"battery"`
}

func LoadBatteryFile(path string) (BatteryConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BatteryConfig{}, err
	}
	var w batteryFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BatteryConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Battery, nil
}

// MergeBattery overlays the set fields of override onto base.
// This is used when loading a battery file and then applying overrides from the request.
func MergeBattery(base, override BatteryConfig) BatteryConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	out.CapacityKWh = overlay(out.CapacityKWh, override.CapacityKWh)
	out.MaxChargeKW = overlay(out.MaxChargeKW, override.MaxChargeKW)
	out.MaxDischargeKW = overlay(out.MaxDischargeKW, override.MaxDischargeKW)
	out.Efficiency = overlay(out.Efficiency, override.Efficiency)
	out.InitialSOCKWh = overlay(out.InitialSOCKWh, override.InitialSOCKWh)
	return out
}

// overlay returns a copy of v when set, else base.
func overlay(base, v *float64) *float64 {
	if v == nil {
		return base
	}
	return Float(*v)
}
