package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"household-energy-sim/internal/analysis"
	"household-energy-sim/internal/config"
	"household-energy-sim/internal/cost"
	"household-energy-sim/internal/data"
	"household-energy-sim/internal/dispatch"
	"household-energy-sim/internal/mix"
	"household-energy-sim/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "mix":
		err = cmdMix(os.Args[2:])
	case "annual":
		err = cmdAnnual(os.Args[2:])
	case "dispatch":
		err = cmdDispatch(os.Args[2:])
	case "sizing":
		err = cmdSizing(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var inErr *model.InputError
		var alErr *model.AlignmentError
		if errors.As(err, &inErr) || errors.As(err, &alErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli mix --solar 200 --wind 150 --tidal 0 --month 1 [--config examples/config.yaml]")
	fmt.Println("  cli annual --data examples/monthly.json [--config examples/config.yaml]")
	fmt.Println("  cli dispatch --data examples/series.json [--config examples/config.yaml] --out results/dispatch.csv")
	fmt.Println("  cli sizing --data examples/series.json --capacities 5,10,15,20")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - mix picks the cheapest two-source combination that meets the month's load")
	fmt.Println("  - dispatch outputs CSV with action=CHARGING/IDLE/DISCHARGING per interval")
	fmt.Println("  - without --data, dispatch and sizing run the built-in 24-point demo series")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newSelector(cfg *config.Config) (*mix.Selector, error) {
	est, err := cost.NewEstimator(cfg.UnitCosts)
	if err != nil {
		return nil, err
	}
	profile, err := cfg.LoadProfile()
	if err != nil {
		return nil, err
	}
	return mix.NewSelector(est, profile)
}

func cmdMix(args []string) error {
	fs := flag.NewFlagSet("mix", flag.ExitOnError)
	solar := fs.Float64("solar", 0, "Solar energy generated per month (kWh)")
	wind := fs.Float64("wind", 0, "Wind energy generated per month (kWh)")
	tidal := fs.Float64("tidal", 0, "Tidal energy generated per month (kWh)")
	month := fs.Int("month", 0, "Month of interest (1 for January, 2 for February, etc.)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	sel, err := newSelector(cfg)
	if err != nil {
		return err
	}
	res, err := sel.Select(model.Readings{Solar: *solar, Wind: *wind, Tidal: *tidal}, *month)
	if err != nil {
		return err
	}
	return mix.WriteReport(os.Stdout, res)
}

func cmdAnnual(args []string) error {
	fs := flag.NewFlagSet("annual", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to monthly readings JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	if *dataPath == "" {
		return fmt.Errorf("--data is required")
	}
	monthly, err := data.LoadMonthlyJSON(*dataPath)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	sel, err := newSelector(cfg)
	if err != nil {
		return err
	}
	results, err := sel.SelectYear(monthly.Monthly)
	if err != nil {
		return err
	}

	total := 0.0
	fmt.Printf("%-6s %-10s %-16s %-12s %s\n", "month", "load", "best", "cost$", "units")
	for _, r := range results {
		if !r.Met() {
			fmt.Printf("%-6d %-10.1f %-16s %-12s %s\n", r.Month, r.LoadKWh, "-", "-", "no combination met the energy requirement")
			continue
		}
		total += r.BestCost
		fmt.Printf("%-6d %-10.1f %-16s %-12.2f %s\n", r.Month, r.LoadKWh, r.Best.Name, r.BestCost, fmtUnits(r.BestConfig))
	}
	fmt.Printf("Total cost of met months: $%.2f\n", total)
	return nil
}

func cmdDispatch(args []string) error {
	fs := flag.NewFlagSet("dispatch", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to series JSON (default: built-in demo series)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "results/dispatch.csv", "Output CSV path")
	n := fs.Int("n", 0, "Optional: limit to first N intervals (0=all)")
	_ = fs.Parse(args)

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	gen, cons, err := loadSeries(*dataPath)
	if err != nil {
		return err
	}
	if *n > 0 && *n < len(gen) {
		gen, cons = gen[:*n], cons[:*n]
	}

	batt, err := cfg.Battery.NewBattery()
	if err != nil {
		return err
	}
	sim, err := cfg.NewSimulator()
	if err != nil {
		return err
	}
	res, err := sim.Run(gen, cons, batt)
	if err != nil {
		return err
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return err
	}
	if err := dispatch.WriteStepsCSV(*outPath, res.Steps); err != nil {
		return err
	}

	s := res.Summary
	fmt.Printf("Wrote %d rows to %s\n", len(res.Steps), *outPath)
	fmt.Printf("Final SOC=%.3f kWh Charged=%.3f kWh Discharged=%.3f kWh\n", res.FinalSOC, s.EnergyChargedKWh, s.EnergyDischargedKWh)
	fmt.Printf("Residual surplus=%.3f kWh deficit=%.3f kWh self-sufficiency=%.1f%%\n", s.ResidualSurplusKWh, s.ResidualDeficitKWh, s.SelfSufficiency*100)
	return nil
}

func cmdSizing(args []string) error {
	fs := flag.NewFlagSet("sizing", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to series JSON (default: built-in demo series)")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	capacities := fs.String("capacities", "5,10,15,20", "Comma-separated battery capacities (kWh)")
	startFrac := fs.Float64("start", -1, "Optional starting SOC as a fraction of capacity (default: full)")
	_ = fs.Parse(args)

	caps, err := parseFloats(*capacities)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	gen, cons, err := loadSeries(*dataPath)
	if err != nil {
		return err
	}
	sim, err := cfg.NewSimulator()
	if err != nil {
		return err
	}

	var start *float64
	if *startFrac >= 0 {
		start = startFrac
	}
	outcomes, err := analysis.SweepCapacities(sim, gen, cons, cfg.Battery.ToModelParams(), caps, start)
	if err != nil {
		return err
	}

	fmt.Printf("%-4s %-12s %-12s %-12s %-12s %-8s\n", "rank", "capacity", "deficit", "surplus", "final_soc", "self%")
	for i, o := range outcomes {
		fmt.Printf("%-4d %-12.2f %-12.3f %-12.3f %-12.3f %-8.1f\n",
			i+1, o.CapacityKWh, o.ResidualDeficitKWh, o.ResidualSurplusKWh, o.FinalSOC, o.SelfSufficiency*100)
	}
	return nil
}

func loadSeries(path string) ([]model.GenerationSample, []model.ConsumptionSample, error) {
	if path == "" {
		gen, cons := data.DemoSeries()
		return gen, cons, nil
	}
	f, err := data.LoadSeriesJSON(path)
	if err != nil {
		return nil, nil, err
	}
	return f.Generation, f.Consumption, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid capacity %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func fmtUnits(u cost.Units) string {
	parts := make([]string, 0, len(u))
	for _, k := range model.SourceKinds {
		if n, ok := u[k]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", k, n))
		}
	}
	return strings.Join(parts, " ")
}
