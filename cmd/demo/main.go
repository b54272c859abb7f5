package main

import (
	"flag"
	"fmt"
	"os"

	"household-energy-sim/internal/config"
	"household-energy-sim/internal/cost"
	"household-energy-sim/internal/data"
	"household-energy-sim/internal/dispatch"
	"household-energy-sim/internal/mix"
	"household-energy-sim/internal/model"
)

// Demo:
// - Pick the cheapest generation mix for the reference month
// - Run the reference 10 kWh battery over the built-in 24-point series
// - Print every interval so the SOC trajectory can be eyeballed or plotted
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outCSV := flag.String("out", "", "Optional path to write step CSV (e.g. results/demo.csv)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	est, err := cost.NewEstimator(cfg.UnitCosts)
	if err != nil {
		panic(err)
	}
	profile, err := cfg.LoadProfile()
	if err != nil {
		panic(err)
	}
	sel, err := mix.NewSelector(est, profile)
	if err != nil {
		panic(err)
	}
	res, err := sel.Select(model.Readings{Solar: 200, Wind: 150, Tidal: 0}, 1)
	if err != nil {
		panic(err)
	}
	if err := mix.WriteReport(os.Stdout, res); err != nil {
		panic(err)
	}

	gen, cons := data.DemoSeries()
	batt, err := cfg.Battery.NewBattery()
	if err != nil {
		panic(err)
	}
	sim, err := cfg.NewSimulator()
	if err != nil {
		panic(err)
	}
	run, err := sim.Run(gen, cons, batt)
	if err != nil {
		panic(err)
	}

	fmt.Println()
	fmt.Printf("%-10s %-8s %-8s %-8s %-8s %-12s %-8s %-8s\n", "month", "solar", "wind", "load", "net", "action", "net'", "soc")
	for _, s := range run.Steps {
		fmt.Printf("%-10s %-8.3f %-8.3f %-8.3f %-8.3f %-12s %-8.3f %-8.3f\n",
			s.Time.Format("2006-01"),
			s.Generation.Solar,
			s.Generation.Wind,
			s.ConsumptionKW,
			s.NetFlowBeforeKW,
			s.Action,
			s.NetFlowAfterKW,
			s.SOCEndKWh,
		)
	}
	fmt.Printf("Final SOC=%.3f kWh\n", run.FinalSOC)

	if *outCSV != "" {
		if err := dispatch.WriteStepsCSV(*outCSV, run.Steps); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(run.Steps), *outCSV)
	}
}
