package mix

import (
	"fmt"
	"io"
	"strings"

	"household-energy-sim/internal/model"
)

// NoCombinationMessage is printed when no combination covers the load.
const NoCombinationMessage = "No combination met the energy requirement."

// WriteReport prints the per-combination breakdown and the chosen mix.
func WriteReport(w io.Writer, r *Result) error {
	var b strings.Builder
	if r.Month > 0 {
		fmt.Fprintf(&b, "Load required for month %d: %s kWh\n\n", r.Month, fmtNum(r.LoadKWh))
	} else {
		fmt.Fprintf(&b, "Load required: %s kWh\n\n", fmtNum(r.LoadKWh))
	}

	for _, ev := range r.Evaluations {
		fmt.Fprintf(&b, "Combination: %s\n", ev.Combination.Name)
		fmt.Fprintf(&b, "Total Energy Generated: %s kWh\n", fmtNum(ev.TotalEnergyKWh))
		if ev.Feasible {
			fmt.Fprintf(&b, "Energy requirement met for %s.\n", ev.Combination.Name)
			fmt.Fprintf(&b, "Total Cost: $%.2f\n", ev.Estimate.TotalCost)
			writeUnits(&b, ev.Estimate.Units)
		} else {
			fmt.Fprintf(&b, "Energy requirement not met for %s. Deficit: %s kWh\n", ev.Combination.Name, fmtNum(ev.DeficitKWh))
		}
		b.WriteString("\n")
	}

	if r.Best == nil {
		b.WriteString(NoCombinationMessage + "\n")
	} else {
		fmt.Fprintf(&b, "Best combination: %s with a total cost of $%.2f\n", r.Best.Name, r.BestCost)
		writeUnits(&b, r.BestConfig)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeUnits(b *strings.Builder, units map[model.SourceKind]int) {
	for _, k := range model.SourceKinds {
		n, ok := units[k]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "  %s units: %d\n", k.Title(), n)
	}
}

func fmtNum(x float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.3f", x), "0"), ".")
}
