package dispatch

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

var stepsHeader = []string{
	"index",
	"timestamp",
	"generation_kw",
	"solar_kw",
	"wind_kw",
	"tidal_kw",
	"consumption_kw",
	"net_flow_before_kw",
	"action",
	"charge_drawn_kwh",
	"discharge_supplied_kwh",
	"net_flow_after_kw",
	"soc_start_kwh",
	"soc_end_kwh",
}

func WriteStepsCSV(path string, steps []Step) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeStepsCSV(f, steps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func EncodeStepsCSV(out io.Writer, steps []Step) error {
	w := csv.NewWriter(out)
	if err := w.Write(stepsHeader); err != nil {
		return err
	}

	for _, s := range steps {
		row := []string{
			strconv.Itoa(s.Index),
			fmtTime(s.Time),
			fmtFloat(s.GenerationKW),
			fmtFloat(s.Generation.Solar),
			fmtFloat(s.Generation.Wind),
			fmtFloat(s.Generation.Tidal),
			fmtFloat(s.ConsumptionKW),
			fmtFloat(s.NetFlowBeforeKW),
			string(s.Action),
			fmtFloat(s.ChargeDrawnKWh),
			fmtFloat(s.DischargeSuppliedKWh),
			fmtFloat(s.NetFlowAfterKW),
			fmtFloat(s.SOCStartKWh),
			fmtFloat(s.SOCEndKWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
