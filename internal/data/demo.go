package data

import (
	"sort"
	"time"

	"household-energy-sim/internal/model"
)

// Stand-ins for the irradiance, wind and load acquisition that normally lives
// outside this module. Good enough to exercise the simulator end to end.

// PVWattsDC is the DC output in kW of an array rated pdc0KW at 1000 W/m²,
// with no temperature derating.
func PVWattsDC(irradianceWm2, pdc0KW float64) float64 {
	if irradianceWm2 <= 0 {
		return 0
	}
	return pdc0KW * irradianceWm2 / 1000
}

// CurvePoint is one (wind speed, output) pair of a turbine power curve.
type CurvePoint struct {
	SpeedMS float64
	PowerKW float64
}

// PowerCurve maps hub-height wind speed to output by linear interpolation.
// Speeds outside the table produce 0 (below cut-in, above cut-out).
type PowerCurve []CurvePoint

// SmallTurbineCurve approximates a 5 kW residential turbine.
var SmallTurbineCurve = PowerCurve{
	{3, 0}, {4, 0.25}, {5, 0.6}, {6, 1.1}, {7, 1.75}, {8, 2.6},
	{9, 3.5}, {10, 4.3}, {11, 5}, {20, 5}, {25, 5},
}

func (c PowerCurve) Power(speedMS float64) float64 {
	if len(c) == 0 {
		return 0
	}
	pts := c
	if !sort.SliceIsSorted(pts, func(i, j int) bool { return pts[i].SpeedMS < pts[j].SpeedMS }) {
		pts = append(PowerCurve(nil), c...)
		sort.Slice(pts, func(i, j int) bool { return pts[i].SpeedMS < pts[j].SpeedMS })
	}
	if speedMS < pts[0].SpeedMS || speedMS > pts[len(pts)-1].SpeedMS {
		return 0
	}
	i := sort.Search(len(pts), func(i int) bool { return pts[i].SpeedMS >= speedMS })
	if pts[i].SpeedMS == speedMS {
		return pts[i].PowerKW
	}
	lo, hi := pts[i-1], pts[i]
	frac := (speedMS - lo.SpeedMS) / (hi.SpeedMS - lo.SpeedMS)
	return lo.PowerKW + frac*(hi.PowerKW-lo.PowerKW)
}

// DemoPoints is the length of the reference demo series.
const DemoPoints = 24

// DemoSeries is the reference run: one sample per month from January 2024,
// a 4 kW array under irradiance 400+50i W/m², a small turbine under wind
// 5+0.1i m/s and a household drawing 2+0.5*(i mod 4) kW.
func DemoSeries() ([]model.GenerationSample, []model.ConsumptionSample) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gen := make([]model.GenerationSample, DemoPoints)
	cons := make([]model.ConsumptionSample, DemoPoints)
	for i := 0; i < DemoPoints; i++ {
		ts := start.AddDate(0, i, 0)
		irr := 400 + 50*float64(i)
		wind := 5 + 0.1*float64(i)
		gen[i] = model.GenerationSample{
			Time: ts,
			Readings: model.Readings{
				Solar: PVWattsDC(irr, 4),
				Wind:  SmallTurbineCurve.Power(wind),
			},
		}
		cons[i] = model.ConsumptionSample{Time: ts, PowerKW: 2 + 0.5*float64(i%4)}
	}
	return gen, cons
}
