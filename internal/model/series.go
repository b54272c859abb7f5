package model

import "time"

// GenerationSample is the per-source output (kW) for one interval.
type GenerationSample struct {
	Time     time.Time `json:"time"`
	Readings Readings  `json:"readings"`
}

// ConsumptionSample is the household demand (kW) for one interval.
type ConsumptionSample struct {
	Time    time.Time `json:"time"`
	PowerKW float64   `json:"power_kw"`
}

// CheckAlignment verifies both series share one strictly increasing time index.
func CheckAlignment(gen []GenerationSample, cons []ConsumptionSample) error {
	if len(gen) != len(cons) {
		return &AlignmentError{Index: -1, Reason: "generation and consumption lengths differ"}
	}
	for i := range gen {
		if !gen[i].Time.Equal(cons[i].Time) {
			return &AlignmentError{Index: i, Reason: "generation and consumption timestamps differ"}
		}
		if i > 0 && !gen[i].Time.After(gen[i-1].Time) {
			return &AlignmentError{Index: i, Reason: "timestamps are not strictly increasing"}
		}
	}
	return nil
}
