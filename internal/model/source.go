package model

import (
	"math"
	"strings"
)

// SourceKind identifies a generation technology.
// Keep these values stable; they appear in YAML, JSON and CSV output.
type SourceKind string

const (
	Solar SourceKind = "solar"
	Wind  SourceKind = "wind"
	Tidal SourceKind = "tidal"
)

// SourceKinds is the canonical ordering used everywhere a source list is printed.
var SourceKinds = []SourceKind{Solar, Wind, Tidal}

func (k SourceKind) Title() string {
	s := string(k)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Readings holds one value per source for a single period.
// Units depend on the consumer: kWh per month for the mix selector,
// kW per interval for the dispatch simulator.
type Readings struct {
	Solar float64 `json:"solar" yaml:"solar"`
	Wind  float64 `json:"wind" yaml:"wind"`
	Tidal float64 `json:"tidal" yaml:"tidal"`
}

func (r Readings) Get(k SourceKind) float64 {
	switch k {
	case Solar:
		return r.Solar
	case Wind:
		return r.Wind
	case Tidal:
		return r.Tidal
	}
	return 0
}

func (r Readings) Total() float64 {
	return r.Solar + r.Wind + r.Tidal
}

// Only returns a copy with every source outside kinds zeroed.
func (r Readings) Only(kinds ...SourceKind) Readings {
	var out Readings
	for _, k := range kinds {
		switch k {
		case Solar:
			out.Solar = r.Solar
		case Wind:
			out.Wind = r.Wind
		case Tidal:
			out.Tidal = r.Tidal
		}
	}
	return out
}

// Validate rejects negative and non-finite values.
func (r Readings) Validate() error {
	for _, k := range SourceKinds {
		v := r.Get(k)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return inputErrorf(string(k), "must be a finite number, got %v", v)
		}
		if v < 0 {
			return inputErrorf(string(k), "must be >= 0, got %v", v)
		}
	}
	return nil
}

// Combination is a named set of sources evaluated together.
type Combination struct {
	Name    string
	Members []SourceKind
}

func (c Combination) Has(k SourceKind) bool {
	for _, m := range c.Members {
		if m == k {
			return true
		}
	}
	return false
}

// Energy sums the readings of the member sources.
func (c Combination) Energy(r Readings) float64 {
	total := 0.0
	for _, m := range c.Members {
		total += r.Get(m)
	}
	return total
}

func NewCombination(members ...SourceKind) Combination {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Title()
	}
	return Combination{Name: strings.Join(names, " + "), Members: members}
}

// PairCombinations returns the fixed evaluation order of two-source mixes.
// Ties between equally cheap mixes are broken by this order, so do not reorder.
func PairCombinations() []Combination {
	return []Combination{
		NewCombination(Solar, Wind),
		NewCombination(Solar, Tidal),
		NewCombination(Wind, Tidal),
	}
}
