package model

import "math"

const MonthsPerYear = 12

// LoadProfile is the household demand per calendar month in kWh.
// Index 0 is January.
type LoadProfile [MonthsPerYear]float64

// DefaultLoadProfile is the reference household.
var DefaultLoadProfile = LoadProfile{300, 320, 280, 290, 350, 360, 340, 330, 310, 300, 290, 310}

func LoadProfileFromSlice(values []float64) (LoadProfile, error) {
	var p LoadProfile
	if len(values) != MonthsPerYear {
		return p, inputErrorf("load_profile", "expected %d monthly values, got %d", MonthsPerYear, len(values))
	}
	copy(p[:], values)
	if err := p.Validate(); err != nil {
		return LoadProfile{}, err
	}
	return p, nil
}

func (p LoadProfile) Validate() error {
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return inputErrorf("load_profile", "month %d must be a finite value >= 0, got %v", i+1, v)
		}
	}
	return nil
}

// Month returns the load for a 1-based month number.
func (p LoadProfile) Month(month int) (float64, error) {
	if err := ValidateMonth(month); err != nil {
		return 0, err
	}
	return p[month-1], nil
}

func ValidateMonth(month int) error {
	if month < 1 || month > MonthsPerYear {
		return inputErrorf("month", "must be between 1 and 12, got %d", month)
	}
	return nil
}
