package data

import (
	"encoding/json"
	"fmt"
	"os"

	"household-energy-sim/internal/model"
)

// SeriesFile is the JSON shape of a dispatch input file.
//
// Example:
//
//	{
//	  "generation":  [{"time": "2024-01-01T00:00:00Z", "readings": {"solar": 1.6, "wind": 0.4}}],
//	  "consumption": [{"time": "2024-01-01T00:00:00Z", "power_kw": 2.0}]
//	}
type SeriesFile struct {
	Generation  []model.GenerationSample  `json:"generation"`
	Consumption []model.ConsumptionSample `json:"consumption"`
}

// MonthlyFile is the JSON shape of an annual mix input file: twelve readings, January first.
type MonthlyFile struct {
	Monthly []model.Readings `json:"monthly"`
}

func LoadSeriesJSON(path string) (*SeriesFile, error) {
	var f SeriesFile
	if err := loadJSON(path, &f); err != nil {
		return nil, err
	}
	if err := model.CheckAlignment(f.Generation, f.Consumption); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

func LoadMonthlyJSON(path string) (*MonthlyFile, error) {
	var f MonthlyFile
	if err := loadJSON(path, &f); err != nil {
		return nil, err
	}
	if len(f.Monthly) != model.MonthsPerYear {
		return nil, fmt.Errorf("%s: %w", path, &model.InputError{Field: "monthly", Reason: fmt.Sprintf("expected %d entries, got %d", model.MonthsPerYear, len(f.Monthly))})
	}
	return &f, nil
}

func loadJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
