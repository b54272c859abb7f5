package handlers

import (
	"log"
	"net/http"

	"household-energy-sim/internal/api/models"
	"household-energy-sim/internal/cost"
	"household-energy-sim/internal/mix"
	"household-energy-sim/internal/model"

	"github.com/gin-gonic/gin"
)

// MixHandler handles generation-mix requests
type MixHandler struct {
	unitCosts cost.UnitCostTable
	profile   model.LoadProfile
}

// NewMixHandler creates a handler whose requests fall back to the given economics and load.
func NewMixHandler(unitCosts cost.UnitCostTable, profile model.LoadProfile) *MixHandler {
	return &MixHandler{unitCosts: unitCosts, profile: profile}
}

// SelectMix handles POST /api/v1/mix
func (h *MixHandler) SelectMix(c *gin.Context) {
	var req models.MixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	sel, err := h.selector(req.UnitCosts, req.LoadProfileKWh)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	readings := model.Readings{Solar: req.SolarKWh, Wind: req.WindKWh, Tidal: req.TidalKWh}
	res, err := sel.Select(readings, req.Month)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, convertMix(res))
}

// SelectAnnualMix handles POST /api/v1/mix/annual
func (h *MixHandler) SelectAnnualMix(c *gin.Context) {
	var req models.AnnualMixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	sel, err := h.selector(req.UnitCosts, req.LoadProfileKWh)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	results, err := sel.SelectYear(req.Monthly)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := models.AnnualMixResponse{
		Months:      make([]models.MixResponse, 0, len(results)),
		MonthsUnmet: []int{},
	}
	for _, r := range results {
		resp.Months = append(resp.Months, convertMix(r))
		if r.Met() {
			resp.TotalCost += r.BestCost
		} else {
			resp.MonthsUnmet = append(resp.MonthsUnmet, r.Month)
		}
	}
	log.Printf("MixHandler: annual selection done, %d months unmet", len(resp.MonthsUnmet))
	c.JSON(http.StatusOK, resp)
}

// UnitCosts handles GET /api/v1/unit-costs
// It reports the economics and load a request without overrides is priced against.
func (h *MixHandler) UnitCosts(c *gin.Context) {
	sel, err := h.selector(nil, nil)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"unit_costs":       sel.Estimator().Table(),
		"load_profile_kwh": sel.Profile(),
	})
}

func (h *MixHandler) selector(override *cost.TableOverride, profileKWh []float64) (*mix.Selector, error) {
	table := h.unitCosts
	if override != nil {
		table = table.Merge(*override)
	}
	profile := h.profile
	if len(profileKWh) > 0 {
		p, err := model.LoadProfileFromSlice(profileKWh)
		if err != nil {
			return nil, err
		}
		profile = p
	}
	est, err := cost.NewEstimator(table)
	if err != nil {
		return nil, err
	}
	return mix.NewSelector(est, profile)
}

func convertMix(r *mix.Result) models.MixResponse {
	resp := models.MixResponse{
		Month:        r.Month,
		LoadKWh:      r.LoadKWh,
		Met:          r.Met(),
		Combinations: make([]models.CombinationResult, 0, len(r.Evaluations)),
		BestConfig:   unitsJSON(r.BestConfig),
	}
	for _, ev := range r.Evaluations {
		cr := models.CombinationResult{
			Name:           ev.Combination.Name,
			Sources:        make([]string, 0, len(ev.Combination.Members)),
			TotalEnergyKWh: ev.TotalEnergyKWh,
			Feasible:       ev.Feasible,
		}
		for _, m := range ev.Combination.Members {
			cr.Sources = append(cr.Sources, string(m))
		}
		if ev.Feasible {
			total := ev.Estimate.TotalCost
			cr.Cost = &total
			cr.Units = unitsJSON(ev.Estimate.Units)
		} else {
			deficit := ev.DeficitKWh
			cr.DeficitKWh = &deficit
		}
		resp.Combinations = append(resp.Combinations, cr)
	}
	if r.Best != nil {
		name := r.Best.Name
		best := r.BestCost
		resp.Best = &name
		resp.BestCost = &best
	} else {
		resp.Message = mix.NoCombinationMessage
	}
	return resp
}

func unitsJSON(u cost.Units) map[string]int {
	out := make(map[string]int, len(u))
	for k, n := range u {
		out[string(k)] = n
	}
	return out
}
