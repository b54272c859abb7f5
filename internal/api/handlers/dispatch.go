package handlers

import (
	"net/http"

	"household-energy-sim/internal/analysis"
	"household-energy-sim/internal/api/models"
	"household-energy-sim/internal/config"
	"household-energy-sim/internal/data"
	"household-energy-sim/internal/dispatch"
	"household-energy-sim/internal/policy"

	"github.com/gin-gonic/gin"
)

// DispatchHandler handles battery dispatch requests
type DispatchHandler struct {
	cache     *data.ResultCache
	batteries *BatteryHandler
}

func NewDispatchHandler(cache *data.ResultCache, batteries *BatteryHandler) *DispatchHandler {
	return &DispatchHandler{cache: cache, batteries: batteries}
}

// RunDispatch handles POST /api/v1/dispatch
func (h *DispatchHandler) RunDispatch(c *gin.Context) {
	var req models.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	batteryCfg := config.DefaultBattery()
	if req.BatteryFile != "" {
		preset, err := h.batteries.Resolve(req.BatteryFile)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "INVALID_BATTERY", err.Error())
			return
		}
		batteryCfg = config.MergeBattery(batteryCfg, preset)
	}
	batteryCfg = config.MergeBattery(batteryCfg, req.Battery)

	batt, err := batteryCfg.NewBattery()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_BATTERY", err.Error())
		return
	}

	sim, err := newSimulator(req.IntervalHours, req.Policy)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	res, err := sim.Run(req.Generation, req.Consumption, batt)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	id := h.cache.Put(res)
	resp := models.DispatchResponse{
		ID:      id,
		Status:  "completed",
		Summary: buildSummary(res),
	}
	if req.IncludeSteps {
		resp.Steps = convertSteps(res.Steps)
	}
	c.JSON(http.StatusOK, resp)
}

// GetSteps handles GET /api/v1/dispatch/:id/steps
func (h *DispatchHandler) GetSteps(c *gin.Context) {
	id := c.Param("id")
	res, ok := h.cache.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", "dispatch result not found or expired")
		return
	}
	c.JSON(http.StatusOK, models.StepsResponse{ID: id, Steps: convertSteps(res.Steps)})
}

// Sizing handles POST /api/v1/dispatch/sizing
func (h *DispatchHandler) Sizing(c *gin.Context) {
	var req models.SizingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	sim, err := newSimulator(req.IntervalHours, "")
	if err != nil {
		respondDomainError(c, err)
		return
	}
	base := config.MergeBattery(config.DefaultBattery(), req.Battery).ToModelParams()
	outcomes, err := analysis.SweepCapacities(sim, req.Generation, req.Consumption, base, req.CapacitiesKWh, req.InitialSOCFraction)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := models.SizingResponse{Results: make([]models.SizingResult, 0, len(outcomes))}
	for i, o := range outcomes {
		resp.Results = append(resp.Results, models.SizingResult{
			Rank:                i + 1,
			CapacityKWh:         o.CapacityKWh,
			FinalSOCKWh:         o.FinalSOC,
			ResidualDeficitKWh:  o.ResidualDeficitKWh,
			ResidualSurplusKWh:  o.ResidualSurplusKWh,
			EnergyDischargedKWh: o.EnergyDischargedKWh,
			SelfSufficiency:     o.SelfSufficiency,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func newSimulator(intervalHours float64, policyName string) (*dispatch.Simulator, error) {
	if intervalHours == 0 {
		intervalHours = dispatch.DefaultIntervalHours
	}
	p, err := policy.Build(policyName)
	if err != nil {
		return nil, err
	}
	return dispatch.New(intervalHours, p)
}

func buildSummary(res *dispatch.Result) models.DispatchSummary {
	s := models.DispatchSummary{
		Policy:              res.Policy,
		FinalSOCKWh:         res.FinalSOC,
		TotalIntervals:      res.Summary.Intervals,
		EnergyChargedKWh:    res.Summary.EnergyChargedKWh,
		EnergyDischargedKWh: res.Summary.EnergyDischargedKWh,
		ResidualSurplusKWh:  res.Summary.ResidualSurplusKWh,
		ResidualDeficitKWh:  res.Summary.ResidualDeficitKWh,
		ConsumptionKWh:      res.Summary.ConsumptionKWh,
		SelfSufficiency:     res.Summary.SelfSufficiency,
	}
	if n := len(res.Steps); n > 0 {
		s.Window = models.TimeWindow{Start: res.Steps[0].Time, End: res.Steps[n-1].Time}
	}
	return s
}

func convertSteps(steps []dispatch.Step) []models.StepRow {
	out := make([]models.StepRow, len(steps))
	for i, s := range steps {
		out[i] = models.StepRow{
			Index:                s.Index,
			Time:                 s.Time,
			SolarKW:              s.Generation.Solar,
			WindKW:               s.Generation.Wind,
			TidalKW:              s.Generation.Tidal,
			GenerationKW:         s.GenerationKW,
			ConsumptionKW:        s.ConsumptionKW,
			NetFlowBeforeKW:      s.NetFlowBeforeKW,
			Action:               string(s.Action),
			ChargeDrawnKWh:       s.ChargeDrawnKWh,
			DischargeSuppliedKWh: s.DischargeSuppliedKWh,
			NetFlowAfterKW:       s.NetFlowAfterKW,
			SOCStartKWh:          s.SOCStartKWh,
			SOCEndKWh:            s.SOCEndKWh,
		}
	}
	return out
}
