package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"cooling-expander/internal/api/models"
	"cooling-expander/internal/config"
	"cooling-expander/internal/expand"
	"cooling-expander/internal/scenario"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExpandHandler handles expansion-related requests
type ExpandHandler struct {
	store      *scenario.Store
	variantDir string
	log        *logrus.Logger
}

// NewExpandHandler creates a new expand handler
func NewExpandHandler(store *scenario.Store, log *logrus.Logger) *ExpandHandler {
	return &ExpandHandler{store: store, variantDir: VariantDir(), log: log}
}

// RunExpansion handles POST /api/v1/expand
func (h *ExpandHandler) RunExpansion(c *gin.Context) {
	var req models.ExpandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := BuildConfig(req.Config, h.variantDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	engine := expand.New()
	result, err := engine.Run(cfg.ToInputs())
	if err != nil {
		status, code := classifyExpandError(err)
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.ExpandResponse{
		Status: "ok",
		Summary: models.ExpandSummary{
			BasesExpanded: result.Summary.BasesExpanded,
			BasesExempt:   result.Summary.BasesExempt,
			Composites:    result.Summary.Composites,
			Constraints:   result.Summary.Constraints,
			Periods:       result.Summary.Periods,
			Nodes:         result.Summary.Nodes,
		},
	}

	if req.Options.Store {
		resp.ID = h.store.Put(result)
	}
	if req.Options.IncludeRecords {
		resp.Records = scenario.BuildDocument("", "", result, req.Options.IncludeSupply)
	}

	h.log.WithFields(logrus.Fields{
		"composites":  result.Summary.Composites,
		"constraints": result.Summary.Constraints,
	}).Info("expansion complete")

	c.JSON(http.StatusOK, resp)
}

// GetRecords handles GET /api/v1/expansions/:id/records
func (h *ExpandHandler) GetRecords(c *gin.Context) {
	id := c.Param("id")
	result, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no stored expansion with that id (results expire)",
			},
		})
		return
	}

	includeSupply := c.Query("include_supply") == "true"
	c.JSON(http.StatusOK, scenario.BuildDocument("", "", result, includeSupply))
}

// BuildConfig converts an inline API config into the validated config value.
// A variant_file reference is resolved against variantDir (see VariantDir).
func BuildConfig(in models.ExpansionConfig, variantDir string) (*config.Config, error) {
	cfg := &config.Config{
		Scenario: config.ScenarioConfig{
			Periods: in.Scenario.Periods,
			Nodes:   in.Scenario.Nodes,
		},
		Bounds: make(map[string]config.BoundsConfig, len(in.Bounds)),
	}
	for _, t := range in.Technologies {
		cfg.Technologies = append(cfg.Technologies, config.TechnologyConfig{
			ID:               t.ID,
			Efficiency:       t.Efficiency,
			OutputCapacityMW: t.OutputCapacityMW,
			VariableCost:     t.VariableCost,
			Fuel:             t.Fuel,
			LifetimeYears:    t.LifetimeYears,
			Exempt:           t.Exempt,
			CoolingVariants:  t.CoolingVariants,
		})
	}
	for _, v := range in.Variants {
		cfg.Variants = append(cfg.Variants, config.VariantConfig{
			ID:                v.ID,
			EfficiencyPenalty: v.EfficiencyPenalty,
			CostDelta:         v.CostDelta,
			WithdrawalRate:    v.WithdrawalRate,
			ConsumptionRate:   v.ConsumptionRate,
			ParasiticLoad:     v.ParasiticLoad,
		})
	}
	for id, b := range in.Bounds {
		cfg.Bounds[id] = config.BoundsConfig{Min: b.Min, Max: b.Max}
	}
	if in.VariantFile != "" {
		path := in.VariantFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(variantDir, path)
		}
		loaded, err := config.LoadVariantFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Variants = config.MergeVariants(loaded, cfg.Variants)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// classifyExpandError maps the expander's typed errors onto response codes.
func classifyExpandError(err error) (int, string) {
	var cfgErr *expand.ConfigError
	var boundsErr *expand.BoundsError
	var dupErr *expand.DuplicateIDError
	switch {
	case errors.As(err, &boundsErr):
		return http.StatusBadRequest, "BOUNDS_ERROR"
	case errors.As(err, &dupErr):
		return http.StatusBadRequest, "DUPLICATE_IDENTIFIER"
	case errors.As(err, &cfgErr):
		return http.StatusBadRequest, "CONFIGURATION_ERROR"
	default:
		return http.StatusInternalServerError, "EXPANSION_ERROR"
	}
}
