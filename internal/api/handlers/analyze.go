package handlers

import (
	"net/http"

	"cooling-expander/internal/analysis"
	"cooling-expander/internal/api/models"
	"cooling-expander/internal/expand"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler handles trade-off analysis requests
type AnalyzeHandler struct {
	variantDir string
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler() *AnalyzeHandler {
	return &AnalyzeHandler{variantDir: VariantDir()}
}

// AnalyzeTradeoffs handles POST /api/v1/analyze
func (h *AnalyzeHandler) AnalyzeTradeoffs(c *gin.Context) {
	var req models.AnalyzeRequest
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

	ranked := analysis.RankByWithdrawalSpread(result.CompositesByBase())
	resp := models.AnalyzeResponse{}
	for i, r := range ranked {
		resp.Tradeoffs = append(resp.Tradeoffs, models.Tradeoff{
			Rank:                    i + 1,
			Base:                    r.Base,
			Count:                   r.Count,
			MaxEfficiency:           r.MaxEfficiency,
			MinEfficiency:           r.MinEfficiency,
			MaxWithdrawalM3:         r.MaxWithdrawalM3,
			MinWithdrawalM3:         r.MinWithdrawalM3,
			WithdrawalSpreadM3:      r.WithdrawalSpreadM3,
			WaterPerEfficiencyPoint: r.WaterPerEfficiencyPoint,
			DriestVariant:           r.DriestVariant,
			ThirstiestVariant:       r.ThirstiestVariant,
		})
	}

	c.JSON(http.StatusOK, resp)
}
