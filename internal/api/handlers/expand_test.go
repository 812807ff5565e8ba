package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cooling-expander/internal/api/models"
	"cooling-expander/internal/scenario"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	h := NewExpandHandler(scenario.NewStore(), log)
	r := gin.New()
	r.POST("/api/v1/expand", h.RunExpansion)
	r.GET("/api/v1/expansions/:id/records", h.GetRecords)
	return r
}

func coalRequest() models.ExpandRequest {
	return models.ExpandRequest{
		Config: models.ExpansionConfig{
			Scenario: models.ScenarioConfig{Periods: []int{2020}, Nodes: []string{"Austria"}},
			Technologies: []models.TechnologyConfig{
				{ID: "coal_ppl", Efficiency: 0.35, OutputCapacityMW: 600, VariableCost: 100},
			},
			Variants: []models.VariantConfig{
				{ID: "ot_fresh", EfficiencyPenalty: 0.02, CostDelta: 5, WithdrawalRate: 2.5, ConsumptionRate: 0.1},
				{ID: "air", EfficiencyPenalty: 0.05, CostDelta: 15},
			},
			Bounds: map[string]models.BoundsConfig{
				"coal_ppl": {Min: 0.1, Max: 0.9},
			},
		},
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunExpansion_OK(t *testing.T) {
	r := testRouter()

	req := coalRequest()
	req.Options.IncludeRecords = true
	w := postJSON(t, r, "/api/v1/expand", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ExpandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Summary.BasesExpanded)
	assert.Equal(t, 2, resp.Summary.Composites)
	assert.Equal(t, 1, resp.Summary.Constraints)
	require.NotNil(t, resp.Records)
	assert.Len(t, resp.Records.Technologies, 2)
	assert.Empty(t, resp.ID) // not stored unless requested
}

func TestRunExpansion_StoreAndFetchRecords(t *testing.T) {
	r := testRouter()

	req := coalRequest()
	req.Options.Store = true
	w := postJSON(t, r, "/api/v1/expand", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ExpandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)

	get := httptest.NewRequest(http.MethodGet, "/api/v1/expansions/"+resp.ID+"/records", nil)
	gw := httptest.NewRecorder()
	r.ServeHTTP(gw, get)
	require.Equal(t, http.StatusOK, gw.Code)

	var doc scenario.Document
	require.NoError(t, json.Unmarshal(gw.Body.Bytes(), &doc))
	assert.Len(t, doc.Technologies, 2)
	assert.Len(t, doc.Shares, 1)
}

func TestRunExpansion_Errors(t *testing.T) {
	r := testRouter()

	t.Run("invalid config caught before expansion", func(t *testing.T) {
		req := coalRequest()
		req.Config.Scenario.Periods = nil
		w := postJSON(t, r, "/api/v1/expand", req)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)
	})

	t.Run("expansion configuration error", func(t *testing.T) {
		req := coalRequest()
		req.Config.Bounds["gas_ppl"] = models.BoundsConfig{Min: 0, Max: 1}
		w := postJSON(t, r, "/api/v1/expand", req)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "CONFIGURATION_ERROR", resp.Error.Code)
	})
}

func TestGetRecords_NotFound(t *testing.T) {
	r := testRouter()

	get := httptest.NewRequest(http.MethodGet, "/api/v1/expansions/nope/records", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, get)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
