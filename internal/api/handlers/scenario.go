package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"expgrowth/internal/api/models"
	"expgrowth/internal/cache"
	"expgrowth/internal/config"
	"expgrowth/internal/model"
	"expgrowth/internal/scenario"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScenarioHandler handles scenario-related requests
type ScenarioHandler struct {
	eval     *scenario.Evaluator
	defaults config.DefaultsConfig
	cache    cache.Cache
}

// NewScenarioHandler creates a new scenario handler. A nil cache disables caching.
func NewScenarioHandler(eval *scenario.Evaluator, defaults config.DefaultsConfig, c cache.Cache) *ScenarioHandler {
	if c == nil {
		c = cache.Nop{}
	}
	return &ScenarioHandler{eval: eval, defaults: defaults, cache: c}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	infos := make([]models.ScenarioInfo, 0, len(model.Scenarios))
	for _, sc := range model.Scenarios {
		info := models.ScenarioInfo{Name: string(sc), Title: sc.Title()}
		for _, p := range sc.Parameters() {
			info.Parameters = append(info.Parameters, models.ParameterInfo{
				Name:        p.Name,
				Type:        p.Type,
				Description: p.Description,
				Min:         p.Range.Min,
				Max:         p.Range.Max,
				Default:     h.defaultValue(sc, p),
			})
		}
		infos = append(infos, info)
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": infos})
}

// defaultValue reports the configured default for p, falling back to the built-in one.
func (h *ScenarioHandler) defaultValue(sc model.Scenario, p model.ParameterSpec) float64 {
	params, _ := h.defaultParams(sc)
	if v, ok := model.FieldValue(params, p.Name); ok {
		return v
	}
	return p.Default
}

// RunScenario handles GET and POST /api/v1/scenarios/:name
func (h *ScenarioHandler) RunScenario(c *gin.Context) {
	sc, err := model.ParseScenario(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_SCENARIO",
				Message: err.Error(),
				Details: map[string]interface{}{"available": model.Scenarios},
			},
		})
		return
	}

	params, clamped, err := h.bindParams(c, sc)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	includeSeries := !strings.EqualFold(c.DefaultQuery("include_series", "true"), "false")

	key, err := cache.Key(string(sc), cacheKeyParams{Params: params, Series: includeSeries})
	if err != nil {
		log.Printf("ScenarioHandler: cache key for %s: %v", sc, err)
	} else if raw, ok := h.cache.Get(c.Request.Context(), key); ok {
		var resp models.ScenarioResponse
		if err := json.Unmarshal(raw, &resp); err == nil {
			resp.ID = uuid.NewString()
			resp.Clamped = clamped
			resp.Cached = true
			c.JSON(http.StatusOK, resp)
			return
		}
		log.Printf("ScenarioHandler: discarding unreadable cache entry %s", key)
	}

	res, err := h.eval.Evaluate(params)
	if err != nil {
		status, code := http.StatusInternalServerError, "EVALUATION_ERROR"
		if errors.Is(err, model.ErrOutOfRange) {
			status, code = http.StatusBadRequest, "INVALID_REQUEST"
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	resp := buildResponse(res, includeSeries)
	if key != "" {
		if raw, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(c.Request.Context(), key, raw); err != nil {
				log.Printf("ScenarioHandler: cache set %s: %v", key, err)
			}
		}
	}

	resp.ID = uuid.NewString()
	resp.Clamped = clamped
	c.JSON(http.StatusOK, resp)
}

type cacheKeyParams struct {
	Params any  `json:"params"`
	Series bool `json:"series"`
}

func buildResponse(res scenario.Result, includeSeries bool) models.ScenarioResponse {
	sc := res.Scenario()
	resp := models.ScenarioResponse{
		Scenario: string(sc),
		Title:    sc.Title(),
		Result:   res,
		Metrics:  res.Metrics(),
	}
	if includeSeries {
		t := res.Table()
		rows := make([][]float64, len(t.Rows))
		for i, row := range t.Rows {
			rows[i] = make([]float64, len(row))
			for j, v := range row {
				rows[i][j] = v.InexactFloat64()
			}
		}
		resp.Series = &models.Series{Columns: t.Columns, Rows: rows}
	}
	return resp
}

func (h *ScenarioHandler) defaultParams(sc model.Scenario) (any, error) {
	switch sc {
	case model.ScenarioChessboard:
		return h.defaults.Chessboard, nil
	case model.ScenarioCompound:
		return h.defaults.Compound, nil
	case model.ScenarioViral:
		return h.defaults.Viral, nil
	case model.ScenarioRevenue:
		return h.defaults.Revenue, nil
	}
	return nil, model.ErrUnknownScenario
}

// bindParams overlays the request onto the configured defaults and clamps the result.
func (h *ScenarioHandler) bindParams(c *gin.Context, sc model.Scenario) (any, []string, error) {
	switch sc {
	case model.ScenarioChessboard:
		return bindAndClamp(c, h.defaults.Chessboard)
	case model.ScenarioCompound:
		return bindAndClamp(c, h.defaults.Compound)
	case model.ScenarioViral:
		return bindAndClamp(c, h.defaults.Viral)
	case model.ScenarioRevenue:
		return bindAndClamp(c, h.defaults.Revenue)
	}
	return nil, nil, model.ErrUnknownScenario
}

type clampable[T any] interface {
	Clamp() T
}

func bindAndClamp[T clampable[T]](c *gin.Context, p T) (any, []string, error) {
	var err error
	if c.Request.Method == http.MethodPost && c.Request.ContentLength != 0 {
		err = c.ShouldBindJSON(&p)
	} else {
		err = c.ShouldBindQuery(&p)
	}
	if err != nil {
		return nil, nil, err
	}
	clamped := p.Clamp()
	return clamped, model.ChangedFields(p, clamped), nil
}
