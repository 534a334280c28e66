package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/gridiron-sim/internal/engine"
	"github.com/stitts-dev/gridiron-sim/internal/matrix"
	"github.com/stitts-dev/gridiron-sim/internal/stream"
	"github.com/stitts-dev/gridiron-sim/pkg/config"
	"github.com/stitts-dev/gridiron-sim/pkg/utils"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := matrix.NewStore()
	require.NoError(t, err)
	eng, err := engine.New(store, nil)
	require.NoError(t, err)

	cfg := &config.Config{MaxSimulations: 1000}
	hub := stream.NewHub()
	go hub.Run()

	h := NewSimulationHandler(eng, hub, cfg)
	ch := NewCalibrationHandler(eng, cfg)

	r := gin.New()
	r.POST("/simulate/pass", h.SimulatePass)
	r.POST("/simulate/punt", h.SimulatePunt)
	r.POST("/simulate/batch", h.SimulateBatch)
	r.POST("/calibration/run", ch.RunCalibration)
	r.GET("/health", NewHealthHandler(eng).GetHealth)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSimulatePassEndpoint(t *testing.T) {
	r := testRouter(t)
	seed := int64(7)

	w := postJSON(t, r, "/simulate/pass", map[string]interface{}{
		"down":           1,
		"yards_to_go":    10,
		"field_position": 35,
		"formation":      "shotgun",
		"defensive_call": "zone",
		"seed":           seed,
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pass", data["family"])
	assert.NotEmpty(t, data["outcome"])
}

func TestSimulatePassRejectsBadBody(t *testing.T) {
	r := testRouter(t)

	// Missing required formation and defensive call.
	w := postJSON(t, r, "/simulate/pass", map[string]interface{}{
		"down":        1,
		"yards_to_go": 10,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, utils.ErrCodeValidation, resp.Error.Code)
}

func TestSimulatePuntEndpoint(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/simulate/punt", map[string]interface{}{
		"down":           4,
		"yards_to_go":    8,
		"field_position": 50,
		"formation":      "punt",
		"defensive_call": "punt_return",
		"personnel": map[string]interface{}{
			"punter": map[string]interface{}{
				"leg_strength": 80,
				"hang_time":    75,
				"placement":    70,
				"composure":    65,
			},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeResponse(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "punt", data["family"])
}

func TestSimulateBatchEndpoint(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/simulate/batch", map[string]interface{}{
		"down":           1,
		"yards_to_go":    10,
		"field_position": 30,
		"formation":      "shotgun",
		"defensive_call": "man",
		"plays":          200,
		"seed":           int64(3),
	})

	require.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeResponse(t, w).Data.(map[string]interface{})
	require.True(t, ok)

	assert.EqualValues(t, 200, data["plays"])
	assert.NotEmpty(t, data["session_id"])

	outcomes, ok := data["outcomes"].(map[string]interface{})
	require.True(t, ok)
	total := 0.0
	for _, n := range outcomes {
		total += n.(float64)
	}
	assert.EqualValues(t, 200, total)
}

func TestSimulateBatchRejectsOversizedRun(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/simulate/batch", map[string]interface{}{
		"down":           1,
		"yards_to_go":    10,
		"formation":      "shotgun",
		"defensive_call": "man",
		"plays":          5000, // above the 1000 cap in the test config
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalibrationEndpointRejectsOversizedSample(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/calibration/run", map[string]interface{}{
		"pass_samples": 100000,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalibrationEndpointRunsSmallSample(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/calibration/run", map[string]interface{}{
		"pass_samples": 1000,
		"punt_samples": 1000,
		"seed":         int64(1),
	})

	require.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeResponse(t, w).Data.(map[string]interface{})
	require.True(t, ok)

	reports, ok := data["reports"].([]interface{})
	require.True(t, ok)
	assert.Len(t, reports, 2)
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "gridiron-sim", body["service"])
	assert.EqualValues(t, 9, body["concepts"])
}
