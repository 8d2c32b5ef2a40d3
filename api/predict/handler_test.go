package predict

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/ecoroute/api"
	"github.com/kilianp07/ecoroute/core/adjust"
	"github.com/kilianp07/ecoroute/core/model"
	"github.com/kilianp07/ecoroute/core/prediction"
	"github.com/kilianp07/ecoroute/core/regression"
	"github.com/kilianp07/ecoroute/infra/logger"
)

func serve(t *testing.T, pred prediction.Predictor, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := api.NewServer(logger.NopLogger{}, NewHandler(pred, logger.NopLogger{}))
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPredictAppliesDefaults(t *testing.T) {
	pred := &prediction.MockPredictor{Result: model.PredictionResult{FuelL: 1.2, CO2Kg: 2.8}}
	rec := serve(t, pred, http.MethodPost, "/predict", `{"distance_km": 12.5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"fuel_l":1.2,"co2_kg":2.8}`, rec.Body.String())

	reqs := pred.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, model.NewTripRequest(12.5), reqs[0])
}

func TestPredictFullPayload(t *testing.T) {
	pred := &prediction.MockPredictor{}
	body := `{"distance_km":40,"elevation_gain_m":120,"avg_speed_kph":65,"turns":14,"humps":3,
		"weight_kg":3100,"traffic_index":1.4,"route_type":"scenic","vehicle":"van"}`
	rec := serve(t, pred, http.MethodPost, "/predict", body)
	require.Equal(t, http.StatusOK, rec.Code)

	got := pred.Requests()[0]
	assert.Equal(t, 120.0, got.ElevationGainM)
	assert.Equal(t, 65.0, got.AvgSpeedKph)
	assert.Equal(t, 14, got.Turns)
	assert.Equal(t, 3, got.Humps)
	assert.Equal(t, 3100.0, got.WeightKg)
	assert.Equal(t, 1.4, got.TrafficIndex)
	assert.Equal(t, model.RouteOther, got.RouteType)
	assert.Equal(t, "scenic", got.RouteName)
	assert.Equal(t, model.VehicleVan, got.Vehicle)
}

func TestPredictValidation(t *testing.T) {
	cases := map[string]string{
		"missing distance":   `{"vehicle":"car"}`,
		"negative distance":  `{"distance_km":-1}`,
		"negative elevation": `{"distance_km":1,"elevation_gain_m":-5}`,
		"negative turns":     `{"distance_km":1,"turns":-2}`,
		"negative humps":     `{"distance_km":1,"humps":-1}`,
		"fractional turns":   `{"distance_km":1,"turns":2.5}`,
		"string distance":    `{"distance_km":"far"}`,
		"not json":           `distance=3`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			pred := &prediction.MockPredictor{}
			rec := serve(t, pred, http.MethodPost, "/predict", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var er api.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &er))
			assert.NotEmpty(t, er.Message)
			assert.Empty(t, pred.Requests())
		})
	}
}

func TestPredictZeroDistanceIsValid(t *testing.T) {
	pred := &prediction.MockPredictor{}
	rec := serve(t, pred, http.MethodPost, "/predict", `{"distance_km":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPredictModelError(t *testing.T) {
	pred := &prediction.MockPredictor{Err: errors.New("boom")}
	rec := serve(t, pred, http.MethodPost, "/predict", `{"distance_km":3}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"prediction failed"}`, rec.Body.String())
}

func TestPredictElectricEndToEnd(t *testing.T) {
	engine, err := prediction.NewEngine(&regression.MockRegressor{Out: regression.Output{FuelL: 6, CO2Kg: 14}},
		adjust.New(adjust.Config{}), nil, logger.NopLogger{})
	require.NoError(t, err)

	rec := serve(t, engine, http.MethodPost, "/predict", `{"distance_km":100,"vehicle":"ev"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"fuel_l":0,"energy_kwh":20,"co2_kg":0}`, rec.Body.String())

	rec = serve(t, engine, http.MethodPost, "/predict", `{"distance_km":100,"vehicle":"bike"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res model.PredictionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 6.0, res.FuelL)
	assert.InDelta(t, 2.8, res.CO2Kg, 1e-9)
	assert.Nil(t, res.EnergyKWh)
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	rec := serve(t, &prediction.MockPredictor{}, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","contract":"trip-v2"}`, rec.Body.String())

	rec = serve(t, &prediction.MockPredictor{}, http.MethodGet, "/predict", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = serve(t, &prediction.MockPredictor{}, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
}
