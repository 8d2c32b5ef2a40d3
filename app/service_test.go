package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/ecoroute/config"
	"github.com/kilianp07/ecoroute/core/factory"
	"github.com/kilianp07/ecoroute/core/model"
	"github.com/kilianp07/ecoroute/core/regression"
)

func writeModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eco_model.json")
	conf := regression.LinearConf{
		Coefficients: [][]float64{
			{0.08, 0, 0, 0, 0, 0.0005, 0, -0.5},
			{0.18, 0, 0, 0, 0, 0.001, 0, -1},
		},
		Intercepts: []float64{0, 0},
	}
	require.NoError(t, regression.Save(path, regression.LinearArtifact(conf)))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Model.Path = writeModel(t)
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Routing.Disabled = true
	return cfg
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewMissingModel(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Path = filepath.Join(t.TempDir(), "absent.json")
	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, regression.ErrArtifactNotFound))
}

func TestNewUnknownSink(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Sinks = []factory.ModuleConfig{{Type: "carrier-pigeon"}}
	_, err := New(cfg)
	assert.True(t, errors.Is(err, factory.ErrUnknownType))
}

func TestServicePredict(t *testing.T) {
	svc, err := New(testConfig(t))
	require.NoError(t, err)
	defer func() { _ = svc.Close() }()

	rec := do(t, svc.Handler(), http.MethodPost, "/predict", `{"distance_km":100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	// 100 km with the car reference weight of 1200 kg on a fast route.
	var res model.PredictionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 8.6, res.FuelL, 1e-9)
	assert.InDelta(t, 19.2, res.CO2Kg, 1e-9)
	assert.Nil(t, res.EnergyKWh)

	rec = do(t, svc.Handler(), http.MethodPost, "/api/route", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServiceRouteComparison(t *testing.T) {
	osrmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[
			{"distance":20000,"duration":1200,"geometry":{"type":"LineString","coordinates":[[2.35,48.85],[2.12,48.80]]}},
			{"distance":18000,"duration":1500,"geometry":{"type":"LineString","coordinates":[[2.35,48.85],[2.20,48.83],[2.12,48.80]]}}
		]}`))
	}))
	defer osrmSrv.Close()

	cfg := testConfig(t)
	cfg.Routing.Disabled = false
	cfg.Routing.OSRM.BaseURL = osrmSrv.URL
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { _ = svc.Close() }()

	body := `{"source":{"lat":48.85,"lng":2.35},"destination":{"lat":48.80,"lng":2.12}}`
	rec := do(t, svc.Handler(), http.MethodPost, "/api/route", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"preferred_route":"eco"`)
	assert.Contains(t, rec.Body.String(), `"co2_saved_percent"`)
}

func TestServiceRunStopsOnCancel(t *testing.T) {
	svc, err := New(testConfig(t))
	require.NoError(t, err)
	defer func() { _ = svc.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("service did not stop")
	}
}
