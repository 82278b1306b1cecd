package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblagrange/curve"
	"github.com/sgostarter/liblagrange/solver"
	"github.com/stretchr/testify/assert"
)

func utHandler() http.Handler {
	return NewHandler(solver.NewSolver(nil, nil), 0, l.NewConsoleLoggerWrapper())
}

func doCompute(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/compute", strings.NewReader(body)))

	var m map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &m))

	return w, m
}

func TestCompute(t *testing.T) {
	w, m := doCompute(t, utHandler(), `{"points":[{"x":0,"y":1},{"x":1,"y":3},{"x":2,"y":2}],"x":1.5}`)
	assert.EqualValues(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2.875, m["interpolatedValue"])
	assert.NotEmpty(t, m["requestID"])
	assert.Len(t, m["termDisplays"], 3)
	assert.Len(t, m["trace"], 3)

	var resp struct {
		PlotPoints []curve.PlotPoint `json:"plotPoints"`
	}

	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))

	p, ok := curve.Find(resp.PlotPoints, 1.5, curve.DefaultTolerance)
	assert.True(t, ok)
	assert.EqualValues(t, 2.875, *p.Target)
}

func TestComputeErrors(t *testing.T) {
	h := utHandler()

	w, m := doCompute(t, h, `{"points":[{"x":1,"y":1},{"x":1,"y":2}],"x":0}`)
	assert.EqualValues(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, "duplicate_x", m["kind"])

	w, m = doCompute(t, h, `{"points":[],"x":0}`)
	assert.EqualValues(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, "empty_input", m["kind"])

	w, m = doCompute(t, h, `{"points":[{"x":0,"y":1e308},{"x":1,"y":1e308}],"x":10}`)
	assert.EqualValues(t, http.StatusUnprocessableEntity, w.Code)
	assert.EqualValues(t, "numeric_instability", m["kind"])

	// overflows to -Inf without becoming NaN
	w, m = doCompute(t, h, `{"points":[{"x":0,"y":1e308},{"x":1,"y":-1e308}],"x":10}`)
	assert.EqualValues(t, http.StatusUnprocessableEntity, w.Code)
	assert.EqualValues(t, "numeric_instability", m["kind"])
	assert.NotEmpty(t, m["requestID"])

	w, m = doCompute(t, h, `{"points":[{"x":0,"y":1}]}`)
	assert.EqualValues(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, errNoQuery.Error(), m["error"])

	w, _ = doCompute(t, h, `{"points":[{"x":0,"y":1}],"x":1,"extra":true}`)
	assert.EqualValues(t, http.StatusBadRequest, w.Code)

	w, m = doCompute(t, h, `{"points":[{"x":0,"y":1}],"x":1} {}`)
	assert.EqualValues(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, "invalid JSON: trailing data", m["error"])

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/compute", nil))
	assert.EqualValues(t, http.StatusMethodNotAllowed, w.Code)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(context.Background(), "")
	assert.Nil(t, err)
	assert.EqualValues(t, defaultListen, cfg.Listen)
	assert.EqualValues(t, defaultMaxBodyBytes, cfg.MaxBodyBytes)

	file := filepath.Join(t.TempDir(), "server.yaml")
	assert.Nil(t, os.WriteFile(file, []byte(`
listen: 127.0.0.1:0
readTimeout: 3s
solver:
  plotIntervals: 50
  cacheEnabled: true
  cacheTTL: 30s
`), 0600))

	cfg, err = LoadConfig(context.Background(), file)
	assert.Nil(t, err)
	assert.EqualValues(t, "127.0.0.1:0", cfg.Listen)
	assert.EqualValues(t, 3*time.Second, cfg.ReadTimeout)
	assert.EqualValues(t, defaultWriteTimeout, cfg.WriteTimeout)
	assert.EqualValues(t, 50, cfg.Solver.PlotIntervals)
	assert.True(t, cfg.Solver.CacheEnabled)
	assert.EqualValues(t, 30*time.Second, cfg.Solver.CacheTTL)
}

func TestServer(t *testing.T) {
	srv, err := NewServer(context.Background(), &Config{Listen: "127.0.0.1:0"}, l.NewConsoleLoggerWrapper())
	assert.Nil(t, err)

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	assert.Nil(t, err)
	assert.EqualValues(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Post("http://"+srv.Addr()+"/compute", "application/json",
		strings.NewReader(`{"points":[{"x":2.5,"y":-4}],"x":7}`))
	assert.Nil(t, err)
	assert.EqualValues(t, http.StatusOK, resp.StatusCode)

	var m map[string]interface{}
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&m))
	_ = resp.Body.Close()
	assert.EqualValues(t, -4, m["interpolatedValue"])

	srv.TriggerStop()
	srv.Wait()
}
