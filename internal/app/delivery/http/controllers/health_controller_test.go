package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"patientor-service/internal/app/config"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthCheckWithoutRedis(t *testing.T) {
	controller := NewHealthController(zap.NewNop(), nil, &config.InternalConfig{App: config.App{Version: "v1"}})

	rr := httptest.NewRecorder()
	controller.Check(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Status  string `json:"status"`
			Version string `json:"version"`
			Redis   string `json:"redis"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "healthy", body.Data.Status)
	assert.Equal(t, "v1", body.Data.Version)
	assert.Equal(t, "disabled", body.Data.Redis)
}
