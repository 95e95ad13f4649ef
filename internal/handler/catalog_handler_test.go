package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"flag-quiz/internal/domain"
	"flag-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler(t *testing.T) {
	app, svc := newTestApp(t)
	svc.catalog.RegionsFunc = func() *dto.RegionsResponse {
		return &dto.RegionsResponse{Regions: []string{"Americas", "Europe"}}
	}
	svc.catalog.SubregionsFunc = func(region string) *dto.SubregionsResponse {
		assert.Equal(t, "Americas", region)
		return &dto.SubregionsResponse{Region: region, Subregions: []string{"South America"}}
	}
	svc.catalog.PoolFunc = func(region, subregion string) *dto.PoolResponse {
		assert.Equal(t, "Americas", region)
		assert.Equal(t, "South America", subregion)
		return &dto.PoolResponse{
			Region: region, Subregion: subregion, Size: 1,
			Countries: []domain.Country{{Name: "Brazil", Code: "br", Region: region, Subregion: subregion}},
		}
	}

	resp, body := doRequest(t, app, http.MethodGet, "/api/catalog/regions", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"regions":["Americas","Europe"]}`, string(body))

	resp, body = doRequest(t, app, http.MethodGet, "/api/catalog/subregions?region=Americas", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "South America")

	resp, body = doRequest(t, app, http.MethodGet, "/api/catalog/pool?region=Americas&subregion=South%20America", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var pool dto.PoolResponse
	require.NoError(t, json.Unmarshal(body, &pool))
	assert.Equal(t, 1, pool.Size)
	assert.False(t, pool.Playable)
}

func TestHealthHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, body := doRequest(t, app, http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"ok","cache":"ok","countries":2}`, string(body))
	})

	t.Run("cache down", func(t *testing.T) {
		app, svc := newTestApp(t)
		svc.cache.PingErr = errors.New("dial tcp: connection refused")
		resp, body := doRequest(t, app, http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Contains(t, string(body), "unreachable")
	})
}
