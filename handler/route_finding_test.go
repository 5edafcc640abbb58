package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kochi-transit/algo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g, err := algo.BuildDefaultNetwork()
	require.NoError(t, err)
	Graph = g

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/routes/find", FindRoutes)
		api.GET("/locations", GetLocations)
		api.GET("/locations/search", SearchLocations)
		api.GET("/locations/:name", GetLocationByName)
	}
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFindRoutesOK(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/api/routes/find", RouteRequest{Start: "Aluva Metro", End: "Pulinchodu Metro"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, 5.0, resp.Routes[0].TotalCost)
	assert.Equal(t, "start", resp.Routes[0].Path[0].Mode)
}

func TestFindRoutesBadRequests(t *testing.T) {
	r := setupTestRouter(t)

	// 缺少必填字段
	w := postJSON(r, "/api/routes/find", gin.H{"start": "Aluva Metro"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 起点终点相同
	w = postJSON(r, "/api/routes/find", RouteRequest{Start: "Aluva Metro", End: "Aluva Metro"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 地点不存在
	w = postJSON(r, "/api/routes/find", RouteRequest{Start: "NoSuchPlace", End: "Fort Kochi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLocations(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count     int `json:"count"`
		Locations []struct {
			Name string `json:"name"`
		} `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 43, resp.Count)
	assert.Len(t, resp.Locations, 43)
}

func TestGetLocationByName(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/locations/Lulu%20Mall%20Edapally", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/locations/NoSuchPlace", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchLocations(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/locations/search?q=metro", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 23, resp.Count)

	// 缺少关键词
	req = httptest.NewRequest(http.MethodGet, "/api/locations/search", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
