package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotku/ai-restaurant/api-gateway/internal/gateway"
	"github.com/dotku/ai-restaurant/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = gateway.Config{
	PickupSvcURL:    "http://pickup-svc",
	AnalyticsSvcURL: "http://analytics-svc",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Upstream(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil)

	tests := []struct {
		path string
		want string
	}{
		{path: "/api/analytics/popular-items", want: "http://analytics-svc"},
		{path: "/api/restaurants/r1/analytics/today", want: "http://analytics-svc"},
		{path: "/api/restaurants/r1/menu-items", want: "http://pickup-svc"},
		{path: "/api/orders", want: "http://pickup-svc"},
		{path: "/functions/v1/ai-suggestions", want: "http://pickup-svc"},
		{path: "/menu", want: ""},
		{path: "/", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			assert.Equal(t, testCase.want, gw.Upstream(testCase.path))
		})
	}
}

func TestGateway_ProxiesToPickup(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://pickup-svc/api/menu-items?category=dessert" &&
			req.Header.Get("Authorization") == "Bearer abc"
	})).Return(okResponse(`[{"id":"m2","name":"Tiramisu"}]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu-items?category=dessert", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Tiramisu")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestGateway_ProxiesToAnalytics(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "analytics-svc" && req.Method == http.MethodGet
	})).Return(okResponse(`{"restaurant_id":"r1"}`), nil).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/restaurants/r1/analytics/today", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "r1")
}

func TestGateway_UpstreamFailure(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, mockClient)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "upstream unavailable")
}

func TestGateway_ServeSPA(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	gw := gateway.NewGateway(gateway.Config{StaticDir: dir}, nil)
	router := gw.SetupRoutes()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "static asset", path: "/assets/app.js", want: "console.log(1)"},
		{name: "client route falls back to index", path: "/orders/abc", want: "app"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, testCase.path, nil))
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), testCase.want)
		})
	}
}

func TestGateway_ServeSPA_NoBuild(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{StaticDir: t.TempDir()}, nil)

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
