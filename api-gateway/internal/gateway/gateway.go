package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	PickupSvcURL    string
	AnalyticsSvcURL string
	StaticDir       string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("[gateway] %s %s -> %s", r.Method, r.URL.Path, targetURL)

	url := strings.TrimSuffix(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("[gateway] build request: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[gateway] upstream %s: %v", targetURL, err)
		writeError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[gateway] copy response: %v", err)
	}
}

// Upstream picks the service owning path, or "" when the path is not proxied.
func (g *Gateway) Upstream(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/analytics/"):
		return g.config.AnalyticsSvcURL
	case strings.HasPrefix(path, "/api/restaurants/") && strings.Contains(path, "/analytics"):
		return g.config.AnalyticsSvcURL
	case strings.HasPrefix(path, "/api/"), strings.HasPrefix(path, "/functions/v1/"):
		return g.config.PickupSvcURL
	}
	return ""
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	if upstream := g.Upstream(r.URL.Path); upstream != "" {
		g.ProxyRequest(w, r, upstream)
		return
	}
	g.ServeSPA(w, r)
}

// ServeSPA serves files from the built client and falls back to index.html
// so client-side routes survive a reload.
func (g *Gateway) ServeSPA(w http.ResponseWriter, r *http.Request) {
	root := g.config.StaticDir
	clean := filepath.Clean("/" + r.URL.Path)
	candidate := filepath.Join(root, filepath.FromSlash(clean))

	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		http.ServeFile(w, r, candidate)
		return
	}

	index := filepath.Join(root, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
