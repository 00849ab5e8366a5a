package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dotku/ai-restaurant/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "analytics-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/popular-items", h.getPopularItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/analytics/today", h.getToday).Methods("GET")
}

func (h *Handler) getPopularItems(w http.ResponseWriter, r *http.Request) {
	limit := service.ParseLimit(r.URL.Query().Get("limit"))
	items, err := h.Analytics.PopularItems(r.Context(), limit)
	if err != nil {
		log.Printf("[analytics-svc] popular items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	today, err := h.Analytics.TodayForRestaurant(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		log.Printf("[analytics-svc] today analytics: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, today)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
