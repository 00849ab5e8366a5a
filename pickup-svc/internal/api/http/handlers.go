package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu          service.MenuServiceInterface
	Suggestions   service.SuggestionServiceInterface
	Orders        service.OrderServiceInterface
	Notifications service.NotificationServiceInterface
	Auth          service.AuthServiceInterface
	Deliveries    service.DeliveryServiceInterface
}

func NewHandler(
	menuSvc service.MenuServiceInterface,
	suggestionSvc service.SuggestionServiceInterface,
	orderSvc service.OrderServiceInterface,
	notificationSvc service.NotificationServiceInterface,
	authSvc service.AuthServiceInterface,
	deliverySvc service.DeliveryServiceInterface,
) *Handler {
	return &Handler{
		Menu:          menuSvc,
		Suggestions:   suggestionSvc,
		Orders:        orderSvc,
		Notifications: notificationSvc,
		Auth:          authSvc,
		Deliveries:    deliverySvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu-items", h.getRestaurantMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items", h.getMenuItems).Methods("GET")

	r.HandleFunc("/api/ai-suggestions", h.createSuggestion).Methods("POST")
	r.HandleFunc("/functions/v1/ai-suggestions", h.createSuggestion).Methods("POST")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/send-sms", h.sendSMS).Methods("POST")
	r.HandleFunc("/functions/v1/send-sms", h.sendSMS).Methods("POST")

	r.HandleFunc("/api/auth", h.login).Methods("POST")
	r.HandleFunc("/api/register", h.register).Methods("POST")

	r.Handle("/api/deliveries", h.requireAuth(http.HandlerFunc(h.createDelivery))).Methods("POST")
	r.Handle("/api/deliveries/accept", h.requireAuth(http.HandlerFunc(h.acceptDelivery))).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pickup-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Menu.Restaurants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Menu.Restaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.listMenuItems(w, r, domain.MenuFilter{
		Category:     query.Get("category"),
		Query:        query.Get("q"),
		RestaurantID: query.Get("restaurant_id"),
	})
}

func (h *Handler) getRestaurantMenuItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	h.listMenuItems(w, r, domain.MenuFilter{
		Category:     query.Get("category"),
		Query:        query.Get("q"),
		RestaurantID: mux.Vars(r)["id"],
	})
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request, filter domain.MenuFilter) {
	items, err := h.Menu.MenuItems(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// createSuggestion answers every failure with 400, generator and store errors
// included.
func (h *Handler) createSuggestion(w http.ResponseWriter, r *http.Request) {
	var req domain.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	suggestion, err := h.Suggestions.Suggest(r.Context(), req)
	if err != nil {
		log.Printf("[pickup-svc] suggestion failed: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	confirmation, err := h.Orders.Submit(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, confirmation)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.GetQRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(qrCode) == 0 {
		writeError(w, http.StatusNotFound, "QR code not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

type smsRequest struct {
	To             string `json:"to"`
	UserName       string `json:"userName"`
	RestaurantName string `json:"restaurantName"`
	ItemName       string `json:"itemName"`
	Quantity       int    `json:"quantity"`
	PickupTime     string `json:"pickupTime"`
}

func (h *Handler) sendSMS(w http.ResponseWriter, r *http.Request) {
	var req smsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if req.To == "" {
		writeError(w, http.StatusBadRequest, "to is required")
		return
	}
	pickupTime, err := service.ParsePickupTime(req.PickupTime, time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "pickupTime must be an RFC 3339 timestamp")
		return
	}

	err = h.Notifications.SendRaw(r.Context(), req.To, domain.OrderNotification{
		Phone:          req.To,
		UserName:       req.UserName,
		RestaurantName: req.RestaurantName,
		ItemName:       req.ItemName,
		Quantity:       domain.ClampQuantity(req.Quantity),
		PickupTime:     pickupTime,
	})
	if err != nil {
		log.Printf("[pickup-svc] send-sms to %s failed: %v", req.To, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	token, err := h.Auth.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (h *Handler) createDelivery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PickupLocation  string `json:"pickupLocation"`
		DropoffLocation string `json:"dropoffLocation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	delivery, err := h.Deliveries.Create(r.Context(), claimsFrom(r.Context()), req.PickupLocation, req.DropoffLocation)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, delivery)
}

func (h *Handler) acceptDelivery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	delivery, err := h.Deliveries.Accept(r.Context(), claimsFrom(r.Context()), req.ID)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, delivery)
}

func statusFor(err error) int {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrDeliveryUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
