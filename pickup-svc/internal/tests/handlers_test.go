package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/dotku/ai-restaurant/pickup-svc/internal/api/http"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/mocks"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	menu          *mocks.MenuServiceInterface
	suggestions   *mocks.SuggestionServiceInterface
	orders        *mocks.OrderServiceInterface
	notifications *mocks.NotificationServiceInterface
	auth          *mocks.AuthServiceInterface
	deliveries    *mocks.DeliveryServiceInterface
}

func newHandlerMocks(t *testing.T) handlerMocks {
	return handlerMocks{
		menu:          mocks.NewMenuServiceInterface(t),
		suggestions:   mocks.NewSuggestionServiceInterface(t),
		orders:        mocks.NewOrderServiceInterface(t),
		notifications: mocks.NewNotificationServiceInterface(t),
		auth:          mocks.NewAuthServiceInterface(t),
		deliveries:    mocks.NewDeliveryServiceInterface(t),
	}
}

func (m handlerMocks) serve(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	handler := httpapi.NewHandler(m.menu, m.suggestions, m.orders, m.notifications, m.auth, m.deliveries)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body["error"]
}

func TestHealthHandler(t *testing.T) {
	w := newHandlerMocks(t).serve("GET", "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"pickup-svc"`)
}

func TestGetRestaurantHandler(t *testing.T) {
	tests := []struct {
		name     string
		mockRest *domain.Restaurant
		mockErr  error
		wantCode int
	}{
		{name: "found", mockRest: &domain.Restaurant{ID: "r1", Name: "Bella Napoli"}, wantCode: http.StatusOK},
		{name: "not found", mockErr: domain.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "store error", mockErr: errors.New("db error"), wantCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m := newHandlerMocks(t)
			m.menu.On("Restaurant", mock.Anything, "r1").Return(testCase.mockRest, testCase.mockErr).Once()

			w := m.serve("GET", "/api/restaurants/r1", "", nil)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestMenuItemsHandlers(t *testing.T) {
	t.Run("query filters", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.menu.On("MenuItems", mock.Anything, domain.MenuFilter{Category: "dessert", Query: "mo"}).
			Return([]domain.MenuItem{{ID: "m4", Name: "Mochi"}}, nil).Once()

		w := m.serve("GET", "/api/menu-items?category=dessert&q=mo", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Mochi")
	})

	t.Run("restaurant path", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.menu.On("MenuItems", mock.Anything, domain.MenuFilter{RestaurantID: "r1"}).
			Return([]domain.MenuItem{}, nil).Once()

		w := m.serve("GET", "/api/restaurants/r1/menu-items", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("restaurants list", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.menu.On("Restaurants", mock.Anything).Return(nil, errors.New("db error")).Once()

		w := m.serve("GET", "/api/restaurants", "", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSuggestionHandler(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		setup    func(*mocks.SuggestionServiceInterface)
		wantCode int
		wantBody string
	}{
		{
			name: "suggestion returned",
			path: "/api/ai-suggestions",
			body: `{"category":"dessert","preference":"sweet","menuItems":[],"restaurants":[]}`,
			setup: func(m *mocks.SuggestionServiceInterface) {
				m.On("Suggest", mock.Anything, mock.MatchedBy(func(r domain.SuggestionRequest) bool {
					return r.Category == "dessert" && r.Preference == "sweet" && r.MenuItems != nil && r.Restaurants != nil
				})).Return(&domain.Suggestion{Text: "Try the mochi", FeaturedItems: []domain.MenuItem{}}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"suggestion":"Try the mochi","featuredItems":[]}`,
		},
		{
			name: "function path alias",
			path: "/functions/v1/ai-suggestions",
			body: `{"category":"all"}`,
			setup: func(m *mocks.SuggestionServiceInterface) {
				m.On("Suggest", mock.Anything, mock.Anything).Return(&domain.Suggestion{Text: "ok", FeaturedItems: []domain.MenuItem{}}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"suggestion":"ok","featuredItems":[]}`,
		},
		{
			name: "generator failure is a 400",
			path: "/api/ai-suggestions",
			body: `{"category":"all","menuItems":[],"restaurants":[]}`,
			setup: func(m *mocks.SuggestionServiceInterface) {
				m.On("Suggest", mock.Anything, mock.Anything).Return(nil, errors.New("invalid api key")).Once()
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid api key"}`,
		},
		{
			name:     "invalid JSON",
			path:     "/api/ai-suggestions",
			body:     `{invalid}`,
			setup:    func(*mocks.SuggestionServiceInterface) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m := newHandlerMocks(t)
			testCase.setup(m.suggestions)

			w := m.serve("POST", testCase.path, testCase.body, nil)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.JSONEq(t, testCase.wantBody, w.Body.String())
			}
		})
	}
}

func TestCreateOrderHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mockResp *domain.OrderConfirmation
		mockErr  error
		wantCode int
		wantErr  string
	}{
		{
			name: "created",
			body: `{"menu_item_id":"m2","restaurant_id":"r1","quantity":2,"user_name":"Ada","phone":"555-1234567"}`,
			mockResp: &domain.OrderConfirmation{
				Order:        &domain.Order{ID: "o1", TotalAmount: 15.98},
				Notification: service.AdvisoryNotConfigured,
				QRCode:       "/api/orders/o1/qrcode",
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "validation error",
			body:     `{"phone":"123"}`,
			mockErr:  &service.ValidationError{Message: "Please enter a valid phone number"},
			wantCode: http.StatusBadRequest,
			wantErr:  "Please enter a valid phone number",
		},
		{
			name:     "unknown item",
			body:     `{"menu_item_id":"nope"}`,
			mockErr:  errors.Join(errors.New("menu item nope"), domain.ErrNotFound),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "store error",
			body:     `{}`,
			mockErr:  errors.New("db error"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "db error",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m := newHandlerMocks(t)
			m.orders.On("Submit", mock.Anything, mock.AnythingOfType("domain.OrderRequest")).
				Return(testCase.mockResp, testCase.mockErr).Once()

			w := m.serve("POST", "/api/orders", testCase.body, nil)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantErr != "" {
				assert.Equal(t, testCase.wantErr, errorBody(t, w))
			}
			if testCase.mockResp != nil {
				var body map[string]interface{}
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, false, body["notification_sent"])
				assert.Equal(t, service.AdvisoryNotConfigured, body["notification"])
				assert.Equal(t, "/api/orders/o1/qrcode", body["qr_code"])
			}
		})
	}
}

func TestCreateOrderHandler_InvalidJSON(t *testing.T) {
	w := newHandlerMocks(t).serve("POST", "/api/orders", `{invalid}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderReadHandlers(t *testing.T) {
	t.Run("order found", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.orders.On("Get", mock.Anything, "o1").Return(&domain.Order{ID: "o1"}, nil).Once()

		w := m.serve("GET", "/api/orders/o1", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("order missing", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.orders.On("Get", mock.Anything, "o1").Return(nil, domain.ErrNotFound).Once()

		w := m.serve("GET", "/api/orders/o1", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Order not found", errorBody(t, w))
	})

	t.Run("qr code", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.orders.On("GetQRCode", mock.Anything, "o1").Return([]byte("\x89PNG"), nil).Once()

		w := m.serve("GET", "/api/orders/o1/qrcode", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG", w.Body.String())
	})

	t.Run("qr code empty", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.orders.On("GetQRCode", mock.Anything, "o1").Return(nil, nil).Once()

		w := m.serve("GET", "/api/orders/o1/qrcode", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSendSMSHandler(t *testing.T) {
	body := `{"to":"+15551234567","userName":"Ada","restaurantName":"Bella Napoli","itemName":"Mochi","quantity":2,"pickupTime":"2026-03-14T18:30:00Z"}`

	t.Run("sent", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.notifications.On("SendRaw", mock.Anything, "+15551234567", mock.MatchedBy(func(n domain.OrderNotification) bool {
			return n.ItemName == "Mochi" && n.Quantity == 2 && n.PickupTime.Hour() == 18
		})).Return(nil).Once()

		w := m.serve("POST", "/functions/v1/send-sms", body, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("provider error", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.notifications.On("SendRaw", mock.Anything, mock.Anything, mock.Anything).Return(service.ErrSMSNotConfigured).Once()

		w := m.serve("POST", "/api/send-sms", body, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, service.ErrSMSNotConfigured.Error(), errorBody(t, w))
	})

	t.Run("missing recipient", func(t *testing.T) {
		w := newHandlerMocks(t).serve("POST", "/api/send-sms", `{"itemName":"Mochi"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlers(t *testing.T) {
	t.Run("login", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.auth.On("Login", mock.Anything, "ada@example.com", "pw").Return("signed.jwt.token", nil).Once()

		w := m.serve("POST", "/api/auth", `{"email":"ada@example.com","password":"pw"}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"signed.jwt.token"}`, w.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.auth.On("Login", mock.Anything, "ada@example.com", "bad").Return("", service.ErrInvalidCredentials).Once()

		w := m.serve("POST", "/api/auth", `{"email":"ada@example.com","password":"bad"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid credentials", errorBody(t, w))
	})

	t.Run("register", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.auth.On("Register", mock.Anything, "Ada", "ada@example.com", "pw", "driver").Return("tok", nil).Once()

		w := m.serve("POST", "/api/register", `{"name":"Ada","email":"ada@example.com","password":"pw","role":"driver"}`, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("register duplicate", func(t *testing.T) {
		m := newHandlerMocks(t)
		m.auth.On("Register", mock.Anything, "", "ada@example.com", "pw", "").Return("", service.ErrEmailExists).Once()

		w := m.serve("POST", "/api/register", `{"email":"ada@example.com","password":"pw"}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already exists", errorBody(t, w))
	})
}

func TestDeliveryHandlers(t *testing.T) {
	bearer := map[string]string{"Authorization": "Bearer good"}

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		headers  map[string]string
		setup    func(handlerMocks)
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing token",
			method:   "POST",
			path:     "/api/deliveries",
			body:     `{}`,
			setup:    func(handlerMocks) {},
			wantCode: http.StatusUnauthorized,
			wantErr:  "Access denied",
		},
		{
			name:    "invalid token",
			method:  "POST",
			path:    "/api/deliveries",
			body:    `{}`,
			headers: map[string]string{"Authorization": "Bearer forged"},
			setup: func(m handlerMocks) {
				m.auth.On("ParseToken", "forged").Return(nil, errors.New("signature is invalid")).Once()
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "Invalid token",
		},
		{
			name:    "customer creates",
			method:  "POST",
			path:    "/api/deliveries",
			body:    `{"pickupLocation":"Bella Napoli","dropoffLocation":"12 Main St"}`,
			headers: bearer,
			setup: func(m handlerMocks) {
				m.auth.On("ParseToken", "good").Return(customer, nil).Once()
				m.deliveries.On("Create", mock.Anything, customer, "Bella Napoli", "12 Main St").
					Return(&domain.Delivery{ID: "del1", CustomerID: "c1", Status: domain.DeliveryStatusPending}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:    "driver forbidden to create",
			method:  "POST",
			path:    "/api/deliveries",
			body:    `{"pickupLocation":"a","dropoffLocation":"b"}`,
			headers: bearer,
			setup: func(m handlerMocks) {
				m.auth.On("ParseToken", "good").Return(driver, nil).Once()
				m.deliveries.On("Create", mock.Anything, driver, "a", "b").
					Return(nil, &service.ForbiddenError{Message: "Only customers can create deliveries"}).Once()
			},
			wantCode: http.StatusForbidden,
			wantErr:  "Only customers can create deliveries",
		},
		{
			name:    "driver accepts",
			method:  "PUT",
			path:    "/api/deliveries/accept",
			body:    `{"id":"del1"}`,
			headers: bearer,
			setup: func(m handlerMocks) {
				m.auth.On("ParseToken", "good").Return(driver, nil).Once()
				m.deliveries.On("Accept", mock.Anything, driver, "del1").
					Return(&domain.Delivery{ID: "del1", DriverID: "d1", Status: domain.DeliveryStatusAccepted}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "delivery unavailable",
			method:  "PUT",
			path:    "/api/deliveries/accept",
			body:    `{"id":"del1"}`,
			headers: bearer,
			setup: func(m handlerMocks) {
				m.auth.On("ParseToken", "good").Return(driver, nil).Once()
				m.deliveries.On("Accept", mock.Anything, driver, "del1").Return(nil, service.ErrDeliveryUnavailable).Once()
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "Delivery not available",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m := newHandlerMocks(t)
			testCase.setup(m)

			w := m.serve(testCase.method, testCase.path, testCase.body, testCase.headers)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantErr != "" {
				assert.Equal(t, testCase.wantErr, errorBody(t, w))
			}
		})
	}
}
