package domain

type ItemAnalytics struct {
	MenuItemID   string  `json:"menu_item_id"`
	Name         string  `json:"name"`
	RestaurantID string  `json:"restaurant_id"`
	Quantity     float64 `json:"quantity"`
}

type RestaurantToday struct {
	RestaurantID string          `json:"restaurant_id"`
	Date         string          `json:"date"`
	TopItems     []ItemAnalytics `json:"top_items"`
	Revenue      float64         `json:"revenue"`
}
