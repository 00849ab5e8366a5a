package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(cuisine, ''), COALESCE(image_url, ''), created_at
		FROM restaurants
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Cuisine, &rest.ImageURL, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(cuisine, ''), COALESCE(image_url, ''), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Cuisine, &rest.ImageURL, &rest.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, category, popular, COALESCE(image_url, ''), created_at
		FROM menu_items
		ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.Popular, &item.ImageURL, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, category, popular, COALESCE(image_url, ''), created_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.Popular, &item.ImageURL, &item.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *PostgresRepository) InsertOrder(ctx context.Context, order *domain.Order) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO orders (id, user_name, phone, pickup_time, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		order.ID, order.UserName, order.Phone, order.PickupTime, order.TotalAmount, order.Status).
		Scan(&order.CreatedAt)
}

func (r *PostgresRepository) InsertOrderItem(ctx context.Context, item *domain.OrderItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO order_items (id, order_id, menu_item_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		item.ID, item.OrderID, item.MenuItemID, item.Quantity, item.Price).
		Scan(&item.CreatedAt)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_name, phone, pickup_time, total_amount, status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.UserName, &order.Phone, &order.PickupTime, &order.TotalAmount, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, quantity, price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.Price, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, notFound(err)
	}
	return qrCode, nil
}

func (r *PostgresRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, COALESCE(name, ''), email, password, role, created_at
		FROM users WHERE email = $1`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role).
		Scan(&user.CreatedAt)
}

func (r *PostgresRepository) CreateDelivery(ctx context.Context, delivery *domain.Delivery) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO deliveries (id, customer_id, pickup_location, dropoff_location, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		delivery.ID, delivery.CustomerID, delivery.PickupLocation, delivery.DropoffLocation, delivery.Status).
		Scan(&delivery.CreatedAt)
}

func (r *PostgresRepository) GetDelivery(ctx context.Context, id string) (*domain.Delivery, error) {
	var delivery domain.Delivery
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, customer_id, COALESCE(driver_id::text, ''), pickup_location, dropoff_location, status, created_at
		FROM deliveries WHERE id = $1`, id).
		Scan(&delivery.ID, &delivery.CustomerID, &delivery.DriverID, &delivery.PickupLocation,
			&delivery.DropoffLocation, &delivery.Status, &delivery.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &delivery, nil
}

// AcceptDelivery only matches pending rows, so a concurrent accept by another
// driver surfaces as domain.ErrNotFound.
func (r *PostgresRepository) AcceptDelivery(ctx context.Context, id, driverID string) (*domain.Delivery, error) {
	var delivery domain.Delivery
	err := r.DB.QueryRowContext(ctx, `
		UPDATE deliveries
		SET driver_id = $1, status = 'accepted'
		WHERE id = $2 AND status = 'pending'
		RETURNING id, customer_id, driver_id::text, pickup_location, dropoff_location, status, created_at`,
		driverID, id).
		Scan(&delivery.ID, &delivery.CustomerID, &delivery.DriverID, &delivery.PickupLocation,
			&delivery.DropoffLocation, &delivery.Status, &delivery.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &delivery, nil
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			cuisine TEXT,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL,
			popular BOOLEAN NOT NULL DEFAULT FALSE,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			pickup_time TIMESTAMPTZ NOT NULL,
			total_amount NUMERIC(10, 2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price NUMERIC(10, 2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'customer',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS deliveries (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL REFERENCES users(id),
			driver_id UUID REFERENCES users(id),
			pickup_location TEXT NOT NULL,
			dropoff_location TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
