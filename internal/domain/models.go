package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidRole     = errors.New("invalid user role")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativeTotal   = errors.New("total price must not be negative")
)

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type Restaurant struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	OpeningHours string `json:"opening_hours"`
}

type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type MenuItem struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        int64   `json:"price"`
	RestaurantID int     `json:"restaurant_id"`
	CategoryID   *int    `json:"category_id"`
	ImageURL     *string `json:"image_url"`
}

// DescriptionText returns the description or an empty string.
func (m MenuItem) DescriptionText() string {
	if m.Description == nil {
		return ""
	}
	return *m.Description
}

type MenuItemInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price"`
	CategoryID  *int    `json:"category_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type CategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type Order struct {
	ID              int         `json:"id"`
	UserID          int         `json:"user_id"`
	Status          OrderStatus `json:"status"`
	TotalPrice      int64       `json:"total_price"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryTime    *string     `json:"delivery_time"`
	CreatedAt       string      `json:"created_at"`
	PaymentMethod   string      `json:"payment_method"`
}

func (o Order) Validate() error {
	if !o.Status.Valid() {
		return fmt.Errorf("order %d: %w: %q", o.ID, ErrInvalidStatus, o.Status)
	}
	if o.TotalPrice < 0 {
		return fmt.Errorf("order %d: %w", o.ID, ErrNegativeTotal)
	}
	return nil
}

type OrderItem struct {
	ID           int    `json:"id"`
	MenuItemID   int    `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
}

func (i OrderItem) Subtotal() int64 {
	return int64(i.Quantity) * i.Price
}

type OrderDetails struct {
	Order
	RestaurantID int         `json:"restaurant_id"`
	UpdatedAt    string      `json:"updated_at"`
	Items        []OrderItem `json:"items"`
}

type CartItem struct {
	ID         int   `json:"id"`
	MenuItemID int   `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
	Price      int64 `json:"price"`
}

func (c CartItem) LineTotal() int64 {
	return int64(c.Quantity) * c.Price
}

func (c CartItem) Validate() error {
	if c.Quantity < 1 {
		return fmt.Errorf("cart item %d: %w", c.ID, ErrInvalidQuantity)
	}
	return nil
}

type Cart struct {
	ID     int        `json:"id"`
	UserID int        `json:"user_id"`
	Items  []CartItem `json:"items"`
}

type CartItemInput struct {
	MenuItemID int   `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
	Price      int64 `json:"price"`
}

type Review struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	OrderID   int    `json:"order_id"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type OrderInput struct {
	Address      string  `json:"address"`
	DeliveryTime *string `json:"delivery_time,omitempty"`
}

type PlacedOrder struct {
	ID              int         `json:"id"`
	Status          OrderStatus `json:"status"`
	TotalPrice      int64       `json:"total_price"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryTime    *string     `json:"delivery_time"`
	PaymentMethod   string      `json:"payment_method"`
}

type TopItem struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Orders int    `json:"orders"`
	Sold   int    `json:"sold"`
}

type Stats struct {
	Orders         int       `json:"orders"`
	Revenue        int64     `json:"revenue"`
	AverageOrder   int64     `json:"average_order"`
	ActiveOrders   int       `json:"active_orders"`
	MenuItemsCount *int      `json:"menu_items_count"`
	TopItems       []TopItem `json:"top_items"`
}

type DayCount struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
