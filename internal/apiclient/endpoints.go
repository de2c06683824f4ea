package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"delivery-console/internal/domain"
)

// Auth

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	var result domain.LoginResult
	if err := c.Do(ctx, http.MethodPost, "/auth/login", nil, creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Register(ctx context.Context, creds domain.Credentials) error {
	return c.Do(ctx, http.MethodPost, "/auth/register", nil, creds, nil)
}

func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.Do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Catalog

func (c *Client) ListMenu(ctx context.Context, categoryID *int) ([]domain.MenuItem, error) {
	var query url.Values
	if categoryID != nil {
		query = url.Values{"category_id": {strconv.Itoa(*categoryID)}}
	}
	var items []domain.MenuItem
	if err := c.Do(ctx, http.MethodGet, "/menu/", query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/menu/%d", id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, input domain.MenuItemInput) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := c.Do(ctx, http.MethodPost, "/admin/menu", nil, input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int, input domain.MenuItemInput) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/menu/%d", id), nil, input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/menu/%d", id), nil, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.Do(ctx, http.MethodGet, "/categories/", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := c.Do(ctx, http.MethodPost, "/admin/categories", nil, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/categories/%d", id), nil, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", id), nil, nil, nil)
}

func (c *Client) RestaurantInfo(ctx context.Context) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := c.Do(ctx, http.MethodGet, "/restaurant/info", nil, nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// UpdateRestaurant sends the fields as query parameters, which is what the
// catalog service reads.
func (c *Client) UpdateRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	query := url.Values{
		"name":          {restaurant.Name},
		"description":   {restaurant.Description},
		"address":       {restaurant.Address},
		"phone":         {restaurant.Phone},
		"opening_hours": {restaurant.OpeningHours},
	}
	return c.Do(ctx, http.MethodPut, "/admin/restaurant", query, nil, nil)
}

func (c *Client) RestaurantReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.Do(ctx, http.MethodGet, "/restaurant/reviews", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Cart

func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.Do(ctx, http.MethodGet, "/cart/me", nil, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, input domain.CartItemInput) error {
	return c.Do(ctx, http.MethodPost, "/cart/me/items", nil, input, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/cart/me/items/%d", itemID), nil, body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID int) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/cart/me/items/%d", itemID), nil, nil, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.Do(ctx, http.MethodDelete, "/cart/me", nil, nil, nil)
}

// Orders

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.Do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.PlacedOrder, error) {
	var placed domain.PlacedOrder
	if err := c.Do(ctx, http.MethodPost, "/orders", nil, input, &placed); err != nil {
		return nil, err
	}
	return &placed, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID int) error {
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/cancel", orderID), nil, nil, nil)
}

func (c *Client) SubmitReview(ctx context.Context, orderID int, input domain.ReviewInput) error {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/review", orderID), nil, input, nil)
}

func (c *Client) OrderReview(ctx context.Context, orderID int) (*domain.Review, error) {
	var review domain.Review
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/review", orderID), nil, nil, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) AdminListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.Do(ctx, http.MethodGet, "/admin/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) AdminOrderDetails(ctx context.Context, orderID int) (*domain.OrderDetails, error) {
	var details domain.OrderDetails
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/admin/orders/%d", orderID), nil, nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// UpdateOrderStatus passes the status as a query parameter. The response
// carries no order, so callers re-fetch.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	query := url.Values{"status": {string(status)}}
	return c.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", orderID), query, nil, nil)
}

// Reviews

func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.Do(ctx, http.MethodGet, "/reviews/", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) DeleteReview(ctx context.Context, reviewID int) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", reviewID), nil, nil, nil)
}

// Stats

func (c *Client) StatsOverview(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.Do(ctx, http.MethodGet, "/admin/stats/overview", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) OrdersByDay(ctx context.Context) ([]domain.DayCount, error) {
	var days []domain.DayCount
	if err := c.Do(ctx, http.MethodGet, "/admin/stats/orders-by-day", nil, nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// Users

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.Do(ctx, http.MethodGet, "/admin/users/", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ChangeUserRole returns the user as the auth service stored it.
func (c *Client) ChangeUserRole(ctx context.Context, userID int, role domain.Role) (*domain.User, error) {
	var resp struct {
		UserID   int         `json:"user_id"`
		Username string      `json:"username"`
		Role     domain.Role `json:"role"`
	}
	query := url.Values{"role": {string(role)}}
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/role", userID), query, nil, &resp); err != nil {
		return nil, err
	}
	return &domain.User{ID: resp.UserID, Username: resp.Username, Role: resp.Role}, nil
}
