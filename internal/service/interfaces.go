package service

import (
	"context"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/notify"
)

type CartAPI interface {
	GetCart(ctx context.Context) (*domain.Cart, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	AddCartItem(ctx context.Context, input domain.CartItemInput) error
	UpdateCartItem(ctx context.Context, itemID, quantity int) error
	RemoveCartItem(ctx context.Context, itemID int) error
	ClearCart(ctx context.Context) error
}

type OrdersAPI interface {
	AdminListOrders(ctx context.Context) ([]domain.Order, error)
	AdminOrderDetails(ctx context.Context, orderID int) (*domain.OrderDetails, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, input domain.OrderInput) (*domain.PlacedOrder, error)
	CancelOrder(ctx context.Context, orderID int) error
	SubmitReview(ctx context.Context, orderID int, input domain.ReviewInput) error
}

type CatalogAPI interface {
	ListMenu(ctx context.Context, categoryID *int) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, input domain.MenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, input domain.MenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
	RestaurantInfo(ctx context.Context) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurant domain.Restaurant) error
	RestaurantReviews(ctx context.Context) ([]domain.Review, error)
}

type AdminAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ChangeUserRole(ctx context.Context, userID int, role domain.Role) (*domain.User, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
	DeleteReview(ctx context.Context, reviewID int) error
	StatsOverview(ctx context.Context) (*domain.Stats, error)
	OrdersByDay(ctx context.Context) ([]domain.DayCount, error)
}

type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
	Register(ctx context.Context, creds domain.Credentials) error
}

// Notifier is the toast surface containers report outcomes on.
type Notifier interface {
	Success(message string) notify.Notification
	Error(message string) notify.Notification
	Info(message string) notify.Notification
	Warning(message string) notify.Notification
}

var (
	_ CartAPI    = (*apiclient.Client)(nil)
	_ OrdersAPI  = (*apiclient.Client)(nil)
	_ CatalogAPI = (*apiclient.Client)(nil)
	_ AdminAPI   = (*apiclient.Client)(nil)
	_ AuthAPI    = (*apiclient.Client)(nil)
	_ Notifier   = (*notify.Bus)(nil)
)
