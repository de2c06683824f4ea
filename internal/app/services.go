package app

import (
	"delivery-console/internal/guard"
	"delivery-console/internal/service"
)

// Services are the view-state containers of one application, all sharing
// the context's client, session and bus.
type Services struct {
	Auth       *service.AuthService
	Menu       *service.MenuService
	Categories *service.CategoryService
	Restaurant *service.RestaurantService

	// admin
	Orders    *service.OrderBoardService
	Reviews   *service.ReviewService
	Users     *service.UserService
	Dashboard *service.DashboardService

	// storefront
	Cart     *service.CartService
	Badge    *service.CartBadge
	Checkout *service.CheckoutService
	History  *service.CustomerOrdersService

	Guard *guard.Guard
}

func (c *Context) Services() *Services {
	logger := c.Logger.Named("service")
	return &Services{
		Auth:       service.NewAuthService(c.API, c.Session, c.Name, c.Notify, logger),
		Menu:       service.NewMenuService(c.API, c.Notify, logger),
		Categories: service.NewCategoryService(c.API, c.Notify, logger),
		Restaurant: service.NewRestaurantService(c.API, c.Notify, logger),
		Orders:     service.NewOrderBoardService(c.API, logger),
		Reviews:    service.NewReviewService(c.API, logger),
		Users:      service.NewUserService(c.API, logger),
		Dashboard:  service.NewDashboardService(c.API, logger),
		Cart:       service.NewCartService(c.API, c.Notify, logger, c.Config.RemovalDelay),
		Badge:      service.NewCartBadge(c.API, c.Session, c.Config.BadgePollInterval, logger),
		Checkout: service.NewCheckoutService(c.API, c.API,
			service.OrderPageQR{BaseURL: c.Config.StorefrontURL}, c.Notify, logger),
		History: service.NewCustomerOrdersService(c.API, c.Notify, logger),
		Guard:   guard.New(c.Session, c.Name, c.Logger.Named("guard")),
	}
}
