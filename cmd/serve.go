package cmd

import (
	httpapi "delivery-console/internal/api/http"
	"delivery-console/internal/app"
	"delivery-console/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the admin console or the storefront over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := c.Close(); err != nil {
				logger.Warn("close app", zap.Error(err))
			}
		}()
		if err := c.Ping(ctx); err != nil {
			return err
		}

		svc := c.Services()
		var handler httpapi.RouteRegistrar
		switch c.Name {
		case session.AppAdmin:
			handler = &httpapi.AdminHandler{
				Auth:       svc.Auth,
				Orders:     svc.Orders,
				Menu:       svc.Menu,
				Categories: svc.Categories,
				Restaurant: svc.Restaurant,
				Reviews:    svc.Reviews,
				Users:      svc.Users,
				Dashboard:  svc.Dashboard,
				Guard:      svc.Guard,
				Notify:     c.Notify,
			}
		case session.AppStorefront:
			svc.Badge.Start(ctx)
			defer svc.Badge.Stop()
			handler = &httpapi.StorefrontHandler{
				Auth:       svc.Auth,
				Menu:       svc.Menu,
				Categories: svc.Categories,
				Cart:       svc.Cart,
				Badge:      svc.Badge,
				Checkout:   svc.Checkout,
				Orders:     svc.History,
				Guard:      svc.Guard,
				Notify:     c.Notify,
			}
		}

		router := httpapi.NewRouter(handler, c.Logger.Named("http"), cfg.AllowedOrigins)
		return httpapi.StartServer(ctx, cfg.ListenAddr, router, c.Logger)
	},
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "listen address")
	_ = v.BindPFlag("listen_addr", serveCmd.Flags().Lookup("listen"))
}

