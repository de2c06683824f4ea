package cmd

import (
	"errors"
	"fmt"

	"delivery-console/internal/app"
	"delivery-console/internal/domain"
	"delivery-console/internal/service"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer c.Close()

		user, err := c.Services().Auth.Login(cmd.Context(), domain.Credentials{Username: args[0], Password: args[1]})
		if err != nil {
			return errors.New(service.LoginError(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.Username, user.Role)
		if cfg.RedisAddr == "" {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("redis_addr is not set; the session ends with this command"))
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Services().Auth.Logout(cmd.Context())
	},
}
