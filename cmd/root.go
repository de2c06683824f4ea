package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"delivery-console/config"
	"delivery-console/internal/app"
	"delivery-console/internal/domain"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
	v       = viper.New()
	logger  *zap.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Admin console and storefront for the food-delivery backend",
	Long: `console serves the restaurant admin console and the customer storefront
over the auth, catalog and order services, and drives the same views from
the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml or json)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.String("app", "admin", "application: admin or storefront")
	flags.String("username", "", "log in with this user before running the command")
	flags.String("password", "", "password for --username")

	_ = v.BindPFlag("app", flags.Lookup("app"))
	_ = v.BindPFlag("username", flags.Lookup("username"))
	_ = v.BindPFlag("password", flags.Lookup("password"))

	rootCmd.AddCommand(serveCmd, loginCmd, logoutCmd, menuCmd, cartCmd, ordersCmd, kanbanCmd, notifyCmd)
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

// openApp builds the application context and logs in when --username is
// given and no session is stored yet.
func openApp(ctx context.Context) (*app.Context, *app.Services, error) {
	c, err := app.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	svc := c.Services()

	username := v.GetString("username")
	if username == "" {
		return c, svc, nil
	}
	token, err := c.Session.Token(ctx)
	if err != nil {
		c.Close()
		return nil, nil, err
	}
	if token == "" {
		creds := domain.Credentials{Username: username, Password: v.GetString("password")}
		if _, err := svc.Auth.Login(ctx, creds); err != nil {
			c.Close()
			return nil, nil, fmt.Errorf("login: %w", err)
		}
	}
	return c, svc, nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
