package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-console/config"
	"delivery-console/internal/notify"
	"delivery-console/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Preview toasts or follow the notification stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		bus := notify.NewBus(logger)
		defer bus.Close()
		out := cmd.OutOrStdout()
		for _, show := range []func(string) notify.Notification{bus.Success, bus.Error, bus.Info, bus.Warning} {
			n := show("Приклад сповіщення")
			fmt.Fprintln(out, notify.Render(n))
		}
		return nil
	},
}

var notifyTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print notifications published by running consoles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.KafkaBroker == "" {
			return errors.New("kafka_broker is not configured")
		}
		group, _ := cmd.Flags().GetString("group")
		feed := storage.NewNotificationFeed(config.NewKafkaReader(cfg.KafkaBroker, cfg.NotificationTopic, group))
		defer feed.Close()

		ctx := cmd.Context()
		for {
			event, err := feed.Next(ctx)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			if err != nil {
				return err
			}
			logger.Debug("notification", zap.String("app", event.App), zap.String("id", event.Notification.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s\n",
				event.Notification.ShownAt.Format(time.TimeOnly), event.App, notify.Render(event.Notification))
		}
	},
}

func init() {
	notifyTailCmd.Flags().String("group", "console-tail", "kafka consumer group")
	notifyCmd.AddCommand(notifyTailCmd)
}
