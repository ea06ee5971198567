package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eventosia/client/internal/models"
	"github.com/eventosia/client/internal/notifications"
)

func newNotificationsCmd(getApp func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Muestra tus notificaciones en vivo",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.requireLogin(); err != nil {
				return err
			}

			streamURL := ""
			if a.cfg.Notifications.StreamEnabled {
				streamURL = a.cfg.Notifications.StreamURL
			}
			streamer := notifications.NewStreamer(
				streamURL,
				a.cfg.Notifications.PollInterval,
				a.client,
				a.session,
				a.logger,
			)

			out := make(chan models.Notification, 16)
			errCh := make(chan error, 1)
			go func() { errCh <- streamer.Run(cmd.Context(), out) }()

			fmt.Println("Esperando notificaciones... (Ctrl+C para salir)")
			for {
				select {
				case n := <-out:
					fmt.Printf("[%s] %s — %s\n", n.CreatedAt.Format("15:04"), n.Title, n.Message)
				case err := <-errCh:
					return err
				}
			}
		},
	}
	return cmd
}
