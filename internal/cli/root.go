// Package cli wires the terminal commands: login, event listing, the
// step-by-step event creation wizard, exports and notifications.
package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eventosia/client/config"
	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/session"
	"github.com/eventosia/client/internal/store"
	"github.com/eventosia/client/pkg/logger"
)

// app holds everything a command needs, built once per invocation and passed
// down explicitly.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *api.Client
	session *session.Manager
	state   *store.AppState
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}
	sess, err := session.NewManager(cfg.State.Dir, log)
	if err != nil {
		return nil, err
	}
	client := api.NewClient(cfg.API.BaseURL,
		api.WithTokenSource(sess),
		api.WithLogger(log),
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.RequestTimeout}),
		api.WithUploadClient(&http.Client{Timeout: cfg.API.UploadTimeout}),
	)
	return &app{
		cfg:     cfg,
		logger:  log,
		client:  client,
		session: sess,
		state:   store.NewAppState(client, log),
	}, nil
}

// requireLogin fails fast when there is no usable session.
func (a *app) requireLogin() error {
	if _, err := a.session.CurrentUser(); err != nil {
		return fmt.Errorf("inicia sesión primero con `eventosia login`")
	}
	if a.session.TokenExpired() {
		return fmt.Errorf("tu sesión expiró, inicia sesión de nuevo con `eventosia login`")
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	var a *app

	root := &cobra.Command{
		Use:           "eventosia",
		Short:         "Cliente de EventosIA: eventos, participantes, recursos y facturación",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(newLoginCmd(func() *app { return a }))
	root.AddCommand(newEventsCmd(func() *app { return a }))
	root.AddCommand(newNotificationsCmd(func() *app { return a }))
	return root.Execute()
}
