package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openlearn-labs/lms-console/internal/session"
	"github.com/openlearn-labs/lms-console/pkg/api"
	"github.com/openlearn-labs/lms-console/pkg/config"
	"github.com/openlearn-labs/lms-console/pkg/logger"
)

var version = "dev"

// app carries the shared wiring every command runs against.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	session *session.Session
	client  *api.Client
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	sess := session.New(session.NewFileStore(cfg.Session.File), log)
	client := api.New(cfg.API, sess, log)
	return &app{cfg: cfg, logger: log, session: sess, client: client}, nil
}

func newRootCmd() (*cobra.Command, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}

	rootCmd := &cobra.Command{
		Use:           "lms-console",
		Short:         "Admin console for the learning platform backend",
		Long:          "lms-console manages courses, certifications, organizations and job listings\nthrough the platform's admin API. Sign in with an administrator account first.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newWhoamiCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newDashboardCmd(a))

	return rootCmd, nil
}

// requireAdmin is the route gate every admin command passes before touching
// the backend: unauthenticated operators are sent to login, authenticated
// non-admins get an explicit denial.
func requireAdmin(a *app) error {
	switch a.session.Authorize() {
	case session.RedirectLogin:
		return fmt.Errorf("not signed in; run 'lms-console login' first")
	case session.Denied:
		return fmt.Errorf("%s", session.DeniedMessage)
	}
	return nil
}
