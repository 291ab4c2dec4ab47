package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openlearn-labs/lms-console/internal/models"
	"github.com/openlearn-labs/lms-console/internal/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var identifier, password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the admin backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if identifier == "" {
				prompt := "Email or phone: "
				if remembered := a.session.RememberedLogin(); remembered != "" {
					prompt = fmt.Sprintf("Email or phone [%s]: ", remembered)
				}
				fmt.Fprint(cmd.OutOrStdout(), prompt)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read login identifier: %w", err)
				}
				identifier = strings.TrimSpace(line)
				if identifier == "" {
					identifier = a.session.RememberedLogin()
				}
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			auth := session.NewAuth(a.client, a.session, a.logger)
			user, err := auth.Login(cmd.Context(), models.LoginRequest{
				EmailOrPhone: identifier,
				Password:     password,
			}, remember)
			if err != nil {
				return err
			}

			a.logger.Info("login ok", zap.String("user_id", user.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.FullName, user.Email)
			if !user.HasAdminRole() {
				fmt.Fprintln(cmd.OutOrStdout(), "Note: this account has no administrator role; admin commands will be denied.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&identifier, "email", "e", "", "email or phone to sign in with")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&remember, "remember", false, "remember the login identifier for next time")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := session.NewAuth(a.client, a.session, a.logger)
			if err := auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and token claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			user, ok := a.session.User()
			if !ok || !a.session.IsAuthenticated() {
				fmt.Fprintln(out, "Not signed in.")
				return nil
			}

			fmt.Fprintf(out, "User:  %s (%s)\n", user.FullName, user.Email)
			fmt.Fprintf(out, "Admin: %v\n", user.HasAdminRole())
			if claims, ok := a.session.Claims(); ok {
				if claims.Subject != "" {
					fmt.Fprintf(out, "Token subject: %s\n", claims.Subject)
				}
				if claims.ExpiresAt != nil {
					fmt.Fprintf(out, "Token expires: %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
				}
			}
			return nil
		},
	}
}
