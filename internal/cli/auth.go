package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const passwordEnv = "MMA_PASSWORD"

func newLoginCommand(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the accounting backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			if password == "" {
				return fmt.Errorf("password required, pass --password or set %s", passwordEnv)
			}

			session, _, err := app.Services.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := app.Current.SetCurrentSessionID(session.SessionID); err != nil {
				return err
			}
			app.printSuccess(fmt.Sprintf("Logged in as %s", session.Email))
			app.printInfof("Run `mma_cli companies list` to pick a company")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&password, "password", "", "account password, defaults to $"+passwordEnv)

	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			logoutErr := app.Services.Auth.Logout(cmd.Context(), session)
			if err := app.Current.SetCurrentSessionID(""); err != nil {
				return errors.Join(logoutErr, err)
			}
			if logoutErr != nil {
				return logoutErr
			}
			app.printSuccess("Logged out")
			return nil
		},
	}
}
