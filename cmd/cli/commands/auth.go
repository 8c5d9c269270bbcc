package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/services"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			var err error
			if strings.TrimSpace(email) == "" {
				if email, err = app.Terminal.ReadLine("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = app.Terminal.ReadLine("Password: "); err != nil {
					return err
				}
			}

			app.Logger.Debug("login command", zap.String("email", email))

			user, err := services.Login(app.Ctx, app.API, app.Sessions, app.Logger, email, password)
			if err != nil {
				return err
			}

			app.View.Success("Logged in as " + user.Name)
			app.View.User(user)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password (prompted when omitted)")

	return cmd
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("logout command")
			return services.Logout(app.Ctx, app.Sessions, app.Terminal)
		},
	}
}

// WhoamiCmd creates the whoami command
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := services.CheckAuth(app.Ctx, app.Sessions, app.Terminal)
			if !ok {
				return services.ErrNotAuthenticated
			}
			app.View.User(user)
			return nil
		},
	}
}
