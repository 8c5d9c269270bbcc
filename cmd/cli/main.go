package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/cmd/cli/commands"
	"github.com/yathwxk/Community-Assistance-Platform/internal/config"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/postgres"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/redisstore"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/session"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/utils/logging"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/view"
)

var (
	env       string
	verbose   bool
	noColor   bool
	assumeYes bool
	app       = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Neighborhood Help Desk - ask for and offer help in your community",
		Long:  `A terminal client for the Neighborhood Help Desk: browse and accept help requests, track your own requests, review volunteers and explore the community.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Database != nil {
				app.Database.Close()
			}
			if app.Cache != nil {
				app.Cache.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "local", "Environment (selects helpdesk_config.<env>.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.WhoamiCmd(app))
	rootCmd.AddCommand(commands.DashboardCmd(app))
	rootCmd.AddCommand(commands.AcceptCmd(app))
	rootCmd.AddCommand(commands.CompleteCmd(app))
	rootCmd.AddCommand(commands.EditCmd(app))
	rootCmd.AddCommand(commands.DeleteCmd(app))
	rootCmd.AddCommand(commands.ReviewCmd(app))
	rootCmd.AddCommand(commands.PostCmd(app))
	rootCmd.AddCommand(commands.CommunityCmd(app))
	rootCmd.AddCommand(commands.MemberCmd(app))
	rootCmd.AddCommand(commands.ContactCmd(app))
	rootCmd.AddCommand(commands.BrowseCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, API client and session store
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Load configuration
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, app.Cfg.LogsDir, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger.Info("Starting application", zap.String("environment", env))

	// Initialize API client
	app.API, err = helpdeskclient.NewClient(app.Cfg.APIBaseURL, app.Cfg.RequestTimeout, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}
	app.Logger.Debug("API client initialized", zap.String("base_url", app.API.BaseURL()))

	// Initialize session store
	var store session.Store
	switch app.Cfg.SessionStore {
	case config.SessionStorePostgres:
		app.Logger.Info("Connecting to session database")
		app.Database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to session database: %w", err)
		}
		if err := app.Database.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to migrate session database: %w", err)
		}
		store = app.Database
	case config.SessionStoreRedis:
		app.Logger.Info("Connecting to session cache", zap.String("addr", app.Cfg.RedisAddr))
		app.Cache, err = redisstore.New(app.Ctx, app.Cfg.RedisAddr, app.Cfg.SessionTTL)
		if err != nil {
			return err
		}
		store = app.Cache
	default:
		store = session.NewFileStore(app.Cfg.SessionPath)
		app.Logger.Debug("Using file session store", zap.String("path", app.Cfg.SessionPath))
	}
	app.Sessions = session.NewManager(store, app.Logger)

	// Initialize terminal
	app.Terminal = commands.NewTerminal(os.Stdin, os.Stdout)
	app.Terminal.AssumeYes = assumeYes
	color := !noColor && os.Getenv("NO_COLOR") == ""
	app.View = view.New(os.Stdout, color)

	return nil
}
