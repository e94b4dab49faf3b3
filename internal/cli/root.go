package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sufragio/internal/api"
	"github.com/alexanderramin/sufragio/internal/assets"
	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/config"
)

// App holds the configuration and API client used by CLI commands and the
// interactive console.
type App struct {
	Config config.Config
	API    ConsoleAPI
	Photos assets.Resolver

	// Version is printed by `sufragio version`.
	Version string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// LogOutput receives API call logs when api.log_calls is set.
	LogOutput io.Writer
}

// NewApp builds an App whose API client talks to cfg.API.BaseURL.
func NewApp(cfg config.Config, logOutput io.Writer) *App {
	app := &App{Config: cfg, LogOutput: logOutput}
	app.connect()
	return app
}

// connect (re)creates the API client and photo resolver from Config.
func (a *App) connect() {
	var observer api.Observer = api.NoopObserver{}
	if a.Config.API.LogCalls && a.LogOutput != nil {
		observer = api.NewLogObserver(a.LogOutput)
	}
	a.API = api.New(a.Config.API, observer)
	a.Photos = assets.NewResolver(a.Config.Assets.BaseURL)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// NewRootCmd creates the top-level "sufragio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var apiURL, configPath string

	root := &cobra.Command{
		Use:           "sufragio",
		Short:         "Consola de administración electoral",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configChanged := cmd.Flags().Changed("config")
			urlChanged := cmd.Flags().Changed("api-url")
			if !configChanged && !urlChanged {
				return nil
			}
			if configChanged {
				if _, err := os.Stat(configPath); err != nil {
					return fmt.Errorf("config file: %w", err)
				}
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("loading configuration: %w", err)
				}
				app.Config = *cfg
			}
			if urlChanged {
				app.Config.API.BaseURL = apiURL
				if err := app.Config.Validate(); err != nil {
					return err
				}
			}
			app.connect()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.interactive() {
				return RunTUI(app)
			}
			cmd.Println(formatter.FormatCommandReference())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file (overrides SUFRAGIO_CONFIG)")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the electoral API (overrides config)")

	root.AddCommand(
		newBallotCmd(app),
		newPositionCmd(app),
		newSectionCmd(app),
		newElectionCmd(app),
		newServeCmd(app),
		newVersionCmd(app),
	)
	return root
}
