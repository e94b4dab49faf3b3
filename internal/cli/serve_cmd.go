package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/config"
	"github.com/alexanderramin/sufragio/internal/sandbox"
)

func newServeCmd(app *App) *cobra.Command {
	var flags config.SandboxConfig
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levantar la API local de pruebas sobre SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := sandboxConfig(cmd, app.Config.Sandbox, flags)
			if cfg.DataPath != "" {
				cfg.Seed = true
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return sandbox.Run(ctx, cfg, app.logger(cmd.ErrOrStderr()), func(addr string) {
				fmt.Fprintln(out, formatter.FormatSuccess("API local escuchando en http://"+addr))
				switch {
				case cfg.Seed && cfg.DataPath != "":
					fmt.Fprintln(out, formatter.Dim("Datos cargados desde "+cfg.DataPath+"."))
				case cfg.Seed:
					fmt.Fprintln(out, formatter.Dim("Datos de demostración cargados (sección 4, elección 2)."))
				}
			})
		},
	}
	cmd.Flags().StringVar(&flags.Addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&flags.DBPath, "db", "", "SQLite file (empty for in-memory)")
	cmd.Flags().BoolVar(&flags.Seed, "seed", false, "load demo data into an empty database")
	cmd.Flags().StringVar(&flags.DataPath, "data", "", "JSON data set to seed instead of the demo data (implies --seed)")
	return cmd
}

// sandboxConfig layers the flags the user set over the loaded config.
func sandboxConfig(cmd *cobra.Command, base, flags config.SandboxConfig) config.SandboxConfig {
	cfg := base
	if cmd.Flags().Changed("addr") {
		cfg.Addr = flags.Addr
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = flags.DBPath
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if cmd.Flags().Changed("data") {
		cfg.DataPath = flags.DataPath
	}
	return cfg
}
