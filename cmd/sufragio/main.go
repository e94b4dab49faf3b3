package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/sufragio/internal/cli"
	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version string

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, formatter.FormatError(err.Error()))
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv("SUFRAGIO_CONFIG")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	app := cli.NewApp(*cfg, os.Stderr)
	app.Version = version

	// The bare command opens the console only on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
