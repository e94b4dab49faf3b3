package sandbox

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/sufragio/internal/config"
	"github.com/alexanderramin/sufragio/internal/db"
	"github.com/alexanderramin/sufragio/internal/importer"
	"github.com/alexanderramin/sufragio/internal/service"
)

const shutdownTimeout = 5 * time.Second

// Run opens the sandbox database, optionally seeds it, and serves the API
// until ctx is cancelled. ready, when non-nil, receives the bound address
// once the listener is open.
func Run(ctx context.Context, cfg config.SandboxConfig, logger *slog.Logger, ready func(addr string)) error {
	path := cfg.DBPath
	if path == "" {
		path = db.MemoryPath
	}
	database, err := db.OpenDB(path)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Seed {
		ds, err := dataset(cfg.DataPath)
		if err != nil {
			return err
		}
		seeded, err := Import(ctx, db.NewSQLiteUnitOfWork(database), ds)
		if err != nil {
			return fmt.Errorf("seeding sandbox: %w", err)
		}
		logger.InfoContext(ctx, "sandbox seed",
			slog.Bool("written", seeded),
			slog.String("data", cmp.Or(cfg.DataPath, "demo")))
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Addr, err)
	}

	srv := &http.Server{
		Handler:           NewRouter(NewServices(database, service.NewLogUseCaseObserver(logger, nil)), logger),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(ctx, "sandbox listening",
			slog.String("addr", ln.Addr().String()),
			slog.String("db", path))
		if ready != nil {
			ready(ln.Addr().String())
		}
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("sandbox server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.InfoContext(ctx, "sandbox shutting down")
		return srv.Shutdown(shutCtx)
	})
	return g.Wait()
}

func dataset(path string) (*importer.Dataset, error) {
	if path == "" {
		return DemoDataset()
	}
	ds, err := importer.LoadDataset(path)
	if err != nil {
		return nil, fmt.Errorf("loading data set %s: %w", path, err)
	}
	return ds, nil
}
