package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/banshee-data/pointcloud/internal/api"
	"github.com/banshee-data/pointcloud/internal/config"
	"github.com/banshee-data/pointcloud/internal/designs"
	"github.com/banshee-data/pointcloud/internal/fsutil"
	"github.com/banshee-data/pointcloud/internal/rpc"
	"github.com/banshee-data/pointcloud/internal/shapes"
	"github.com/banshee-data/pointcloud/internal/version"
)

var (
	configPath  = flag.String("config", "", "Path to a .json/.yaml config file")
	listen      = flag.String("listen", "0.0.0.0:5000", "HTTP listen address")
	grpcListen  = flag.String("grpc-listen", "", "gRPC listen address (empty disables gRPC)")
	storeKind   = flag.String("store", config.StoreFile, "Design store backend: file or sqlite")
	designsDir  = flag.String("designs-dir", designs.DefaultDir, "Directory for the file design store")
	dbPath      = flag.String("db-path", "designs.db", "SQLite database for the sqlite design store")
	debug       = flag.Bool("debug", true, "Mount /debug/ admin routes")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// loadConfig reads the optional config file named by -config and lets
// explicitly set flags override it.
func loadConfig(fs *flag.FlagSet) (*config.Config, error) {
	cfg := &config.Config{}
	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		var err error
		if cfg, err = config.Load(f.Value.String()); err != nil {
			return nil, err
		}
	}

	var o config.Overrides
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "listen":
			o.Listen = &v
		case "grpc-listen":
			o.GRPCListen = &v
		case "store":
			o.Store = &v
		case "designs-dir":
			o.DesignsDir = &v
		case "db-path":
			o.DBPath = &v
		case "debug":
			b, err := strconv.ParseBool(v)
			if err != nil {
				visitErr = fmt.Errorf("invalid -debug value %q: %w", v, err)
				return
			}
			o.Debug = &b
		}
	})
	if visitErr != nil {
		return nil, visitErr
	}
	if err := cfg.Apply(o); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured design backend. The returned func releases
// it; attach mounts backend admin routes and may be nil.
func openStore(cfg *config.Config) (store designs.Store, closeFn func() error, attach func(*http.ServeMux), err error) {
	switch cfg.GetStore() {
	case config.StoreSQLite:
		sq, err := designs.OpenSQLiteStore(cfg.GetDBPath())
		if err != nil {
			return nil, nil, nil, err
		}
		return sq, sq.Close, sq.AttachAdminRoutes, nil
	default:
		fsStore := designs.NewFileStore(fsutil.OSFileSystem{}, cfg.GetDesignsDir())
		return fsStore, func() error { return nil }, nil, nil
	}
}

// newHandler builds the HTTP handler: API routes, optional /debug/ pages and
// the request logger.
func newHandler(cfg *config.Config, registry *shapes.Registry, store designs.Store, attach func(*http.ServeMux)) http.Handler {
	srv := api.NewServer(registry, store, cfg.GetStore())
	srv.ChartAssetsHost = cfg.GetChartAssetsHost()

	mux := srv.ServeMux()
	if cfg.GetDebug() {
		srv.AttachAdminRoutes(mux)
		if attach != nil {
			attach(mux)
		}
	}
	return api.LoggingMiddleware(mux)
}

// Main
func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := loadConfig(flag.CommandLine)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Printf("starting %s", version.String())

	store, closeStore, attachStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open %s design store: %v", cfg.GetStore(), err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("failed to close design store: %v", err)
		}
	}()

	registry := shapes.NewRegistry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create a wait group for the HTTP and gRPC server routines
	var wg sync.WaitGroup

	// HTTP server goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()

		server := &http.Server{
			Addr:              cfg.GetListen(),
			Handler:           newHandler(cfg, registry, store, attachStore),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Start server in a goroutine so it doesn't block
		go func() {
			log.Printf("HTTP server listening on %s", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("failed to start server: %v", err)
			}
		}()

		// Wait for context cancellation to shut down server
		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
			// Force close the server if graceful shutdown fails
			if err := server.Close(); err != nil {
				log.Printf("HTTP server force close error: %v", err)
			}
		}

		log.Printf("HTTP server routine stopped")
	}()

	// gRPC server goroutine
	if addr := cfg.GetGRPCListen(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatalf("failed to listen for gRPC on %s: %v", addr, err)
		}
		gs := rpc.NewGRPCServer(registry)

		wg.Add(1)
		go func() {
			defer wg.Done()
			go func() {
				log.Printf("gRPC server listening on %s", addr)
				if err := gs.Serve(lis); err != nil {
					log.Printf("gRPC server error: %v", err)
				}
			}()

			<-ctx.Done()
			log.Println("shutting down gRPC server...")

			stopped := make(chan struct{})
			go func() {
				gs.GracefulStop()
				close(stopped)
			}()
			select {
			case <-stopped:
			case <-time.After(cfg.GetShutdownTimeout()):
				gs.Stop()
			}
			log.Printf("gRPC server routine stopped")
		}()
	}

	// Wait for all goroutines to finish
	wg.Wait()
	log.Printf("Graceful shutdown complete")
}
