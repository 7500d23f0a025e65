package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/soleren/mandala/internal/server"
	"github.com/soleren/mandala/pkg/cache"
	"github.com/soleren/mandala/pkg/pipeline"
	"github.com/soleren/mandala/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	mongoURI  string // MongoDB connection string; empty selects memory store
	redisAddr string // Redis address; empty selects the file cache
	noCache   bool   // disable render caching entirely
}

// newServeCmd creates the serve command for the HTTP preview server.
//
// Storage defaults to in-memory (saved wheels vanish on restart); pass
// --mongo-uri for persistence. Caching defaults to the file cache; pass
// --redis-addr to share a cache between instances.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP preview server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for saved wheels (default: in-memory)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for the render cache (default: file cache)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable render caching")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	c, err := serveCache(ctx, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	st, err := serveStore(ctx, opts)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Runner: pipeline.NewRunner(c, nil, logger),
		Store:  st,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redisAddr})
	}
	return newCache(false), nil
}

func serveStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, store.MongoConfig{URI: opts.mongoURI})
}
