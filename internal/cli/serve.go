package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vizlab/netvis/pkg/cache"
	"github.com/vizlab/netvis/pkg/pipeline"
	"github.com/vizlab/netvis/pkg/server"
	"github.com/vizlab/netvis/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr         string
	storeBackend string
	mongoURI     string
	database     string
	collection   string
	cacheBackend string
	redisAddr    string
}

// serveCommand creates the serve command for running the viewer server.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:         c.Config.Server.Addr,
		storeBackend: c.Config.Store.Backend,
		mongoURI:     c.Config.Store.MongoURI,
		database:     c.Config.Store.Database,
		collection:   c.Config.Store.Collection,
		cacheBackend: c.Config.Cache.Backend,
		redisAddr:    c.Config.Cache.RedisAddr,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stored graphs as interactive visualizations",
		Long: `Serve stored graphs as interactive visualizations.

The server persists named graph documents and renders them on demand:

  POST   /graphs          store a document
  GET    /graphs          list documents
  GET    /graphs/{id}     view the rendered page
  DELETE /graphs/{id}     remove a document

Use --store mongo for persistence across restarts and --cache redis to
share rendered artifacts between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.storeBackend, "store", opts.storeBackend, "document store: memory (default), mongo")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB connection URI")
	cmd.Flags().StringVar(&opts.database, "mongo-db", opts.database, "MongoDB database name")
	cmd.Flags().StringVar(&opts.collection, "mongo-collection", opts.collection, "MongoDB collection name")
	cmd.Flags().StringVar(&opts.cacheBackend, "cache", opts.cacheBackend, "artifact cache: file (default), redis, none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "Redis address (host:port)")

	return cmd
}

// runServe wires the store, cache, and pipeline into a server and runs
// it until the context is canceled.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	st, err := newStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close(context.Background()) }()

	artifactCache, err := newServerCache(ctx, opts)
	if err != nil {
		return err
	}

	// Scope keys per store backend so instances sharing one Redis do not
	// serve each other's rendered documents.
	keyer := cache.NewScopedKeyer(nil, opts.storeBackend+":")
	runner := pipeline.NewRunner(artifactCache, keyer, c.Logger)
	defer runner.Close()

	srv := server.New(st, runner, c.Logger)
	c.Logger.Info("starting server",
		"addr", opts.addr,
		"store", opts.storeBackend,
		"cache", opts.cacheBackend)
	return srv.ListenAndServe(ctx, opts.addr)
}

// newStore builds the configured document store backend.
func newStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	switch opts.storeBackend {
	case "memory", "":
		return store.NewMemoryStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, opts.mongoURI, opts.database, opts.collection)
	default:
		return nil, fmt.Errorf("invalid store backend: %q (must be memory or mongo)", opts.storeBackend)
	}
}

// newServerCache builds the configured artifact cache backend.
func newServerCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch opts.cacheBackend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	case "file", "":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("invalid cache backend: %q (must be file, redis, or none)", opts.cacheBackend)
	}
}
