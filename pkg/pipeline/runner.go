package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vizlab/netvis/pkg/cache"
	"github.com/vizlab/netvis/pkg/network"
	"github.com/vizlab/netvis/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → assemble → render pipeline with
// artifact caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	src, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	if src.Graph != nil {
		result.Stats.NodeCount = src.Graph.NumNodes()
		result.Stats.EdgeCount = src.Graph.NumEdges()
	}
	result.GraphHash = cache.Hash(src.Raw)

	r.Logger.Info("loaded graph",
		"format", src.Format,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)

	// Try to serve every requested artifact from cache before assembling.
	if !opts.Refresh {
		if artifacts, ok := r.cachedArtifacts(ctx, result.GraphHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			r.Logger.Info("served artifacts from cache", "formats", opts.Formats)
			return result, nil
		}
	}

	// Stage 2: Assemble
	assembleStart := time.Now()
	net, err := Assemble(ctx, src, opts)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Stats.AssembleTime = time.Since(assembleStart)

	r.Logger.Info("assembled network",
		"nodes", net.Graph().NumNodes(),
		"edges", net.Graph().NumEdges(),
		"duration", result.Stats.AssembleTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, net, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	for format, data := range artifacts {
		key := r.artifactKey(result.GraphHash, format, opts)
		err := cache.RetryWithBackoff(ctx, func() error {
			return r.Cache.Set(ctx, key, data, r.ttl(format))
		})
		if err == nil {
			observability.Cache().OnCacheSet(ctx, format, len(data))
		}
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Assemble builds a network from raw options, running the load and
// assemble stages without rendering. The server uses it to rebuild a
// stored document on demand.
func (r *Runner) Assemble(ctx context.Context, opts Options) (*network.Network, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	src, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return Assemble(ctx, src, opts)
}

// cachedArtifacts tries to serve every requested format from cache.
// Transient backend failures are retried before counting as a miss.
func (r *Runner) cachedArtifacts(ctx context.Context, graphHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.artifactKey(graphHash, format, opts)
		var data []byte
		var hit bool
		err := cache.RetryWithBackoff(ctx, func() error {
			var gerr error
			data, hit, gerr = r.Cache.Get(ctx, key)
			return gerr
		})
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, format)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, format)
		artifacts[format] = data
	}
	return artifacts, true
}

// artifactKey derives the cache key for one output format.
func (r *Runner) artifactKey(graphHash, format string, opts Options) string {
	if format == FormatHTML {
		return r.Keyer.DocumentKey(graphHash, opts.DocumentKeyOpts())
	}
	return r.Keyer.PreviewKey(graphHash, cache.PreviewKeyOpts{Format: format})
}

// ttl returns the cache TTL for one output format.
func (r *Runner) ttl(format string) time.Duration {
	if format == FormatHTML {
		return cache.TTLDocument
	}
	return cache.TTLPreview
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
