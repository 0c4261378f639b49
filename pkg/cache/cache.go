// Package cache provides the artifact cache used by the pipeline and the
// viewer server. Rendered documents and previews are cheap to rebuild
// but expensive to rebuild on every request, so they are keyed by the
// content hash of the serialized graph plus the display configuration
// that shaped the artifact.
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact type. Documents and previews derive
// deterministically from their inputs, so long TTLs are safe; the hash
// key changes whenever the content does.
const (
	TTLDocument = 7 * 24 * time.Hour
	TTLPreview  = 7 * 24 * time.Hour
)

// Cache stores rendered artifacts keyed by content hash. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; expired entries count as absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration; a negative
	// ttl means the entry is already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// DocumentKeyOpts captures the display configuration that changes the
// rendered HTML for the same graph content. Every field that shapes the
// output document must appear here, otherwise two different renders
// would collide on the same key.
type DocumentKeyOpts struct {
	Height       string
	Width        string
	BGColor      string
	FontColor    string
	Heading      string
	Options      string // serialized options object
	Directed     bool
	Hierarchical bool
	NoPhysics    bool
	ShowButtons  bool
	SelectMenu   bool
	Highlight    bool
}

// PreviewKeyOpts captures what changes a static Graphviz preview.
type PreviewKeyOpts struct {
	Format string // svg or png
}

// Keyer generates cache keys. Separating key generation from storage
// lets the server prefix keys per tenant without touching the backends.
type Keyer interface {
	// DocumentKey keys a rendered HTML document by graph content hash
	// and display configuration.
	DocumentKey(graphHash string, opts DocumentKeyOpts) string

	// PreviewKey keys a static preview image by graph content hash and
	// output format.
	PreviewKey(graphHash string, opts PreviewKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a type prefix followed by a
// SHA-256 digest of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DocumentKey implements Keyer.
func (k *DefaultKeyer) DocumentKey(graphHash string, opts DocumentKeyOpts) string {
	return hashKey("doc", graphHash, opts)
}

// PreviewKey implements Keyer.
func (k *DefaultKeyer) PreviewKey(graphHash string, opts PreviewKeyOpts) string {
	return hashKey("preview", graphHash, opts)
}
