// Package store persists named graph documents so the viewer server can
// list and re-render them later. The unit of storage is the serialized
// registry plus the display configuration it was built with, which is
// everything needed to reproduce the HTML artifact.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vizlab/netvis/pkg/graph"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// Display is the document-level display configuration, stored alongside
// the graph so re-renders match the original artifact.
type Display struct {
	Height    string `json:"height,omitempty" bson:"height,omitempty"`
	Width     string `json:"width,omitempty" bson:"width,omitempty"`
	BGColor   string `json:"bgcolor,omitempty" bson:"bgcolor,omitempty"`
	FontColor string `json:"font_color,omitempty" bson:"font_color,omitempty"`
	Heading   string `json:"heading,omitempty" bson:"heading,omitempty"`
}

// Document is one stored visualization: a named graph with its options
// and display configuration.
type Document struct {
	ID        string         `json:"id" bson:"_id"`
	Name      string         `json:"name" bson:"name"`
	Graph     graph.Document `json:"graph" bson:"graph"`
	Options   string         `json:"options,omitempty" bson:"options,omitempty"`
	Display   Display        `json:"display" bson:"display"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// NewDocument assembles a document with a fresh identifier and creation
// timestamp.
func NewDocument(name string, g graph.Document, options string, display Display) Document {
	return Document{
		ID:        uuid.NewString(),
		Name:      name,
		Graph:     g,
		Options:   options,
		Display:   display,
		CreatedAt: time.Now().UTC(),
	}
}

// Store persists documents. Implementations must be safe for concurrent
// use.
type Store interface {
	// Save inserts or replaces a document by ID.
	Save(ctx context.Context, doc Document) error

	// Get retrieves a document by ID, returning ErrNotFound when absent.
	Get(ctx context.Context, id string) (Document, error)

	// List returns all documents ordered by creation time, newest first.
	List(ctx context.Context) ([]Document, error)

	// Delete removes a document by ID, returning ErrNotFound when absent.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
