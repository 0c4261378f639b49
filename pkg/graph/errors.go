package graph

import "errors"

var (
	// ErrInvalidID is returned when a node identity is empty or of an
	// unsupported kind. Identities must be strings or numbers.
	ErrInvalidID = errors.New("node ID must be a non-empty string or a number")

	// ErrDuplicateID is returned by [Graph.AddNode] and [Graph.AddNodes]
	// when a node with the same identity already exists. Node identities
	// must be unique within a graph.
	ErrDuplicateID = errors.New("duplicate node ID")

	// ErrLengthMismatch is returned by [Graph.AddNodes] when a bulk
	// attribute vector does not have one value per supplied ID.
	ErrLengthMismatch = errors.New("attribute length does not match number of IDs")

	// ErrUnknownAttr is returned by [Graph.AddNodes] when a bulk attribute
	// key is not in the recognized allow-list.
	ErrUnknownAttr = errors.New("unknown bulk attribute")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when an endpoint
	// references a node that does not exist and auto-endpoint creation is
	// disabled.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")

	// ErrNodeNotFound is returned by [Graph.GetNode] and [Graph.Neighbors]
	// on a lookup miss.
	ErrNodeNotFound = errors.New("node not found")
)
