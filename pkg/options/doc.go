// Package options models the configuration object of the embedded
// visualization library: physics solvers, edge smoothing, interaction
// toggles, hierarchical layout, and the in-page options editor.
//
// The struct field names deliberately mirror the library's JSON schema
// because [Options.JSON] is injected into the generated document verbatim.
// A raw JSON override captured from the in-browser editor can replace the
// typed model wholesale via [Options.SetRaw].
package options
