// Package htmldoc emits the final self-contained HTML document embedding
// the visualization library and the serialized node/edge data.
//
// The emitter is deliberately dumb: it accepts validated node and edge
// attribute mappings in insertion order plus global display configuration,
// injects them into an embedded template, and writes one artifact. All
// layout and rendering happens client-side in the referenced library
// build, which is pinned to a fixed CDN version.
//
// # Contextual escaping
//
// The template is an html/template, so the heading and color values are
// escaped for their HTML and CSS contexts. The node, edge, and options
// payloads are marshaled with encoding/json first and injected as
// template.JS, which keeps them byte-exact inside the script block.
package htmldoc
