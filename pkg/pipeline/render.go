package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/vizlab/netvis/pkg/network"
	"github.com/vizlab/netvis/pkg/observability"
	"github.com/vizlab/netvis/pkg/render/dotpreview"
)

// Render produces the requested artifacts from an assembled network.
func Render(ctx context.Context, net *network.Network, opts Options) (artifacts map[string][]byte, err error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	artifacts = make(map[string][]byte, len(opts.Formats))
	var dot string // lazily built, shared between svg and png

	for _, format := range opts.Formats {
		switch format {
		case FormatHTML:
			html, err := net.GenerateHTML()
			if err != nil {
				return nil, fmt.Errorf("render html: %w", err)
			}
			artifacts[FormatHTML] = []byte(html)
		case FormatSVG, FormatPNG:
			if dot == "" {
				dot = previewDOT(net)
			}
			var data []byte
			var rerr error
			if format == FormatSVG {
				data, rerr = dotpreview.RenderSVG(ctx, dot)
			} else {
				data, rerr = dotpreview.RenderPNG(ctx, dot)
			}
			if rerr != nil {
				return nil, fmt.Errorf("render %s: %w", format, rerr)
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return artifacts, nil
}

// previewDOT picks the Graphviz source for static previews. A network in
// DOT pass-through mode has an empty registry, so its original source is
// used; registry networks are converted.
func previewDOT(net *network.Network) string {
	if dot := net.DOT(); dot != "" {
		return dot
	}
	return dotpreview.ToDOT(net.Graph())
}
