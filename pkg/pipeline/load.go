package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vizlab/netvis/pkg/graph"
	"github.com/vizlab/netvis/pkg/observability"
)

// Source is the loaded input: either a validated graph registry or raw
// DOT text handed to the renderer untouched.
type Source struct {
	Format string
	Graph  *graph.Graph // set for JSON input
	DOT    string       // set for DOT input
	Raw    []byte       // the input bytes, used for content hashing
}

// inferInputFormat guesses the input format from a file extension,
// defaulting to JSON.
func inferInputFormat(path string) string {
	switch {
	case strings.HasSuffix(path, ".dot"), strings.HasSuffix(path, ".gv"):
		return InputDOT
	default:
		return InputJSON
	}
}

// Load reads and validates the pipeline input.
func Load(ctx context.Context, opts Options) (src Source, err error) {
	start := time.Now()
	name := opts.InputPath
	if name == "" {
		name = "(inline)"
	}
	observability.Pipeline().OnLoadStart(ctx, opts.InputFormat, name)
	defer func() {
		nodes := 0
		if src.Graph != nil {
			nodes = src.Graph.NumNodes()
		}
		observability.Pipeline().OnLoadComplete(ctx, opts.InputFormat, name, nodes, time.Since(start), err)
	}()

	raw := opts.Input
	if opts.InputPath != "" {
		raw, err = os.ReadFile(opts.InputPath)
		if err != nil {
			return Source{}, fmt.Errorf("read input: %w", err)
		}
	}

	src = Source{Format: opts.InputFormat, Raw: raw}
	switch opts.InputFormat {
	case InputDOT:
		src.DOT = string(raw)
	case InputJSON:
		var gopts []graph.Option
		if opts.AutoEndpoints {
			gopts = append(gopts, graph.WithAutoEndpoints())
		}
		g, err := graph.Read(bytes.NewReader(raw), gopts...)
		if err != nil {
			return Source{}, fmt.Errorf("load graph: %w", err)
		}
		src.Graph = g
	default:
		return Source{}, fmt.Errorf("invalid input format: %q", opts.InputFormat)
	}
	return src, nil
}
