package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vizlab/netvis/pkg/pipeline"
	"github.com/vizlab/netvis/pkg/render/htmldoc"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output        string // output file path (or base path for multiple formats)
	formatsStr    string // comma-separated output formats
	optionsFile   string // path to a raw options JSON override
	heading       string
	height        string
	width         string
	bgcolor       string
	fontColor     string
	directed      bool
	physics       bool
	hierarchical  bool
	autoEndpoints bool
	showButtons   bool
	selectMenu    bool
	highlight     bool
	noCache       bool
	refresh       bool
}

// buildCommand creates the build command for rendering a graph file.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{
		height:    c.Config.Display.Height,
		width:     c.Config.Display.Width,
		bgcolor:   c.Config.Display.BGColor,
		fontColor: c.Config.Display.FontColor,
	}

	cmd := &cobra.Command{
		Use:   "build [graph.json|graph.dot]",
		Short: "Build an interactive visualization from a graph file",
		Long: `Build an interactive visualization from a graph file.

The build command reads a serialized graph (JSON) or a DOT file and
emits a self-contained HTML page. SVG and PNG previews can be produced
alongside with --format.

Artifacts are cached locally by content hash for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runBuild(cmd.Context(), args[0], formats, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formatsStr, "format", "f", "", "output format(s): html (default), svg, png (comma-separated)")
	cmd.Flags().StringVar(&opts.optionsFile, "options", "", "options JSON file pasted from the in-page editor")
	cmd.Flags().StringVar(&opts.heading, "heading", "", "document heading")
	cmd.Flags().StringVar(&opts.height, "height", opts.height, "canvas height (CSS length)")
	cmd.Flags().StringVar(&opts.width, "width", opts.width, "canvas width (CSS length)")
	cmd.Flags().StringVar(&opts.bgcolor, "bgcolor", opts.bgcolor, "canvas background color")
	cmd.Flags().StringVar(&opts.fontColor, "font-color", opts.fontColor, "node label color")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "force a directed network regardless of the input")
	cmd.Flags().BoolVar(&opts.physics, "physics", true, "enable the physics simulation")
	cmd.Flags().BoolVar(&opts.hierarchical, "hierarchical", false, "use the hierarchical layout")
	cmd.Flags().BoolVar(&opts.autoEndpoints, "auto-endpoints", false, "create missing edge endpoints as bare nodes")
	cmd.Flags().BoolVar(&opts.showButtons, "buttons", false, "include the in-page options editor")
	cmd.Flags().BoolVar(&opts.selectMenu, "select-menu", false, "include a node selection menu")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "dim everything but the selected neighborhood on click")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// runBuild executes the pipeline and writes the artifacts.
func (c *CLI) runBuild(ctx context.Context, input string, formats []string, opts buildOpts) error {
	popts := pipeline.Options{
		InputPath:     input,
		Heading:       opts.heading,
		Height:        opts.height,
		Width:         opts.width,
		BGColor:       opts.bgcolor,
		FontColor:     opts.fontColor,
		Directed:      opts.directed,
		Hierarchical:  opts.hierarchical,
		NoPhysics:     !opts.physics,
		AutoEndpoints: opts.autoEndpoints,
		ShowButtons:   opts.showButtons,
		SelectMenu:    opts.selectMenu,
		Highlight:     opts.highlight,
		Formats:       formats,
		Refresh:       opts.refresh,
		Logger:        c.Logger,
	}

	if opts.optionsFile != "" {
		raw, err := os.ReadFile(opts.optionsFile)
		if err != nil {
			return fmt.Errorf("read options file: %w", err)
		}
		popts.RawOptions = string(raw)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s...", filepath.Base(input)))
	spinner.Start()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()

	printSuccess("Built %s", filepath.Base(input))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)

	return writeArtifacts(result.Artifacts, formats, input, opts.output)
}

// writeArtifacts writes each rendered artifact to its output path.
// With one format, the output flag (or the input name with a swapped
// extension) is used directly; with several, it is treated as a base path.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	base := basePath(output, input)

	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if format == pipeline.FormatHTML {
			if err := htmldoc.CheckFilename(path); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output
// carries a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
