package htmldoc

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"
)

// Pinned CDN build of the embedded visualization library. Documents are
// self-contained apart from these two references.
const (
	DefaultScriptURL = "https://cdnjs.cloudflare.com/ajax/libs/vis-network/9.1.2/standalone/umd/vis-network.min.js"
	DefaultStyleURL  = "https://cdnjs.cloudflare.com/ajax/libs/vis-network/9.1.2/dist/dist/vis-network.min.css"
)

// ErrNotHTML is returned when an output filename does not end in .html.
var ErrNotHTML = errors.New("output file must have an .html extension")

//go:embed template.html
var templateSource string

var docTemplate = template.Must(template.New("netvis").Parse(templateSource))

// Data is everything the document template needs: validated node and edge
// attribute mappings in insertion order, the serialized options object,
// and the global display configuration.
type Data struct {
	Heading   string
	Height    string
	Width     string
	BGColor   string
	FontColor string

	Nodes       []map[string]any
	Edges       []map[string]any
	OptionsJSON string

	PhysicsEnabled        bool
	Configure             bool
	SelectMenu            bool
	NeighborhoodHighlight bool

	// DOT, when non-empty, switches the document to DOT pass-through
	// mode: the library parses the DOT source client-side and Nodes and
	// Edges are ignored.
	DOT string

	ScriptURL string
	StyleURL  string
}

// templateData is Data with the JSON payloads pre-marshaled so the
// template engine injects them without escaping.
type templateData struct {
	Data
	NodesJSON template.JS
	EdgesJSON template.JS
	Options   template.JS
	DOTSource template.JS
	UseDOT    bool
}

// Render produces the complete HTML document.
func Render(d Data) (string, error) {
	if d.ScriptURL == "" {
		d.ScriptURL = DefaultScriptURL
	}
	if d.StyleURL == "" {
		d.StyleURL = DefaultStyleURL
	}
	if d.OptionsJSON == "" {
		d.OptionsJSON = "{}"
	}

	nodes, err := json.Marshal(d.Nodes)
	if err != nil {
		return "", fmt.Errorf("marshal nodes: %w", err)
	}
	edges, err := json.Marshal(d.Edges)
	if err != nil {
		return "", fmt.Errorf("marshal edges: %w", err)
	}

	td := templateData{
		Data:      d,
		NodesJSON: template.JS(nodes),
		EdgesJSON: template.JS(edges),
		Options:   template.JS(d.OptionsJSON),
		UseDOT:    d.DOT != "",
	}
	if d.DOT != "" {
		dot, err := json.Marshal(d.DOT)
		if err != nil {
			return "", fmt.Errorf("marshal DOT source: %w", err)
		}
		td.DOTSource = template.JS(dot)
	}

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, td); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// CheckFilename validates that name has an .html extension.
func CheckFilename(name string) error {
	parts := strings.Split(name, ".")
	if len(parts) < 2 || parts[len(parts)-1] != "html" {
		return fmt.Errorf("%w: %s", ErrNotHTML, name)
	}
	return nil
}

// WriteFile renders the document and writes it to path. The path must end
// in .html.
func WriteFile(d Data, path string) error {
	if err := CheckFilename(path); err != nil {
		return err
	}
	html, err := Render(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// IFrame returns an inline frame snippet referencing a written document,
// used for notebook-style embedding where the artifact is surfaced in
// place instead of opened as a file.
func IFrame(src, width, height string) string {
	return fmt.Sprintf(
		`<iframe src=%q width=%q height=%q frameborder="0"></iframe>`,
		src, width, height)
}
