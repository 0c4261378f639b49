package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.Height != "600px" {
		t.Errorf("Display.Height = %q, want %q", cfg.Display.Height, "600px")
	}
	if cfg.Display.Width != "100%" {
		t.Errorf("Display.Width = %q, want %q", cfg.Display.Width, "100%")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, "file")
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, "memory")
	}
}

// withConfigHome points XDG_CONFIG_HOME at a temp dir for the test duration.
func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, appName)
}

func TestLoadConfigMissing(t *testing.T) {
	withConfigHome(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing config file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := withConfigHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	content := `
[display]
height = "800px"
bgcolor = "#222222"

[server]
addr = ":9090"

[store]
backend = "mongo"
database = "graphs-prod"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Display.Height != "800px" {
		t.Errorf("Display.Height = %q, want %q", cfg.Display.Height, "800px")
	}
	if cfg.Display.BGColor != "#222222" {
		t.Errorf("Display.BGColor = %q, want %q", cfg.Display.BGColor, "#222222")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
	if cfg.Store.Backend != "mongo" {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, "mongo")
	}
	if cfg.Store.Database != "graphs-prod" {
		t.Errorf("Store.Database = %q, want %q", cfg.Store.Database, "graphs-prod")
	}

	// Unset keys keep their defaults
	if cfg.Display.Width != "100%" {
		t.Errorf("Display.Width = %q, want default %q", cfg.Display.Width, "100%")
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want default %q", cfg.Cache.Backend, "file")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := withConfigHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[display\nheight="), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() should fail on malformed TOML")
	}
	if cfg != DefaultConfig() {
		t.Errorf("malformed config should fall back to defaults, got %+v", cfg)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"html"}},
		{"html", []string{"html"}},
		{"html,svg,png", []string{"html", "svg", "png"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
