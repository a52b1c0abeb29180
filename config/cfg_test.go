package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rupor-github/gencfg"

	"ia2amp/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.CSSPrefix != "ia2amp-" {
		t.Errorf("CSSPrefix = %q, want ia2amp-", doc.CSSPrefix)
	}
	if doc.Cover.Sizing != common.ImageSizingModeViewport {
		t.Errorf("Cover.Sizing = %s, want viewport", doc.Cover.Sizing)
	}
	if doc.Media.Fetch {
		t.Error("Media.Fetch should be off by default")
	}
	if doc.Media.DefaultWidth != 380 || doc.Media.DefaultHeight != 240 {
		t.Errorf("default media size = %dx%d, want 380x240", doc.Media.DefaultWidth, doc.Media.DefaultHeight)
	}
	if doc.Media.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", doc.Media.FetchTimeout)
	}
	// template fields must survive expansion untouched
	if !strings.Contains(doc.DateTemplate, "{{") {
		t.Errorf("DateTemplate was expanded: %q", doc.DateTemplate)
	}
	if len(doc.MapsAPIKey) != 0 || len(doc.Analytics) != 0 {
		t.Error("no maps key or analytics expected by default")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
document:
  language: pt-BR
  rtl: true
  css_prefix: "news-"
  style: dark
  cover:
    sizing: scaled
  media:
    fetch: true
    fetch_timeout: 3s
    default_width: 640
    default_height: 360
    sizes:
      "https://example.com/a.jpg": { width: 800, height: 454 }
  publisher:
    "@type": Organization
    name: Example
  maps_api_key: very-secret
  analytics:
    - '<amp-pixel src="https://example.com/pixel"></amp-pixel>'
logging:
  console:
    level: debug
reporting:
  destination: report.zip
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.Language != "pt-BR" || !doc.RTL || doc.CSSPrefix != "news-" || doc.Style != "dark" {
		t.Errorf("unexpected document settings: %+v", doc)
	}
	if doc.Cover.Sizing != common.ImageSizingModeScaled {
		t.Errorf("Cover.Sizing = %s, want scaled", doc.Cover.Sizing)
	}
	if !doc.Media.Fetch || doc.Media.FetchTimeout != 3*time.Second {
		t.Errorf("unexpected media fetch settings: %+v", doc.Media)
	}
	if w, h := doc.Media.DefaultSize(); w != 640 || h != 360 {
		t.Errorf("DefaultSize() = %dx%d, want 640x360", w, h)
	}
	if d := doc.Media.Sizes["https://example.com/a.jpg"]; d.Width != 800 || d.Height != 454 {
		t.Errorf("explicit size = %+v", d)
	}
	pub, ok := doc.Publisher.(map[string]any)
	if !ok || pub["name"] != "Example" {
		t.Errorf("Publisher = %#v", doc.Publisher)
	}
	if doc.MapsAPIKey.Reveal() != "very-secret" {
		t.Errorf("MapsAPIKey = %q", doc.MapsAPIKey.Reveal())
	}
	if len(doc.Analytics) != 1 {
		t.Errorf("Analytics length = %d, want 1", len(doc.Analytics))
	}
	// untouched sections keep defaults
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file logger level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ndocument:\n  rtl: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad language", "version: 1\ndocument:\n  language: \"not a language\"\n"},
		{"bad sizing", "version: 1\ndocument:\n  cover:\n    sizing: stretched\n"},
		{"empty prefix", "version: 1\ndocument:\n  css_prefix: \"\"\n"},
		{"zero explicit size", "version: 1\ndocument:\n  media:\n    sizes:\n      \"https://example.com/a.jpg\": { width: 0, height: 10 }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	if _, err := LoadConfiguration("", option); err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	cfg := &Config{}
	if _, err = unmarshalConfig(data, cfg, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump_HidesSecrets(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Document.MapsAPIKey = "AIza-real-key"

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if strings.Contains(string(data), "AIza-real-key") {
		t.Error("dumped configuration reveals maps key")
	}
	if !strings.Contains(string(data), SecretStringValue) {
		t.Error("dumped configuration does not mention masked key")
	}

	cfg2 := &Config{}
	if _, err = unmarshalConfig(data, cfg2, false); err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Document.Cover.Sizing != cfg.Document.Cover.Sizing || cfg2.Document.DateTemplate != cfg.Document.DateTemplate {
		t.Error("dumped configuration does not round trip")
	}
}

func TestMediaConfig_DefaultSize(t *testing.T) {
	var m MediaConfig
	if w, h := m.DefaultSize(); w != DefaultMediaWidth || h != DefaultMediaHeight {
		t.Errorf("DefaultSize() = %dx%d, want %dx%d", w, h, DefaultMediaWidth, DefaultMediaHeight)
	}
}
