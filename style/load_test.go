package style

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "night.style.json"), []byte(`{"background_color": "#000"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "night.style.css"), []byte(`p{color:white}`), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(dir, "night")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.BackgroundColor != "#000" {
		t.Errorf("BackgroundColor = %q", d.BackgroundColor)
	}

	css, err := LoadStylesheet(dir, "night")
	if err != nil || string(css) != "p{color:white}" {
		t.Errorf("LoadStylesheet() = %q, %v", css, err)
	}

	if css, err := LoadStylesheet(dir, "missing"); err != nil || css != nil {
		t.Errorf("absent stylesheet: %q, %v", css, err)
	}

	if _, err := Load(dir, "missing"); err == nil {
		t.Error("expected error for missing style")
	}

	d, err = Load(dir, "")
	if err != nil {
		t.Fatalf("default style from directory without it: %v", err)
	}
	if _, ok := d.Block("body_text"); !ok {
		t.Error("embedded default style expected")
	}

	if _, err := Load("", "night"); err == nil {
		t.Error("expected error when styles directory is not configured")
	}
}
