package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	input := filepath.Join(dir, "article.yaml")
	if err := os.WriteFile(input, []byte("title: before"), 0644); err != nil {
		t.Fatal(err)
	}
	log := filepath.Join(dir, "run.log")
	if err := os.WriteFile(log, []byte("started"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.StoreCopy("article.yaml", input); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	r.Store("final.log", log)
	r.StoreData("output.html", []byte("<!doctype html>"))
	r.StoreData("output.html", []byte("second"))
	r.Store("missing.log", filepath.Join(dir, "never-created.log"))

	// copy must not see later changes, stored path must
	if err := os.WriteFile(input, []byte("title: after"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(log, []byte("finished"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	files := readArchive(t, conf.Destination)
	if files["article.yaml"] != "title: before" {
		t.Errorf("article.yaml = %q", files["article.yaml"])
	}
	if files["final.log"] != "finished" {
		t.Errorf("final.log = %q", files["final.log"])
	}
	if files["output.html"] != "<!doctype html>" {
		t.Errorf("output.html = %q", files["output.html"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file should not be archived")
	}
	var versioned int
	for name := range files {
		if strings.HasPrefix(name, "output.html-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected one versioned output entry, got %d", versioned)
	}
	if !strings.Contains(files["MANIFEST"], "article.yaml") {
		t.Errorf("MANIFEST does not list article: %q", files["MANIFEST"])
	}
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "/nonexistent"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
}

func TestReport_StoreCopyMissing(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.StoreCopy("x", filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for absent file")
	}
}
