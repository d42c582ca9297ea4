package packaging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFilesMissing(t *testing.T) {
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "Psp.toml"))
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("expected empty config, got %+v", *cfg)
	}
}

func TestLoadFilesDecodes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Psp.toml", `
title = "Sample"
disc_id = "ABCD-12345"
parental_level = 3
region = 32768
xmb_icon_png = "assets/icon0.png"
`)

	cfg, err := LoadFiles(path)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}

	if cfg.Title == nil || *cfg.Title != "Sample" {
		t.Errorf("Title = %v", cfg.Title)
	}
	if cfg.DiscID == nil || *cfg.DiscID != "ABCD-12345" {
		t.Errorf("DiscID = %v", cfg.DiscID)
	}
	if cfg.ParentalLevel == nil || *cfg.ParentalLevel != 3 {
		t.Errorf("ParentalLevel = %v", cfg.ParentalLevel)
	}
	if cfg.Region == nil || *cfg.Region != 32768 {
		t.Errorf("Region = %v", cfg.Region)
	}
	if cfg.XMBIconPNG == nil || *cfg.XMBIconPNG != "assets/icon0.png" {
		t.Errorf("XMBIconPNG = %v", cfg.XMBIconPNG)
	}
	if cfg.Language != nil {
		t.Errorf("Language = %q, want absent", *cfg.Language)
	}
}

func TestLoadFilesLayering(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.toml", `
language = "EN"
disc_version = "1.00"
`)
	project := writeFile(t, dir, "Psp.toml", `
disc_version = "1.01"
title = "Project"
`)

	cfg, err := LoadFiles(user, project)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}

	if got := *cfg.Language; got != "EN" {
		t.Errorf("Language = %q, want user default", got)
	}
	if got := *cfg.DiscVersion; got != "1.01" {
		t.Errorf("DiscVersion = %q, want project override", got)
	}
	if got := *cfg.Title; got != "Project" {
		t.Errorf("Title = %q", got)
	}
}

func TestLoadFilesUnknownKeysIgnored(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Psp.toml", `
titel = "typo"
disc_id = "ABCD-12345"
`)

	cfg, err := LoadFiles(path)
	if err != nil {
		t.Fatalf("LoadFiles() error = %v", err)
	}
	if cfg.DiscID == nil || *cfg.DiscID != "ABCD-12345" {
		t.Errorf("DiscID = %v", cfg.DiscID)
	}
	if cfg.Title != nil {
		t.Errorf("Title = %q, want absent", *cfg.Title)
	}
}

func TestLoadFilesParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Psp.toml", "title = \"Sample\"\ndisc_id = \n")

	_, err := LoadFiles(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("expected ErrConfigParse, got %v", err)
	}
	if !strings.Contains(err.Error(), path+":2:") {
		t.Errorf("error %q does not locate line 2", err)
	}
}

func TestLoadFilesTypeMismatch(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Psp.toml", `parental_level = "high"`)

	if _, err := LoadFiles(path); !errors.Is(err, ErrConfigParse) {
		t.Fatalf("expected ErrConfigParse, got %v", err)
	}
}

func TestLoadFilesUnreadable(t *testing.T) {
	dir := t.TempDir()

	// A directory cannot be read as a file.
	if err := os.Mkdir(filepath.Join(dir, "Psp.toml"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFiles(filepath.Join(dir, "Psp.toml")); !errors.Is(err, ErrConfigRead) {
		t.Fatalf("expected ErrConfigRead, got %v", err)
	}
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Psp.toml", `title = "From project"`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Title == nil || *cfg.Title != "From project" {
		t.Errorf("Title = %v", cfg.Title)
	}
}

func TestTitleOr(t *testing.T) {
	cfg := &Config{}
	if got := cfg.TitleOr("game"); got != "game" {
		t.Errorf("TitleOr() = %q, want fallback", got)
	}

	title := ""
	cfg.Title = &title
	if got := cfg.TitleOr("game"); got != "" {
		t.Errorf("TitleOr() = %q, want empty configured title", got)
	}
}
