package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStatic(t *testing.T, variant string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, variant), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, variant, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func setBaseEnv(t *testing.T, staticDir string) {
	t.Helper()
	t.Setenv("CONFERENCE_ENDPOINT", "https://conference.example.com")
	t.Setenv("STATIC_DIR", staticDir)
	// Clear anything the host environment might carry.
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("APP_VARIANT", "")
	t.Setenv("DEBUG", "")
	t.Setenv("ACCESS_LOG", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t, writeStatic(t, "meeting"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.AppVariant != "meeting" {
		t.Errorf("AppVariant = %q", cfg.AppVariant)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if cfg.AccessLogPath != "./logs/access.log" {
		t.Errorf("AccessLogPath = %q", cfg.AccessLogPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t, writeStatic(t, "webinar"))
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("APP_VARIANT", "webinar")
	t.Setenv("DEBUG", "true")
	t.Setenv("CONFERENCE_API_KEY", "sekrit")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.AppVariant != "webinar" {
		t.Errorf("AppVariant = %q", cfg.AppVariant)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.ConferenceAPIKey != "sekrit" {
		t.Errorf("ConferenceAPIKey = %q", cfg.ConferenceAPIKey)
	}
}

func TestLoadMissingEndpoint(t *testing.T) {
	setBaseEnv(t, writeStatic(t, "meeting"))
	t.Setenv("CONFERENCE_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatal("missing CONFERENCE_ENDPOINT should be fatal")
	}
}

func TestLoadInvalidEndpoint(t *testing.T) {
	setBaseEnv(t, writeStatic(t, "meeting"))
	t.Setenv("CONFERENCE_ENDPOINT", "not a url")

	if _, err := Load(); err == nil {
		t.Fatal("invalid CONFERENCE_ENDPOINT should be fatal")
	}
}

func TestLoadInvalidDebug(t *testing.T) {
	setBaseEnv(t, writeStatic(t, "meeting"))
	t.Setenv("DEBUG", "maybe")

	if _, err := Load(); err == nil {
		t.Fatal("unparseable DEBUG should be fatal")
	}
}

func TestLoadMissingStaticPage(t *testing.T) {
	setBaseEnv(t, writeStatic(t, "meeting"))
	t.Setenv("APP_VARIANT", "missing-variant")

	if _, err := Load(); err == nil {
		t.Fatal("missing static page should be fatal")
	}
}

func TestIndexPath(t *testing.T) {
	cfg := &Config{StaticDir: "/srv/static", AppVariant: "meeting"}
	if got := cfg.IndexPath(); got != filepath.Join("/srv/static", "meeting", "index.html") {
		t.Errorf("IndexPath = %q", got)
	}
}
