package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.TargetFPS != 60 {
		t.Errorf("TargetFPS = %d, want 60", s.TargetFPS)
	}
	if s.SplashDuration != 3*time.Second {
		t.Errorf("SplashDuration = %v, want 3s", s.SplashDuration)
	}
	if s.InitialState != StateEdit {
		t.Errorf("InitialState = %q, want %q", s.InitialState, StateEdit)
	}
	if s.AssetsDir != filepath.Join(dir, "assets") {
		t.Errorf("AssetsDir = %q, want under %q", s.AssetsDir, dir)
	}
	if s.OverlayEnabled() {
		t.Error("overlay enabled by default")
	}
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, SettingsFile), `
[editor]
debug = true
target_fps = 30
splash_duration = "1s"
initial_state = "browser"

[theme]
accent = "#ff0000"
`)
	t.Setenv("SENDAMA_EDITOR_SHOW_DEBUG_INFO", "true")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("fps", 60, "")
	flags.String("backend", BackendANSI, "")
	if err := flags.Parse([]string{"--fps", "45"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	s, err := Load(dir, flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.TargetFPS != 45 {
		t.Errorf("TargetFPS = %d, want flag value 45", s.TargetFPS)
	}
	if s.SplashDuration != time.Second {
		t.Errorf("SplashDuration = %v, want 1s", s.SplashDuration)
	}
	if s.InitialState != StateBrowser {
		t.Errorf("InitialState = %q, want browser", s.InitialState)
	}
	if !s.OverlayEnabled() {
		t.Error("overlay should be enabled by file debug plus env show_debug_info")
	}
	if s.Backend != BackendANSI {
		t.Errorf("unset flag overrode backend: %q", s.Backend)
	}
	if s.Theme.Accent != "#ff0000" {
		t.Errorf("Theme.Accent = %q, want #ff0000", s.Theme.Accent)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"zero fps", "[editor]\ntarget_fps = 0\n", "target_fps"},
		{"bad state", "[editor]\ninitial_state = \"play\"\n", "initial_state"},
		{"bad backend", "[editor]\nbackend = \"curses\"\n", "backend"},
		{"bad color", "[theme]\naccent = \"nope\"\n", "theme"},
		{"bad toml", "[editor\n", "read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, SettingsFile), tt.content)
			_, err := Load(dir, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestWithSize(t *testing.T) {
	s := Defaults()
	s.Width = 100
	got := s.WithSize(80, 24)
	if got.Width != 100 || got.Height != 24 {
		t.Errorf("WithSize = %dx%d, want 100x24", got.Width, got.Height)
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFile)
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	s, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load after WriteDefault: %v", err)
	}
	d := Defaults()
	if s.TargetFPS != d.TargetFPS || s.SplashDuration != d.SplashDuration || s.Backend != d.Backend {
		t.Errorf("loaded %+v, want defaults %+v", s, d)
	}

	err = WriteDefault(path)
	if errors.Cause(err) != ErrExists {
		t.Errorf("second WriteDefault = %v, want ErrExists", err)
	}
}
