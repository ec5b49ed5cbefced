package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/lixenwraith/sendama/audio"
	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/event"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/service"
	"github.com/lixenwraith/sendama/status"
)

func TestNewServicesRegistersCuesAndWatcher(t *testing.T) {
	s := config.Defaults()
	s.AssetsDir = t.TempDir()

	hub, err := newServices(event.NewBus(), s)
	if err != nil {
		t.Fatalf("newServices: %v", err)
	}

	w := service.MustGet[*panel.Watcher](hub, panel.WatcherName)
	if w.Changes() == nil {
		t.Error("Expected watcher change channel")
	}
	if w.IsRunning() {
		t.Error("Watcher must not run before StartAll")
	}

	svc, ok := hub.Get(audio.ServiceName)
	if !ok {
		t.Fatal("Expected audio service in hub")
	}
	if _, ok := svc.(*audio.CueService); !ok {
		t.Errorf("Expected *audio.CueService, got %T", svc)
	}
}

func TestLogSessionReportsMetricsAndCues(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	s := config.Defaults()
	s.AssetsDir = t.TempDir()
	hub, err := newServices(event.NewBus(), s)
	if err != nil {
		t.Fatalf("newServices: %v", err)
	}
	registry := status.NewRegistry()
	status.NewEditorMetrics(registry).State.Store("Edit")

	logSession(hub, registry)

	out := buf.String()
	if !strings.Contains(out, status.KeyState+"=Edit") {
		t.Errorf("Expected state metric in log, got %q", out)
	}
	if !strings.Contains(out, "cue enter_play played 0 times") {
		t.Errorf("Expected cue counts in log, got %q", out)
	}
}
