package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/event"
)

const (
	seqF5    = "\x1b[15~"
	seqF2    = "\x1b[12~"
	seqDown  = "\x1b[B"
	seqEsc   = "\x1b"
	seqEnter = "\n"
)

// tickAll starts the loop and ticks once per queued chunk
func tickAll(t *testing.T, h *harness) {
	t.Helper()
	if err := h.loop.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for range len(h.term.chunks) {
		if !h.loop.Tick() {
			return
		}
	}
}

func stateNames(rec *event.Recorder) []string {
	var out []string
	for _, ev := range rec.Events() {
		if ev.Type == event.EditorStateChanged {
			out = append(out, ev.GetString(event.KeyTo))
		}
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEditPlayPauseAndBack(t *testing.T) {
	h := newHarness(t, testSettings(), nil, seqF5, "", " ", "", seqEsc)
	if err := h.loop.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	h.rec.Reset()
	m := h.loop.Machine()
	clock := h.loop.Clock()

	h.loop.Tick()
	play, ok := m.Current().(*PlayState)
	if !ok {
		t.Fatalf("F5 gave %s, want %s", m.CurrentName(), StatePlay)
	}
	if !h.buf.Contains("▶ PLAYING") {
		t.Errorf("play banner missing: %q", h.buf.Lines())
	}
	if h.loop.panels.Focused() != nil {
		t.Error("panels keep focus in play")
	}

	h.loop.Tick()
	h.loop.Tick()
	if !play.Paused() || clock.TimeScale() != 0 {
		t.Fatalf("space did not pause: paused=%v scale=%v", play.Paused(), clock.TimeScale())
	}
	if !h.buf.Contains("❚❚ PAUSED") {
		t.Errorf("pause banner missing: %q", h.buf.Lines())
	}

	h.loop.Tick()
	h.loop.Tick()
	if m.CurrentName() != StateEdit {
		t.Fatalf("esc gave %s, want %s", m.CurrentName(), StateEdit)
	}
	if clock.TimeScale() != 1 {
		t.Errorf("time scale = %v after leaving play", clock.TimeScale())
	}
	if h.loop.panels.Focused() == nil {
		t.Error("panels not resumed after play")
	}
	if got := stateNames(h.rec); !equalNames(got, []string{StatePlay, StateEdit}) {
		t.Errorf("transitions = %v", got)
	}
}

func TestEditEscapeModalCancel(t *testing.T) {
	h := newHarness(t, testSettings(), nil, seqEsc, "n")
	tickAll(t, h)

	m := h.loop.Machine()
	if m.CurrentName() != StateEdit {
		t.Fatalf("state = %s after cancel", m.CurrentName())
	}
	if !h.loop.Running() {
		t.Error("cancel stopped the editor")
	}
	got := stateNames(h.rec)
	want := []string{StateEdit, StateModal, StateEdit}
	if !equalNames(got, want) {
		t.Errorf("transitions = %v, want %v", got, want)
	}
}

func TestEditEscapeModalConfirmStops(t *testing.T) {
	h := newHarness(t, testSettings(), nil, seqEsc, "y")
	tickAll(t, h)

	if h.loop.Running() {
		t.Fatal("confirm did not stop the editor")
	}
	if h.loop.Machine().CurrentName() != StateModal {
		t.Errorf("state = %s, want modal to stay current when stopping", h.loop.Machine().CurrentName())
	}
}

func TestModalRendersPrompt(t *testing.T) {
	h := newHarness(t, testSettings(), nil, seqEsc)
	tickAll(t, h)

	if !h.buf.Contains("Quit the editor?") || !h.buf.Contains(modalHint) {
		t.Errorf("modal not drawn: %q", h.buf.Lines())
	}
}

func TestEditFocusCycles(t *testing.T) {
	h := newHarness(t, testSettings(), nil, "\t")
	tickAll(t, h)

	if h.loop.panels.Hierarchy.IsFocused() || h.loop.panels.Focused() == nil {
		t.Error("tab left focus on the hierarchy")
	}
}

func writeProject(t *testing.T) (dir, assets string) {
	t.Helper()
	dir = t.TempDir()
	assets = filepath.Join(dir, "Assets")
	if err := os.MkdirAll(filepath.Join(assets, "scenes"), 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := `{"name":"Blasters","scenes":{"active":0,"loaded":["scenes/level01","scenes/level02"]}}`
	if err := os.WriteFile(filepath.Join(dir, config.ManifestFile), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	scene := `{"name":"Level 2","hierarchy":[{"name":"Player","tag":"player","position":[4,5]},{"name":"Enemy"}]}`
	if err := os.WriteFile(filepath.Join(assets, "scenes", "level02.scene.json"), []byte(scene), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, assets
}

func TestBrowserOpensSelectedScene(t *testing.T) {
	dir, assets := writeProject(t)
	project, err := config.LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}

	s := testSettings()
	s.InitialState = config.StateBrowser
	s.AssetsDir = assets
	h := newHarness(t, s, nil, seqDown, seqEnter)
	h.loop.project = project

	if err := h.loop.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	browser, ok := h.loop.Machine().Current().(*BrowserState)
	if !ok {
		t.Fatalf("initial state = %s", h.loop.Machine().CurrentName())
	}
	if browser.Selected() != 0 {
		t.Errorf("cursor = %d, want active scene 0", browser.Selected())
	}

	h.loop.Tick()
	if browser.Selected() != 1 {
		t.Fatalf("down moved cursor to %d", browser.Selected())
	}
	h.loop.Tick()

	if h.loop.Machine().CurrentName() != StateEdit {
		t.Fatalf("enter gave %s", h.loop.Machine().CurrentName())
	}
	if project.ActiveScene != 1 {
		t.Errorf("ActiveScene = %d, want 1", project.ActiveScene)
	}
	data, err := os.ReadFile(project.Path())
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "scenes.active").Int(); got != 1 {
		t.Errorf("manifest scenes.active = %d, want 1", got)
	}
	objs := h.loop.panels.Hierarchy.Objects()
	if len(objs) != 2 || objs[0].Name != "Player" {
		t.Errorf("hierarchy = %+v", objs)
	}
	if !h.loop.panels.Hierarchy.IsEnabled() {
		t.Error("panels hidden after leaving the browser")
	}
}

func TestBrowserHidesPanels(t *testing.T) {
	s := testSettings()
	s.InitialState = config.StateBrowser
	h := newHarness(t, s, nil, seqF2)
	tickAll(t, h)

	if h.loop.panels.Hierarchy.IsEnabled() {
		t.Error("panels visible in the browser")
	}
	if !h.buf.Contains("No scenes loaded") {
		t.Errorf("empty project message missing: %q", h.buf.Lines())
	}
}

func TestEditToBrowser(t *testing.T) {
	h := newHarness(t, testSettings(), nil, seqF2)
	tickAll(t, h)

	if h.loop.Machine().CurrentName() != StateProjectBrowser {
		t.Errorf("F2 gave %s", h.loop.Machine().CurrentName())
	}
}
