package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestLoadProjectMissingUsesDefaults(t *testing.T) {
	p, err := LoadProject(t.TempDir())
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if p.Found {
		t.Error("Found = true for missing manifest")
	}
	if p.Name != DefaultProjectName || p.Version != DefaultProjectVersion || p.Main != DefaultProjectMain {
		t.Errorf("defaults = %q %q %q", p.Name, p.Version, p.Main)
	}
	if p.Active() != "" {
		t.Errorf("Active() = %q, want empty", p.Active())
	}
	if err := p.SetActiveScene(0); err == nil {
		t.Error("SetActiveScene on empty scene list should fail")
	}
}

func TestLoadProjectFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestFile), `{
  "name": "Blasters",
  "description": "shooter",
  "isDebugMode": true,
  "scenes": {"active": 1, "loaded": ["scenes/level01", "scenes/level02"]}
}`)
	p, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if !p.Found || p.Name != "Blasters" || p.Description != "shooter" || !p.Debug {
		t.Errorf("project = %+v", p)
	}
	if p.Version != DefaultProjectVersion {
		t.Errorf("Version = %q, want default", p.Version)
	}
	if p.Active() != "scenes/level02" {
		t.Errorf("Active() = %q, want scenes/level02", p.Active())
	}
}

func TestLoadProjectInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestFile), `{"name": `)
	if _, err := LoadProject(dir); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestSetActiveScenePersists(t *testing.T) {
	dir := t.TempDir()
	manifest := `{"name":"Keep","custom":{"x":1},"scenes":{"active":0,"loaded":["a","b"]}}`
	writeFile(t, filepath.Join(dir, ManifestFile), manifest)

	p, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if err := p.SetActiveScene(1); err != nil {
		t.Fatalf("SetActiveScene: %v", err)
	}

	data, err := os.ReadFile(p.Path())
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if got := gjson.GetBytes(data, "scenes.active").Int(); got != 1 {
		t.Errorf("scenes.active = %d, want 1", got)
	}
	if !strings.Contains(string(data), `"custom":{"x":1}`) {
		t.Errorf("unrelated content lost: %s", data)
	}
	if err := p.SetActiveScene(5); err == nil {
		t.Error("out of range index accepted")
	}
}

func TestLoadScene(t *testing.T) {
	assets := t.TempDir()
	writeFile(t, filepath.Join(assets, "scenes", "level01.scene.json"), `{
  "name": "Level 1",
  "width": 120,
  "height": 30,
  "hierarchy": [
    {"name": "Player", "tag": "player", "position": [4, 5]},
    {"name": "Enemy", "scale": [2, 3]}
  ]
}`)

	scene, err := LoadScene(assets, "scenes/level01")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Name != "Level 1" || scene.Width != 120 || scene.Height != 30 {
		t.Errorf("scene = %+v", scene)
	}
	if len(scene.Hierarchy) != 2 {
		t.Fatalf("hierarchy len = %d, want 2", len(scene.Hierarchy))
	}
	player := scene.Hierarchy[0]
	if player.Tag != "player" || player.Position != [2]int{4, 5} || player.Scale != [2]int{1, 1} {
		t.Errorf("player = %+v", player)
	}
	if enemy := scene.Hierarchy[1]; enemy.Position != [2]int{1, 1} || enemy.Scale != [2]int{2, 3} {
		t.Errorf("enemy = %+v", enemy)
	}
}

func TestLoadSceneMissing(t *testing.T) {
	scene, err := LoadScene(t.TempDir(), "scenes/nowhere")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Name != "nowhere" || len(scene.Hierarchy) != 0 {
		t.Errorf("scene = %+v", scene)
	}
}
