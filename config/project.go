package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ManifestFile is the project manifest name inside a project directory
const ManifestFile = "sendama.json"

// Project defaults, used field by field when the manifest omits them
const (
	DefaultProjectName    = "Untitled Game"
	DefaultProjectVersion = "1.0.0"
	DefaultProjectMain    = "main.php"
)

// Project is the game metadata read from sendama.json
type Project struct {
	Dir           string
	Name          string
	Description   string
	Version       string
	Main          string
	Debug         bool
	ShowDebugInfo bool
	ActiveScene   int
	Scenes        []string

	// Found is false when the manifest was absent and defaults were used
	Found bool
}

// LoadProject reads dir/sendama.json
// A missing manifest is a soft warning: the project falls back to defaults
func LoadProject(dir string) (*Project, error) {
	p := &Project{
		Dir:     dir,
		Name:    DefaultProjectName,
		Version: DefaultProjectVersion,
		Main:    DefaultProjectMain,
	}

	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("config: %s not found, using project defaults", path)
			return p, nil
		}
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf("%s: invalid JSON", path)
	}
	p.Found = true

	root := gjson.ParseBytes(data)
	if v := root.Get("name"); v.Exists() {
		p.Name = v.String()
	}
	p.Description = root.Get("description").String()
	if v := root.Get("version"); v.Exists() {
		p.Version = v.String()
	}
	if v := root.Get("main"); v.Exists() {
		p.Main = v.String()
	}
	p.Debug = root.Get("isDebugMode").Bool()
	p.ShowDebugInfo = root.Get("showDebugInfo").Bool()
	p.ActiveScene = int(root.Get("scenes.active").Int())
	root.Get("scenes.loaded").ForEach(func(_, v gjson.Result) bool {
		p.Scenes = append(p.Scenes, v.String())
		return true
	})
	if p.ActiveScene < 0 || p.ActiveScene >= len(p.Scenes) {
		p.ActiveScene = 0
	}
	return p, nil
}

// Path returns the manifest path
func (p *Project) Path() string {
	return filepath.Join(p.Dir, ManifestFile)
}

// Active returns the active scene path, empty when no scene is loaded
func (p *Project) Active() string {
	if p.ActiveScene < 0 || p.ActiveScene >= len(p.Scenes) {
		return ""
	}
	return p.Scenes[p.ActiveScene]
}

// SetActiveScene selects a loaded scene and persists scenes.active in the manifest
// Other manifest content is preserved byte for byte
func (p *Project) SetActiveScene(index int) error {
	if index < 0 || index >= len(p.Scenes) {
		return errors.Errorf("scene index %d out of range [0,%d)", index, len(p.Scenes))
	}
	p.ActiveScene = index
	if !p.Found {
		return nil
	}

	path := p.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	updated, err := sjson.SetBytes(data, "scenes.active", index)
	if err != nil {
		return errors.Wrap(err, "update scenes.active")
	}
	return errors.Wrapf(os.WriteFile(path, updated, 0644), "write %s", path)
}
