package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// SceneExt is appended to scene paths that have no extension
const SceneExt = ".scene.json"

// Object is one entry of a scene hierarchy
type Object struct {
	Name     string
	Tag      string
	Position [2]int
	Rotation [2]int
	Scale    [2]int
}

// Scene is the editor view of a scene file
type Scene struct {
	Name      string
	Width     int
	Height    int
	Hierarchy []Object
}

// ScenePath resolves a manifest scene entry against the assets directory
func ScenePath(assetsDir, entry string) string {
	if filepath.Ext(entry) == "" {
		entry += SceneExt
	}
	if filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(assetsDir, entry)
}

// LoadScene reads a scene file
// A missing file is a soft warning and yields an empty scene named after the entry
func LoadScene(assetsDir, entry string) (*Scene, error) {
	name := strings.TrimSuffix(filepath.Base(entry), SceneExt)
	scene := &Scene{Name: name}

	path := ScenePath(assetsDir, entry)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("config: scene %s not found", path)
			return scene, nil
		}
		return nil, errors.Wrapf(err, "read scene %s", path)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf("scene %s: invalid JSON", path)
	}

	root := gjson.ParseBytes(data)
	if v := root.Get("name"); v.Exists() {
		scene.Name = v.String()
	}
	scene.Width = int(root.Get("width").Int())
	scene.Height = int(root.Get("height").Int())
	root.Get("hierarchy").ForEach(func(_, v gjson.Result) bool {
		scene.Hierarchy = append(scene.Hierarchy, Object{
			Name:     v.Get("name").String(),
			Tag:      v.Get("tag").String(),
			Position: pair(v.Get("position"), [2]int{1, 1}),
			Rotation: pair(v.Get("rotation"), [2]int{0, 0}),
			Scale:    pair(v.Get("scale"), [2]int{1, 1}),
		})
		return true
	})
	return scene, nil
}

func pair(v gjson.Result, def [2]int) [2]int {
	if !v.IsArray() {
		return def
	}
	arr := v.Array()
	if len(arr) < 2 {
		return def
	}
	return [2]int{int(arr[0].Int()), int(arr[1].Int())}
}
