package panel

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/sendama/input"
	"github.com/lixenwraith/sendama/render"
)

// Assets lists the files under the project assets directory
type Assets struct {
	*Window

	dir     string
	list    List
	changes <-chan struct{}
	scans   int
}

// NewAssets creates the assets pane and performs the first scan
// changes may be nil, otherwise each receive triggers a rescan on the next Update
func NewAssets(dir string, changes <-chan struct{}, x, y, w, h int) *Assets {
	a := &Assets{Window: NewWindow("Assets", x, y, w, h), dir: dir, changes: changes}
	a.Rescan()
	return a
}

// Rescan walks the directory, a missing directory is a soft warning
func (a *Assets) Rescan() {
	a.scans++
	files, err := listFiles(a.dir)
	if err != nil {
		log.Printf("panel: assets %s: %v", a.dir, err)
	}
	a.list.SetItems(files)
}

// Files returns the relative paths from the last scan
func (a *Assets) Files() []string {
	return append([]string(nil), a.list.Items...)
}

// Scans returns how many scans ran
func (a *Assets) Scans() int {
	return a.scans
}

func listFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(files)
	return files, err
}

// Update drains pending change notifications without blocking and moves the cursor while focused
func (a *Assets) Update(in Input) {
	if a.changes != nil {
		select {
		case <-a.changes:
			a.Rescan()
		default:
		}
	}
	if a.IsFocused() {
		if v := in.GetAxis(input.AxisVertical); v != 0 {
			a.list.Move(v)
		}
	}
}

func (a *Assets) Render(s render.Surface) error {
	if !a.IsEnabled() {
		return nil
	}
	inner := a.Frame(s)
	if len(a.list.Items) == 0 {
		inner.Text(0, 0, "(no assets)", render.StyleDim)
		return inner.Err()
	}
	a.list.Render(inner, a.IsFocused())
	return inner.Err()
}
