// @focus: #config { settings }
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/sendama/render"
)

// SettingsFile is the editor configuration file name inside a project directory
const SettingsFile = "editor.toml"

// EnvPrefix prefixes environment overrides, e.g. SENDAMA_EDITOR_DEBUG
const EnvPrefix = "SENDAMA"

// Initial states accepted by InitialState
const (
	StateBrowser = "browser"
	StateEdit    = "edit"
)

// Backends accepted by Backend
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Settings is the read-only editor configuration, built once before the loop starts
type Settings struct {
	Width          int           `mapstructure:"width"`
	Height         int           `mapstructure:"height"`
	Debug          bool          `mapstructure:"debug"`
	ShowDebugInfo  bool          `mapstructure:"show_debug_info"`
	TargetFPS      int           `mapstructure:"target_fps"`
	SplashDuration time.Duration `mapstructure:"splash_duration"`
	InitialState   string        `mapstructure:"initial_state"`
	Backend        string        `mapstructure:"backend"`
	Sound          bool          `mapstructure:"sound"`
	AssetsDir      string        `mapstructure:"assets_dir"`

	Theme render.Theme `mapstructure:"-"`
}

// fileConfig is the on-disk layout of editor.toml
type fileConfig struct {
	Editor Settings     `mapstructure:"editor"`
	Theme  render.Theme `mapstructure:"theme"`
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return Settings{
		TargetFPS:      60,
		SplashDuration: 3 * time.Second,
		InitialState:   StateEdit,
		Backend:        BackendANSI,
		AssetsDir:      "assets",
		Theme:          render.DefaultTheme(),
	}
}

// flagKeys binds command line flag names to config keys
var flagKeys = map[string]string{
	"debug":         "editor.debug",
	"overlay":       "editor.show_debug_info",
	"fps":           "editor.target_fps",
	"splash":        "editor.splash_duration",
	"initial-state": "editor.initial_state",
	"backend":       "editor.backend",
	"sound":         "editor.sound",
	"assets":        "editor.assets_dir",
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("editor.width", d.Width)
	v.SetDefault("editor.height", d.Height)
	v.SetDefault("editor.debug", d.Debug)
	v.SetDefault("editor.show_debug_info", d.ShowDebugInfo)
	v.SetDefault("editor.target_fps", d.TargetFPS)
	v.SetDefault("editor.splash_duration", d.SplashDuration)
	v.SetDefault("editor.initial_state", d.InitialState)
	v.SetDefault("editor.backend", d.Backend)
	v.SetDefault("editor.sound", d.Sound)
	v.SetDefault("editor.assets_dir", d.AssetsDir)
	v.SetDefault("theme.foreground", d.Theme.Foreground)
	v.SetDefault("theme.background", d.Theme.Background)
	v.SetDefault("theme.accent", d.Theme.Accent)
}

// Load layers defaults, dir/editor.toml, SENDAMA_* environment and flags, in that order
// A missing editor.toml is not an error, flags may be nil
func Load(dir string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(SettingsFile, filepath.Ext(SettingsFile)))
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, errors.Wrapf(err, "read %s", filepath.Join(dir, SettingsFile))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Settings{}, errors.Wrap(err, "decode settings")
	}
	s := fc.Editor
	s.Theme = fc.Theme
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	if !filepath.IsAbs(s.AssetsDir) {
		s.AssetsDir = filepath.Join(dir, s.AssetsDir)
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.TargetFPS <= 0 {
		return errors.Errorf("target_fps must be positive, got %d", s.TargetFPS)
	}
	if s.SplashDuration < 0 {
		return errors.Errorf("splash_duration must not be negative, got %s", s.SplashDuration)
	}
	if s.Width < 0 || s.Height < 0 {
		return errors.Errorf("width and height must not be negative, got %dx%d", s.Width, s.Height)
	}
	switch s.InitialState {
	case StateBrowser, StateEdit:
	default:
		return errors.Errorf("initial_state must be %q or %q, got %q", StateBrowser, StateEdit, s.InitialState)
	}
	switch s.Backend {
	case BackendANSI, BackendTcell:
	default:
		return errors.Errorf("backend must be %q or %q, got %q", BackendANSI, BackendTcell, s.Backend)
	}
	return errors.Wrap(s.Theme.Validate(), "theme")
}

// WithSize returns a copy sized to the terminal when width or height is unset
func (s Settings) WithSize(width, height int) Settings {
	if s.Width == 0 {
		s.Width = width
	}
	if s.Height == 0 {
		s.Height = height
	}
	return s
}

// OverlayEnabled reports whether the debug overlay is drawn
func (s Settings) OverlayEnabled() bool {
	return s.Debug && s.ShowDebugInfo
}

// defaultFile is the editor.toml written by WriteDefault
type defaultFile struct {
	Editor struct {
		Width          int    `toml:"width" comment:"0 uses the terminal width"`
		Height         int    `toml:"height" comment:"0 uses the terminal height"`
		Debug          bool   `toml:"debug"`
		ShowDebugInfo  bool   `toml:"show_debug_info"`
		TargetFPS      int    `toml:"target_fps"`
		SplashDuration string `toml:"splash_duration"`
		InitialState   string `toml:"initial_state" comment:"browser or edit"`
		Backend        string `toml:"backend" comment:"ansi or tcell"`
		Sound          bool   `toml:"sound"`
		AssetsDir      string `toml:"assets_dir"`
	} `toml:"editor"`
	Theme render.Theme `toml:"theme"`
}

// ErrExists is returned by WriteDefault when the target file is already present
var ErrExists = errors.New("file already exists")

// WriteDefault writes the default settings to path, refusing to overwrite
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Wrap(ErrExists, path)
	}

	d := Defaults()
	var f defaultFile
	f.Editor.Width = d.Width
	f.Editor.Height = d.Height
	f.Editor.Debug = d.Debug
	f.Editor.ShowDebugInfo = d.ShowDebugInfo
	f.Editor.TargetFPS = d.TargetFPS
	f.Editor.SplashDuration = d.SplashDuration.String()
	f.Editor.InitialState = d.InitialState
	f.Editor.Backend = d.Backend
	f.Editor.Sound = d.Sound
	f.Editor.AssetsDir = "assets"
	f.Theme = d.Theme

	data, err := toml.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "encode default settings")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write default settings")
}
