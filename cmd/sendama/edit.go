package main

import (
	"context"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/sendama/audio"
	"github.com/lixenwraith/sendama/config"
	"github.com/lixenwraith/sendama/editor"
	"github.com/lixenwraith/sendama/event"
	"github.com/lixenwraith/sendama/panel"
	"github.com/lixenwraith/sendama/render"
	"github.com/lixenwraith/sendama/service"
	"github.com/lixenwraith/sendama/status"
	"github.com/lixenwraith/sendama/terminal"
)

var editCmd = &cobra.Command{
	Use:     "edit",
	Aliases: []string{"e", "edit:game"},
	Short:   "Open the editor for a game project",
	RunE:    runEdit,
}

func init() {
	f := editCmd.Flags()
	f.StringP("directory", "d", ".", "project directory")
	f.Bool("debug", false, "enable debug mode and file logging")
	f.Bool("overlay", false, "show the debug overlay, requires --debug")
	f.String("backend", config.BackendANSI, "render backend: ansi or tcell")
	f.String("initial-state", config.StateEdit, "first state: edit or browser")
	f.Int("fps", 60, "target ticks per second")
	f.Duration("splash", config.Defaults().SplashDuration, "splash screen duration, 0 disables it")
	f.Bool("sound", false, "play state transition cues")
	f.String("assets", "assets", "assets directory, relative to the project")
	rootCmd.AddCommand(editCmd)
}

// backend is the terminal controller and surface pair the loop drives
type backend struct {
	term    editor.Terminal
	surface render.Surface
}

func newBackend(s config.Settings) (backend, error) {
	if s.Backend == config.BackendTcell {
		t, err := render.NewTcell(nil, s.Theme)
		if err != nil {
			return backend{}, err
		}
		return backend{term: t, surface: t}, nil
	}
	u := terminal.New()
	if !u.IsTerminal() {
		return backend{}, errors.New("stdin is not a terminal")
	}
	return backend{term: u, surface: render.NewANSISurface(u.Writer(), u.Size)}, nil
}

func runEdit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("directory")

	settings, err := config.Load(dir, cmd.Flags())
	if err != nil {
		return err
	}
	project, err := config.LoadProject(dir)
	if err != nil {
		return err
	}
	// Manifest debug flags only switch debug on, never off
	if project.Debug && !cmd.Flags().Changed("debug") {
		settings.Debug = true
	}
	if project.ShowDebugInfo && !cmd.Flags().Changed("overlay") {
		settings.ShowDebugInfo = true
	}

	logFile := setupLogging(settings.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	keymap, err := config.LoadKeymap(dir)
	if err != nil {
		return err
	}
	settings = settings.WithSize(terminal.New().Size())

	b, err := newBackend(settings)
	if err != nil {
		return err
	}

	bus := event.NewBus()
	registry := status.NewRegistry()

	hub, err := newServices(bus, settings)
	if err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	watcher := service.MustGet[*panel.Watcher](hub, panel.WatcherName)
	panels := panel.NewGroup(bus, settings.Width, settings.Height, settings.AssetsDir, watcher.Changes())
	defer panels.Close()
	if active := project.Active(); active != "" {
		scene, err := config.LoadScene(settings.AssetsDir, active)
		if err != nil {
			log.Printf("sendama: %v", err)
		} else {
			panels.LoadScene(scene)
		}
	}

	loop, err := editor.New(editor.Options{
		Settings: settings,
		Project:  project,
		Keymap:   keymap,
		Terminal: b.term,
		Surface:  b.surface,
		Bus:      bus,
		Panels:   panels,
		Registry: registry,
	})
	if err != nil {
		return err
	}

	if err := loop.Run(context.Background()); err != nil {
		return &exitError{code: editor.ExitCode(err), msg: editor.Diagnostic(err, settings.Debug)}
	}
	if settings.Debug {
		logSession(hub, registry)
	}
	return nil
}

// newServices registers and initializes the cue player and the assets watcher, nothing is started
func newServices(bus *event.Bus, settings config.Settings) (*service.Hub, error) {
	hub := service.NewHub()
	for _, svc := range []service.Service{
		audio.NewService(bus, editor.StatePlay),
		panel.NewWatcher(settings.AssetsDir),
	} {
		if err := hub.Register(svc); err != nil {
			return nil, err
		}
	}
	if err := hub.InitAll(settings.Sound); err != nil {
		return nil, err
	}
	return hub, nil
}

// logSession writes the final metrics and cue counts to the debug log
func logSession(hub *service.Hub, registry *status.Registry) {
	for _, m := range registry.Snapshot() {
		log.Printf("sendama: %s=%s", m.Key, m.Value)
	}
	svc, ok := hub.Get(audio.ServiceName)
	if !ok {
		return
	}
	if cues, ok := svc.(*audio.CueService); ok {
		for c := audio.Cue(0); c < audio.CueCount; c++ {
			log.Printf("sendama: cue %s played %d times", c, cues.Played(c))
		}
	}
}
