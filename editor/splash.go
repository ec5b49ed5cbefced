package editor

import (
	"log"

	"github.com/lixenwraith/sendama/render"
)

var splashArt = []string{
	"+++++ +++++ +   + ++++   +++  +   +  +++ ",
	"+     +     ++  + +   + +   + ++ ++ +   +",
	"+++++ ++++  + + + +   + +++++ + + + +++++",
	"    + +     +  ++ +   + +   + +   + +   +",
	"+++++ +++++ +   + ++++  +   + +   + +   +",
	"",
	"terminal game editor",
}

// showSplash draws the logo centered and blocks for the configured duration
// Surface failures skip the drawing, the wait still happens
func (l *Loop) showSplash() {
	d := l.settings.SplashDuration
	if d <= 0 {
		return
	}
	l.drawSplash()
	l.sleep(d)
	if err := l.surface.Clear(); err != nil {
		log.Printf("editor: splash clear: %v", err)
	}
}

func (l *Loop) drawSplash() {
	s := l.surface
	if err := s.Clear(); err != nil {
		log.Printf("editor: splash: %v", err)
		return
	}
	w, h, err := s.Dimensions()
	if err != nil {
		log.Printf("editor: splash: %v", err)
		return
	}

	blockW := render.BlockWidth(splashArt)
	x := max((w-blockW)/2, 0)
	y := max((h-len(splashArt))/2, 0)
	for i, line := range splashArt {
		if line == "" {
			continue
		}
		style := render.StyleAccent
		lx := x
		if i == len(splashArt)-1 {
			style = render.StyleDim
			lx = render.CenterX(line, w)
		}
		if err := s.WriteStyled(lx, y+i, line, style); err != nil {
			log.Printf("editor: splash line %d: %v", i, err)
		}
	}
	if err := s.Flush(); err != nil {
		log.Printf("editor: splash flush: %v", err)
	}
}
