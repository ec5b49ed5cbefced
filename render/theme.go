package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Theme holds hex colors for the tcell surface
type Theme struct {
	Foreground string `mapstructure:"foreground" toml:"foreground"`
	Background string `mapstructure:"background" toml:"background"`
	Accent     string `mapstructure:"accent" toml:"accent"`
}

// DefaultTheme returns the built-in dark palette
func DefaultTheme() Theme {
	return Theme{
		Foreground: "#d0d0d0",
		Background: "#1c1c1c",
		Accent:     "#5fafff",
	}
}

// palette is a theme resolved to tcell styles
type palette map[Style]tcell.Style

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// styles resolves the theme, dim is the foreground blended halfway to the background
func (t Theme) styles() (palette, error) {
	fg, err := colorful.Hex(t.Foreground)
	if err != nil {
		return nil, errors.Wrapf(err, "theme foreground %q", t.Foreground)
	}
	bg, err := colorful.Hex(t.Background)
	if err != nil {
		return nil, errors.Wrapf(err, "theme background %q", t.Background)
	}
	accent, err := colorful.Hex(t.Accent)
	if err != nil {
		return nil, errors.Wrapf(err, "theme accent %q", t.Accent)
	}
	dim := fg.BlendLab(bg, 0.5).Clamped()

	base := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	return palette{
		StyleNormal:   base,
		StyleAccent:   base.Foreground(toTcell(accent)).Bold(true),
		StyleDim:      base.Foreground(toTcell(dim)),
		StyleSelected: base.Foreground(toTcell(bg)).Background(toTcell(accent)),
	}, nil
}

// Validate reports the first color that fails to parse
func (t Theme) Validate() error {
	_, err := t.styles()
	return err
}
