package surface

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

const (
	defaultGridWidth = 12
	defaultMarkWidth = 12
	defaultMarkInset = 0.2
)

var ErrUnknownColor = errors.New("unknown color")

// Theme holds the styling passed through to the render plan. Game rules never read it.
type Theme struct {
	BoardColor       color.Color
	XColor           color.Color
	OColor           color.Color
	WinningLineColor color.Color

	GridWidth float64
	MarkWidth float64
	// MarkInset is the fraction of a cell left empty around X and O glyphs.
	MarkInset float64
}

func DefaultTheme() Theme {
	return Theme{
		BoardColor:       colornames.Black,
		XColor:           colornames.Crimson,
		OColor:           colornames.Royalblue,
		WinningLineColor: colornames.Forestgreen,
		GridWidth:        defaultGridWidth,
		MarkWidth:        defaultMarkWidth,
		MarkInset:        defaultMarkInset,
	}
}

// ParseColor accepts an SVG color name ("crimson") or a hex value ("#dc143c", "#dc143cff").
func ParseColor(value string) (color.RGBA, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if c, ok := colornames.Map[value]; ok {
		return c, nil
	}

	if !strings.HasPrefix(value, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, value)
	}

	c := color.RGBA{A: 0xff}

	var err error
	switch len(value) {
	case len("#rrggbb"):
		_, err = fmt.Sscanf(value, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case len("#rrggbbaa"):
		_, err = fmt.Sscanf(value, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = ErrUnknownColor
	}

	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, value)
	}

	return c, nil
}
