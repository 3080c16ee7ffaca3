package config

import (
	"fmt"
	"image/color"

	"github.com/rocketscienceinc/tictactoe-board/internal/surface"
)

// RenderTheme converts the configured color names and sizes into a render theme.
// Unset values keep the surface defaults.
func (that Theme) RenderTheme() (surface.Theme, error) {
	theme := surface.DefaultTheme()

	var err error
	if theme.BoardColor, err = parseColorOr(that.BoardColor, theme.BoardColor); err != nil {
		return surface.Theme{}, fmt.Errorf("board color: %w", err)
	}
	if theme.XColor, err = parseColorOr(that.XColor, theme.XColor); err != nil {
		return surface.Theme{}, fmt.Errorf("x color: %w", err)
	}
	if theme.OColor, err = parseColorOr(that.OColor, theme.OColor); err != nil {
		return surface.Theme{}, fmt.Errorf("o color: %w", err)
	}
	if theme.WinningLineColor, err = parseColorOr(that.WinningLineColor, theme.WinningLineColor); err != nil {
		return surface.Theme{}, fmt.Errorf("winning line color: %w", err)
	}

	if that.GridWidth > 0 {
		theme.GridWidth = that.GridWidth
	}
	if that.MarkWidth > 0 {
		theme.MarkWidth = that.MarkWidth
	}
	// an inset of half a cell or more leaves nothing to draw
	if that.MarkInset > 0 && that.MarkInset < 0.5 {
		theme.MarkInset = that.MarkInset
	}

	return theme, nil
}

func parseColorOr(value string, fallback color.Color) (color.Color, error) {
	if value == "" {
		return fallback, nil
	}

	c, err := surface.ParseColor(value)
	if err != nil {
		return nil, err
	}

	return c, nil
}
