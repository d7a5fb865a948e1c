// Package render draws a grid.Grid as a raster image.
//
// Each cell is a cellSize×cellSize square outlined in black. Empty cells are
// white, obstacles black, the start green with a red "S", the end red with a
// black "E", and route cells light green with a "-".
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/grid"
)

const (
	// DefaultCellSize matches the 40 px cells of the desktop editor.
	DefaultCellSize = 40
	MinCellSize     = 4
	MaxCellSize     = 128
	// MaxSide bounds the width and height of a rendered image in pixels.
	MaxSide = 8192
)

var (
	// ErrInvalidCellSize is returned for a cell size outside [MinCellSize, MaxCellSize].
	ErrInvalidCellSize = errors.New("render: cell size out of range")
	// ErrTooLarge is returned when the image would exceed MaxSide pixels on a side.
	ErrTooLarge = errors.New("render: image too large")
)

var (
	colorEmpty    = color.RGBA{255, 255, 255, 255}
	colorObstacle = color.RGBA{0, 0, 0, 255}
	colorStart    = color.RGBA{0, 128, 0, 255}
	colorEnd      = color.RGBA{255, 0, 0, 255}
	colorRoute    = color.RGBA{144, 238, 144, 255}
	colorOutline  = color.RGBA{0, 0, 0, 255}
)

// Fill returns the background color of a cell holding m.
func Fill(m grid.Marker) color.RGBA {
	switch m {
	case grid.Obstacle:
		return colorObstacle
	case grid.Start:
		return colorStart
	case grid.End:
		return colorEnd
	case grid.OnPath:
		return colorRoute
	}
	return colorEmpty
}

// label returns the glyph drawn on a cell and its color; ok is false for
// unlabelled cells.
func label(m grid.Marker) (text string, c color.RGBA, ok bool) {
	switch m {
	case grid.Start:
		return "S", color.RGBA{255, 0, 0, 255}, true
	case grid.End:
		return "E", color.RGBA{0, 0, 0, 255}, true
	case grid.OnPath:
		return "-", color.RGBA{0, 0, 0, 255}, true
	}
	return "", color.RGBA{}, false
}

// Image draws g with square cells of cellSize pixels.
func Image(g *grid.Grid, cellSize int) (image.Image, error) {
	dc, err := draw(g, cellSize)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG writes g to w as a PNG image.
func PNG(w io.Writer, g *grid.Grid, cellSize int) error {
	dc, err := draw(g, cellSize)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func draw(g *grid.Grid, cellSize int) (*gg.Context, error) {
	if cellSize < MinCellSize || cellSize > MaxCellSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidCellSize, cellSize, MinCellSize, MaxCellSize)
	}
	width, height := g.Cols()*cellSize, g.Rows()*cellSize
	if width > MaxSide || height > MaxSide {
		return nil, fmt.Errorf("%w: %d×%d px exceeds %d", ErrTooLarge, width, height, MaxSide)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(colorEmpty)
	dc.Clear()

	size := float64(cellSize)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			m, _ := g.At(grid.Coord{Row: r, Col: c})
			x, y := float64(c)*size, float64(r)*size

			dc.SetColor(Fill(m))
			dc.DrawRectangle(x, y, size, size)
			dc.Fill()

			dc.SetColor(colorOutline)
			dc.SetLineWidth(1)
			dc.DrawRectangle(x+0.5, y+0.5, size-1, size-1)
			dc.Stroke()

			if text, tc, ok := label(m); ok && cellSize >= 12 {
				dc.SetColor(tc)
				dc.DrawStringAnchored(text, x+size/2, y+size/2, 0.5, 0.5)
			}
		}
	}
	return dc, nil
}
