package levels

import (
	"math"

	"github.com/jakecoffman/cp"
)

// TileRect is a rectangle of cells sharing one glyph, in cell units.
type TileRect struct {
	Col    int
	Row    int
	W      int
	H      int
	Prefab string
}

// Placement is an entity glyph resolved to a cell.
type Placement struct {
	Col    int
	Row    int
	Prefab string
}

// ToWorld converts a tile position (columns from the left, rows from the
// top, cell centers at +0.5) to y-up world units centered on the level.
func (l *Level) ToWorld(x, y float64) cp.Vector {
	ts := l.Tile()
	return cp.Vector{
		X: x*ts - float64(l.Width())*ts/2,
		Y: float64(l.Height())*ts/2 - y*ts,
	}
}

// Center of a rect in world units and its world size.
func (l *Level) RectWorld(r TileRect) (cp.Vector, float64, float64) {
	ts := l.Tile()
	center := l.ToWorld(float64(r.Col)+float64(r.W)/2, float64(r.Row)+float64(r.H)/2)
	return center, float64(r.W) * ts, float64(r.H) * ts
}

// Bounds is the square any part of the level can reach at any rotation,
// padded by the margin.
func (l *Level) Bounds() (minX, minY, maxX, maxY float64) {
	ts := l.Tile()
	halfW := float64(l.Width()) * ts / 2
	halfH := float64(l.Height()) * ts / 2
	r := math.Hypot(halfW, halfH) + l.Margin*ts
	return -r, -r, r, r
}

// SolidRects merges the solid cells of each glyph into as few rectangles as
// possible, scanning rows top to bottom and growing each run downward.
func (l *Level) SolidRects() []TileRect {
	width, height := l.Width(), l.Height()
	if width == 0 || height == 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	solid := func(x, y int, ch byte) bool {
		return !visited[index(x, y)] && l.Rows[y][x] == ch
	}

	var out []TileRect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch := l.Rows[y][x]
			g, ok := l.Glyph(ch)
			if !ok || !g.Solid || visited[index(x, y)] {
				continue
			}

			maxW := 0
			for x2 := x; x2 < width && solid(x2, y, ch); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !solid(x2, y2, ch) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}
			out = append(out, TileRect{Col: x, Row: y, W: maxW, H: maxH, Prefab: g.Prefab})
		}
	}
	return out
}

// Placements lists the entity glyphs in reading order.
func (l *Level) Placements() []Placement {
	var out []Placement
	for y, row := range l.Rows {
		for x := 0; x < len(row); x++ {
			g, ok := l.Glyph(row[x])
			if !ok || g.Solid {
				continue
			}
			out = append(out, Placement{Col: x, Row: y, Prefab: g.Prefab})
		}
	}
	return out
}
