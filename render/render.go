package render

import (
	"github.com/fogleman/gg"
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// Grid rasterizes g to a new gg.Context sized g.Bounds.Cols*CellSize by
// g.Bounds.Rows*CellSize: every tile is filled per color(g.At(p)), then
// every marker is drawn as a filled disc on top, in order.
func Grid[C grid.Coord](g *matrix.Grid[C], color ColorFunc[C], markers []Marker[C], opts ...Option) (*gg.Context, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.CellSize <= 0 {
		return nil, ErrInvalidCellSize
	}

	cs := float64(o.CellSize)
	w := g.Bounds.Cols * o.CellSize
	h := g.Bounds.Rows * o.CellSize
	dc := gg.NewContext(w, h)

	dc.SetRGB(o.Background.R, o.Background.G, o.Background.B)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	for y := 0; y < g.Bounds.Rows; y++ {
		for x := 0; x < g.Bounds.Cols; x++ {
			p := grid.Point[C]{X: C(x), Y: C(y)}
			c := color(g.At(p))
			dc.SetRGB(c.R, c.G, c.B)
			dc.DrawRectangle(float64(x)*cs, float64(y)*cs, cs, cs)
			dc.Fill()
			if o.GridLines {
				dc.SetRGB(o.GridColor.R, o.GridColor.G, o.GridColor.B)
				dc.DrawRectangle(float64(x)*cs, float64(y)*cs, cs, cs)
				dc.Stroke()
			}
		}
	}

	for _, m := range markers {
		cx := (float64(m.Pos.X) + 0.5) * cs
		cy := (float64(m.Pos.Y) + 0.5) * cs
		dc.SetRGB(m.Color.R, m.Color.G, m.Color.B)
		dc.DrawCircle(cx, cy, m.Radius*cs)
		dc.Fill()
	}

	return dc, nil
}

// SavePNG renders g exactly as Grid does and writes the result to path.
func SavePNG[C grid.Coord](path string, g *matrix.Grid[C], color ColorFunc[C], markers []Marker[C], opts ...Option) error {
	dc, err := Grid(g, color, markers, opts...)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
