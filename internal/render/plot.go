package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

// Plane selects the two axes a projection keeps.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

// Planes lists every supported projection.
var Planes = []Plane{PlaneXY, PlaneXZ, PlaneYZ}

// ParsePlane maps "xy", "xz" or "yz" to a Plane. Empty means PlaneXY.
func ParsePlane(s string) (Plane, error) {
	switch Plane(s) {
	case "":
		return PlaneXY, nil
	case PlaneXY, PlaneXZ, PlaneYZ:
		return Plane(s), nil
	}
	return "", fmt.Errorf("unknown plane %q (want xy, xz or yz)", s)
}

func (pl Plane) project(p pointcloud.Point) (float64, float64) {
	switch pl {
	case PlaneXZ:
		return p.X, p.Z
	case PlaneYZ:
		return p.Y, p.Z
	default:
		return p.X, p.Y
	}
}

func (pl Plane) labels() (string, string) {
	return string(pl[0]), string(pl[1])
}

// PlotSize is the edge length of projection images.
const PlotSize = 6 * vg.Inch

// Projection draws c flattened onto the plane as a square scatter plot and
// writes it in the given image format ("png", "svg", ...).
func Projection(w io.Writer, c pointcloud.Cloud, plane Plane, title, format string) error {
	p := plot.New()
	p.Title.Text = title
	xl, yl := plane.labels()
	p.X.Label.Text = xl
	p.Y.Label.Text = yl
	p.X.Min, p.X.Max = -axisLimit, axisLimit
	p.Y.Min, p.Y.Max = -axisLimit, axisLimit
	p.Add(plotter.NewGrid())

	if len(c) > 0 {
		pts := make(plotter.XYs, len(c))
		for i, pt := range c {
			pts[i].X, pts[i].Y = plane.project(pt)
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("scatter: %w", err)
		}
		s.GlyphStyle.Radius = vg.Points(1)
		p.Add(s)
	}

	wt, err := p.WriterTo(PlotSize, PlotSize, format)
	if err != nil {
		return fmt.Errorf("plot writer: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
