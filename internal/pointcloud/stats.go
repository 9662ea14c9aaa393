package pointcloud

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the spatial extent of a cloud.
type Stats struct {
	Count        int     `json:"count"`
	Centroid     Point   `json:"centroid"`
	Min          Point   `json:"min"`
	Max          Point   `json:"max"`
	MeanRadius   float64 `json:"mean_radius"`
	RadiusStdDev float64 `json:"radius_stddev"`
}

// Axes splits the cloud into per-axis coordinate slices.
func (c Cloud) Axes() (xs, ys, zs []float64) {
	xs = make([]float64, len(c))
	ys = make([]float64, len(c))
	zs = make([]float64, len(c))
	for i, p := range c {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}

// ComputeStats returns the centroid, axis-aligned bounds and the distribution
// of distances from the centroid. An empty cloud yields a zero Stats.
func ComputeStats(c Cloud) Stats {
	if len(c) == 0 {
		return Stats{}
	}

	xs, ys, zs := c.Axes()
	centroid := Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil), Z: stat.Mean(zs, nil)}

	radii := make([]float64, len(c))
	for i, p := range c {
		radii[i] = Distance(p, centroid)
	}

	s := Stats{
		Count:      len(c),
		Centroid:   centroid,
		Min:        Point{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)},
		Max:        Point{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)},
		MeanRadius: stat.Mean(radii, nil),
	}
	if len(radii) > 1 {
		s.RadiusStdDev = stat.PopStdDev(radii, nil)
	}
	return s
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return floats.Distance([]float64{a.X, a.Y, a.Z}, []float64{b.X, b.Y, b.Z}, 2)
}
