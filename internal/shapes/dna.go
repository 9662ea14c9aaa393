package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

const (
	dnaSteps      = 1000
	dnaRadius     = 0.2
	dnaRungEvery  = 20
	dnaRungPoints = 5
)

// dna emits two strands half a turn apart. Every dnaRungEvery steps a rung of
// dnaRungPoints points joins the pair.
func dna() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, 2*dnaSteps+dnaSteps/dnaRungEvery*dnaRungPoints)
	for i := 0; i < dnaSteps; i++ {
		a, b := dnaBasePair(i)
		pts = append(pts, a, b)
		if i%dnaRungEvery == 0 {
			pts = append(pts, dnaRung(a, b)...)
		}
	}
	return pts
}

// dnaBasePair returns the two strand points at step i.
func dnaBasePair(i int) (pointcloud.Point, pointcloud.Point) {
	f := float64(i) / dnaSteps
	t := f * 6 * pi
	y := f*1.2 - 0.6
	a := pointcloud.Point{X: dnaRadius * math.Cos(t), Y: y, Z: dnaRadius * math.Sin(t)}
	b := pointcloud.Point{X: dnaRadius * math.Cos(t+pi), Y: y, Z: dnaRadius * math.Sin(t+pi)}
	return a, b
}

// dnaRung interpolates from a toward b at fractions 0, 0.2, ..., 0.8.
func dnaRung(a, b pointcloud.Point) pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, dnaRungPoints)
	for j := 0; j < dnaRungPoints; j++ {
		interp := float64(j) / dnaRungPoints
		pts = append(pts, pointcloud.Point{
			X: a.X*(1-interp) + b.X*interp,
			Y: a.Y,
			Z: a.Z*(1-interp) + b.Z*interp,
		})
	}
	return pts
}
