package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

const (
	heartSteps   = 2000
	heartSamples = 5
)

// heart sweeps the classic heart curve and gives it depth with heartSamples
// offsets per step. The full sweep is 10000 points, so the default budget
// keeps only the first fifth of the curve.
func heart() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, heartSteps*heartSamples)
	for i := 0; i < heartSteps; i++ {
		t := float64(i) / heartSteps * 2 * pi
		x, y := heartCurve(t)
		for u := 0; u < heartSamples; u++ {
			pts = append(pts, pointcloud.Point{X: x, Y: y - 0.1, Z: heartDepth(u)})
		}
	}
	return pts
}

func heartCurve(t float64) (x, y float64) {
	x = 0.3 * (16 * math.Pow(math.Sin(t), 3)) / 16
	y = 0.3 * (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)) / 16
	return x, y
}

func heartDepth(u int) float64 {
	return 0.1 * math.Sin(float64(u)/heartSamples*2*pi)
}
