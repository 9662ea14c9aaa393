package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

// pi is a variable so derived factors such as pi/180 are rounded as float64
// run-time arithmetic rather than folded at constant precision.
var pi = math.Pi

func radians(deg float64) float64 {
	return deg * (pi / 180)
}

// goldenAngle returns sample i of n on a Fibonacci sphere of the given radius
// centred at the origin. theta = acos(2i/n - 1), phi = pi(1+sqrt5)i.
func goldenAngle(i, n int, radius float64) pointcloud.Point {
	theta := math.Acos(2*(float64(i)/float64(n)) - 1)
	phi := pi * (1 + math.Sqrt(5)) * float64(i)
	return pointcloud.Point{
		X: radius * math.Sin(theta) * math.Cos(phi),
		Y: radius * math.Sin(theta) * math.Sin(phi),
		Z: radius * math.Cos(theta),
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
