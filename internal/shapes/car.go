package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

func car() pointcloud.Cloud {
	return pointcloud.Concat(carBody(), carRoof(), carWheels())
}

// carBody keeps the shell of a 21x11x9 voxel box.
func carBody() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for x := -20; x <= 20; x += 2 {
		for y := -10; y <= 10; y += 2 {
			for z := -8; z <= 8; z += 2 {
				if absInt(x) == 20 || absInt(y) == 10 || absInt(z) == 8 {
					pts = append(pts, carVoxel(x, y, z))
				}
			}
		}
	}
	return pts
}

// carRoof keeps the two side walls and the top of the cabin.
func carRoof() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for x := -12; x <= 12; x += 2 {
		for y := 5; y <= 15; y += 2 {
			for z := -8; z <= 8; z += 2 {
				if absInt(z) == 8 || y == 15 {
					pts = append(pts, carVoxel(x, y, z))
				}
			}
		}
	}
	return pts
}

func carVoxel(x, y, z int) pointcloud.Point {
	return pointcloud.Point{
		X: float64(x) / 40,
		Y: float64(y)/40 - 0.1,
		Z: float64(z) / 40,
	}
}

var (
	carWheelCenters = []float64{-0.35, 0.35}
	carWheelRadii   = []float64{0.08, 0.1}
)

func carWheels() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for _, wx := range carWheelCenters {
		for angle := 0; angle < 360; angle += 10 {
			rad := radians(float64(angle))
			for _, r := range carWheelRadii {
				pts = append(pts, pointcloud.Point{
					X: wx,
					Y: math.Cos(rad)*r - 0.35,
					Z: math.Sin(rad) * r,
				})
			}
		}
	}
	return pts
}
