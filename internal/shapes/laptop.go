package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

const (
	laptopDeckY  = -0.3
	laptopKeyY   = -0.28
	laptopHingeZ = -0.35
	laptopOpen   = 110 // degrees
)

func laptop() pointcloud.Cloud {
	return pointcloud.Concat(
		laptopBase(),
		laptopKeys(),
		laptopScreen(),
		laptopFrame(),
		laptopTouchpad(),
	)
}

func laptopBase() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for x := -30; x <= 30; x += 2 {
		for z := -20; z <= 20; z += 2 {
			pts = append(pts, pointcloud.Point{X: float64(x) / 60, Y: laptopDeckY, Z: float64(z) / 60})
		}
	}
	return pts
}

// laptopKeys stacks five coincident points on each of 7x13 key positions.
func laptopKeys() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for row := -3; row <= 3; row++ {
		for col := -6; col <= 6; col++ {
			for i := 0; i < 5; i++ {
				pts = append(pts, pointcloud.Point{
					X: float64(col) * 0.08,
					Y: laptopKeyY,
					Z: float64(row) * 0.08,
				})
			}
		}
	}
	return pts
}

// laptopHinge maps a distance d along the opened lid to (y, z).
func laptopHinge(d float64) (y, z float64) {
	angle := radians(laptopOpen)
	return laptopDeckY + d*math.Cos(angle), laptopHingeZ + d*math.Sin(angle)
}

// laptopScreen is a 50x10 grid on the lid plane.
func laptopScreen() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, 500)
	for i := 0; i < 500; i++ {
		x := float64(i%50)/50*1.0 - 0.5
		y, z := laptopHinge(float64(i/50) / 10 * 0.8)
		pts = append(pts, pointcloud.Point{X: x, Y: y, Z: z})
	}
	return pts
}

// laptopFrame traces an ellipse folded onto the lid plane.
func laptopFrame() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, 100)
	for i := 0; i < 100; i++ {
		t := float64(i) / 100 * 2 * pi
		y, z := laptopHinge(math.Abs(math.Sin(t)) * 0.42)
		pts = append(pts, pointcloud.Point{X: math.Cos(t) * 0.52, Y: y, Z: z})
	}
	return pts
}

func laptopTouchpad() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for x := -8; x <= 8; x += 2 {
		for z := 5; z < 15; z += 2 {
			pts = append(pts, pointcloud.Point{X: float64(x) / 60, Y: laptopKeyY, Z: float64(z) / 60})
		}
	}
	return pts
}
