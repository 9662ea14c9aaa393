package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

const airplaneSlices = 300

func airplane() pointcloud.Cloud {
	return pointcloud.Concat(airplaneFuselage(), airplaneWings(), airplaneTail())
}

// airplaneFuselage rings the x axis from nose to tail, 18 points per ring.
func airplaneFuselage() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, airplaneSlices*18)
	for i := 0; i < airplaneSlices; i++ {
		t := float64(i)/airplaneSlices*1.0 - 0.5
		radius := 0.08 * (1 - math.Abs(t)*1.5)
		for angle := 0; angle < 360; angle += 20 {
			rad := radians(float64(angle))
			pts = append(pts, pointcloud.Point{
				X: t,
				Y: math.Cos(rad) * radius,
				Z: math.Sin(rad) * radius,
			})
		}
	}
	return pts
}

// airplaneWings is a flat grid with the fuselage span (|z| <= 5) cut out.
func airplaneWings() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for x := -10; x <= 10; x++ {
		for z := -40; z <= 40; z++ {
			if absInt(z) > 5 {
				pts = append(pts, pointcloud.Point{X: float64(x) / 100, Y: 0, Z: float64(z) / 100})
			}
		}
	}
	return pts
}

func airplaneTail() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for y := 0; y < 20; y++ {
		for z := -5; z <= 5; z++ {
			pts = append(pts, pointcloud.Point{X: -0.45, Y: float64(y) / 100, Z: float64(z) / 100})
		}
	}
	return pts
}
