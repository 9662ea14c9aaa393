package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

const houseWallRadius = 0.4

// house stacks foundation, walls, roof, door and windows in that order. The
// walls alone produce 3000 points, so under the default budget the output
// ends part way up the walls.
func house() pointcloud.Cloud {
	return pointcloud.Concat(
		houseFoundation(),
		houseWalls(),
		houseRoof(),
		houseDoor(),
		houseWindows(),
	)
}

// houseFoundation is the perimeter of a 21x21 grid at floor level.
func houseFoundation() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for x := -20; x <= 20; x += 2 {
		for z := -20; z <= 20; z += 2 {
			if absInt(x) == 20 || absInt(z) == 20 {
				pts = append(pts, pointcloud.Point{X: float64(x) / 50, Y: -0.4, Z: float64(z) / 50})
			}
		}
	}
	return pts
}

// houseWallAngle reports whether a wall column is drawn at angle degrees.
// Columns at 45 degrees past each quadrant are left open.
func houseWallAngle(angle int) bool {
	return angle%90 < 45 || angle%90 > 45
}

func houseWalls() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for i := 0; i < 150; i++ {
		height := float64(i) / 150 * 0.5
		for angle := 0; angle < 360; angle += 15 {
			if !houseWallAngle(angle) {
				continue
			}
			rad := radians(float64(angle))
			pts = append(pts, pointcloud.Point{
				X: houseWallRadius * math.Cos(rad),
				Y: -0.4 + height,
				Z: houseWallRadius * math.Sin(rad),
			})
		}
	}
	return pts
}

// houseRoof narrows to an apex; the taper repeats every 100 steps.
func houseRoof() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, 300)
	for i := 0; i < 300; i++ {
		t := float64(i) / 300 * 2 * pi
		progress := float64(i%100) / 100
		roofHeight := 0.3 * (1 - progress)
		radius := 0.4 * (1 - progress)
		pts = append(pts, pointcloud.Point{
			X: radius * math.Cos(t),
			Y: 0.1 + roofHeight,
			Z: radius * math.Sin(t),
		})
	}
	return pts
}

func houseDoor() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, 50)
	for i := 0; i < 50; i++ {
		height := float64(i) / 50 * 0.3
		pts = append(pts, pointcloud.Point{X: 0.4, Y: -0.4 + height})
	}
	return pts
}

func houseWindows() pointcloud.Cloud {
	var pts pointcloud.Cloud
	for _, pos := range []float64{-0.2, 0.2} {
		for i := 0; i < 30; i++ {
			height := float64(i) / 30 * 0.15
			for _, offset := range []float64{-0.05, 0.05} {
				pts = append(pts, pointcloud.Point{X: 0.38, Y: -0.1 + height, Z: pos + offset})
			}
		}
	}
	return pts
}
