package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

const (
	humanHeadPoints = 200
	humanHeadRadius = 0.12
	humanHeadY      = 0.45
	humanBodyPoints = 300
	humanArmPoints  = 150
	humanLegPoints  = 200
)

var humanSides = []float64{-1, 1}

func human() pointcloud.Cloud {
	return pointcloud.Concat(humanHead(), humanBody(), humanArms(), humanLegs())
}

func humanHead() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, humanHeadPoints)
	for i := 0; i < humanHeadPoints; i++ {
		p := goldenAngle(i, humanHeadPoints, humanHeadRadius)
		p.Y += humanHeadY
		pts = append(pts, p)
	}
	return pts
}

// humanBody is an elliptical spiral descending from y=0.3.
func humanBody() pointcloud.Cloud {
	const radius = 0.15
	pts := make(pointcloud.Cloud, 0, humanBodyPoints)
	for i := 0; i < humanBodyPoints; i++ {
		f := float64(i) / humanBodyPoints
		height := f * 0.5
		angle := f * 2 * pi * 3
		pts = append(pts, pointcloud.Point{
			X: radius * math.Cos(angle) * 0.5,
			Y: 0.3 - height,
			Z: radius * math.Sin(angle) * 0.3,
		})
	}
	return pts
}

// humanArms slope outward from the shoulders, left arm first.
func humanArms() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, 2*humanArmPoints)
	for _, side := range humanSides {
		for i := 0; i < humanArmPoints; i++ {
			height := float64(i) / humanArmPoints * 0.4
			pts = append(pts, pointcloud.Point{X: side * (0.15 + height*0.3), Y: 0.2 - height})
		}
	}
	return pts
}

func humanLegs() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, 2*humanLegPoints)
	for _, side := range humanSides {
		for i := 0; i < humanLegPoints; i++ {
			height := float64(i) / humanLegPoints * 0.5
			pts = append(pts, pointcloud.Point{X: side * 0.1, Y: -0.2 - height})
		}
	}
	return pts
}
