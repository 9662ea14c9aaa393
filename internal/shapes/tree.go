package shapes

import (
	"math"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

const (
	treeTrunkPoints   = 200
	treeFoliagePoints = 800
)

// treeCrownCenter is the centre of the foliage sphere.
var treeCrownCenter = pointcloud.Point{Y: 0.15}

func tree() pointcloud.Cloud {
	return pointcloud.Concat(treeTrunk(), treeFoliage())
}

// treeTrunk is a three-turn spiral that narrows as it rises from y=-0.5 to
// y=-0.1.
func treeTrunk() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, treeTrunkPoints)
	for i := 0; i < treeTrunkPoints; i++ {
		f := float64(i) / treeTrunkPoints
		angle := f * 2 * pi * 3
		height := f * 0.4
		radius := 0.05 * (1 - height)
		pts = append(pts, pointcloud.Point{
			X: radius * math.Cos(angle),
			Y: height - 0.5,
			Z: radius * math.Sin(angle),
		})
	}
	return pts
}

// treeFoliageRadius cycles through 100 shells between 0.25 and 0.448.
func treeFoliageRadius(i int) float64 {
	return 0.25 + float64(i%100)/500
}

func treeFoliage() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, treeFoliagePoints)
	for i := 0; i < treeFoliagePoints; i++ {
		p := goldenAngle(i, treeFoliagePoints, treeFoliageRadius(i))
		p.Y += treeCrownCenter.Y
		pts = append(pts, p)
	}
	return pts
}
