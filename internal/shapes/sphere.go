package shapes

import "github.com/banshee-data/pointcloud/internal/pointcloud"

const (
	spherePoints = 2000
	sphereRadius = 0.35
)

func sphere() pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, spherePoints)
	for i := 0; i < spherePoints; i++ {
		pts = append(pts, goldenAngle(i, spherePoints, sphereRadius))
	}
	return pts
}
