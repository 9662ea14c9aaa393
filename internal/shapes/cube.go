package shapes

import "github.com/banshee-data/pointcloud/internal/pointcloud"

const (
	cubeHalfSize = 0.4
	cubeGrid     = 50
)

// cubeFace selects one face of the cube. Each face maps grid coordinates
// (u, v) in [-1, 1) onto its own plane.
type cubeFace int

const (
	faceFront cubeFace = iota
	faceBack
	faceTop
	faceBottom
	faceRight
	faceLeft
)

var cubeFaces = []cubeFace{faceFront, faceBack, faceTop, faceBottom, faceRight, faceLeft}

func (f cubeFace) String() string {
	switch f {
	case faceFront:
		return "front"
	case faceBack:
		return "back"
	case faceTop:
		return "top"
	case faceBottom:
		return "bottom"
	case faceRight:
		return "right"
	case faceLeft:
		return "left"
	}
	return "unknown"
}

func (f cubeFace) point(u, v, s float64) pointcloud.Point {
	switch f {
	case faceFront:
		return frontFacePoint(u, v, s)
	case faceBack:
		return backFacePoint(u, v, s)
	case faceTop:
		return topFacePoint(u, v, s)
	case faceBottom:
		return bottomFacePoint(u, v, s)
	case faceRight:
		return rightFacePoint(u, v, s)
	case faceLeft:
		return leftFacePoint(u, v, s)
	}
	panic("shapes: unknown cube face")
}

func frontFacePoint(u, v, s float64) pointcloud.Point  { return pointcloud.Point{X: u * s, Y: v * s, Z: s} }
func backFacePoint(u, v, s float64) pointcloud.Point   { return pointcloud.Point{X: u * s, Y: v * s, Z: -s} }
func topFacePoint(u, v, s float64) pointcloud.Point    { return pointcloud.Point{X: u * s, Y: s, Z: v * s} }
func bottomFacePoint(u, v, s float64) pointcloud.Point { return pointcloud.Point{X: u * s, Y: -s, Z: v * s} }
func rightFacePoint(u, v, s float64) pointcloud.Point  { return pointcloud.Point{X: s, Y: u * s, Z: v * s} }
func leftFacePoint(u, v, s float64) pointcloud.Point   { return pointcloud.Point{X: -s, Y: u * s, Z: v * s} }

// cubeFaceGrid samples one face on a 50x50 grid.
func cubeFaceGrid(f cubeFace) pointcloud.Cloud {
	pts := make(pointcloud.Cloud, 0, cubeGrid*cubeGrid)
	for i := 0; i < cubeGrid; i++ {
		for j := 0; j < cubeGrid; j++ {
			u := (float64(i)/cubeGrid)*2 - 1
			v := (float64(j)/cubeGrid)*2 - 1
			pts = append(pts, f.point(u, v, cubeHalfSize))
		}
	}
	return pts
}

func cube() pointcloud.Cloud {
	parts := make([]pointcloud.Cloud, len(cubeFaces))
	for i, f := range cubeFaces {
		parts[i] = cubeFaceGrid(f)
	}
	return pointcloud.Concat(parts...)
}
