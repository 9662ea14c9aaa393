package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

var triangle = pointcloud.Cloud{
	{X: 0, Y: 0.5, Z: 0},
	{X: -0.5, Y: -0.5, Z: 0.25},
	{X: 0.5, Y: -0.5, Z: -0.25},
}

func TestScatter3D(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Scatter3D(&buf, triangle, ChartOptions{Title: "triangle"}))

	page := buf.String()
	assert.Contains(t, page, "<title>triangle</title>")
	assert.Contains(t, page, "scatter3D")
	assert.Contains(t, page, "points=3")
	assert.Contains(t, page, "echarts-gl")
}

func TestScatter3D_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Scatter3D(&buf, nil, ChartOptions{Title: "empty", Subtitle: "nothing here"}))
	assert.Contains(t, buf.String(), "nothing here")
}

func TestProjection_PNG(t *testing.T) {
	for _, plane := range Planes {
		t.Run(string(plane), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Projection(&buf, triangle, plane, "triangle", "png"))

			cfg, err := png.DecodeConfig(&buf)
			require.NoError(t, err)
			assert.Equal(t, cfg.Width, cfg.Height)
		})
	}
}

func TestProjection_EmptyCloud(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Projection(&buf, nil, PlaneXY, "empty", "svg"))
	assert.True(t, strings.Contains(buf.String(), "<svg"))
}

func TestProjection_BadFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Projection(&buf, triangle, PlaneXY, "t", "bmp-ish"))
}

func TestParsePlane(t *testing.T) {
	tests := []struct {
		in      string
		want    Plane
		wantErr bool
	}{
		{"", PlaneXY, false},
		{"xy", PlaneXY, false},
		{"xz", PlaneXZ, false},
		{"yz", PlaneYZ, false},
		{"zx", "", true},
		{"XY", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePlane(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPlane_Project(t *testing.T) {
	p := pointcloud.Point{X: 1, Y: 2, Z: 3}
	x, y := PlaneXZ.project(p)
	assert.Equal(t, [2]float64{1, 3}, [2]float64{x, y})
	x, y = PlaneYZ.project(p)
	assert.Equal(t, [2]float64{2, 3}, [2]float64{x, y})
	x, y = PlaneXY.project(p)
	assert.Equal(t, [2]float64{1, 2}, [2]float64{x, y})
}
