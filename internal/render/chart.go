// Package render draws point clouds as interactive go-echarts pages and as
// gonum/plot PNG projections. The HTTP API and the offline renderer share it.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

// axisLimit bounds every axis of the 3D chart. All shapes sit inside it.
const axisLimit = 1.0

// ChartOptions controls the HTML scatter page.
type ChartOptions struct {
	Title    string
	Subtitle string
	// AssetsHost overrides where echarts JS is loaded from. Empty uses the
	// go-echarts CDN default.
	AssetsHost string
	// AutoRotate spins the view slowly.
	AutoRotate bool
}

// Scatter3D writes a standalone HTML page with an interactive 3D scatter of c.
// Points are emitted in cloud order.
func Scatter3D(w io.Writer, c pointcloud.Cloud, o ChartOptions) error {
	data := make([]opts.Chart3DData, len(c))
	for i, p := range c {
		data[i] = opts.Chart3DData{Value: []interface{}{p.X, p.Y, p.Z}}
	}

	subtitle := o.Subtitle
	if subtitle == "" {
		subtitle = fmt.Sprintf("points=%d", len(c))
	}

	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  o.Title,
			Theme:      "dark",
			Width:      "900px",
			Height:     "900px",
			AssetsHost: o.AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X", Min: -axisLimit, Max: axisLimit}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y", Min: -axisLimit, Max: axisLimit}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z", Min: -axisLimit, Max: axisLimit}),
		charts.WithGrid3DOpts(opts.Grid3D{
			BoxWidth:    100,
			BoxHeight:   100,
			BoxDepth:    100,
			ViewControl: &opts.ViewControl{AutoRotate: opts.Bool(o.AutoRotate)},
		}),
	)
	scatter.AddSeries(o.Title, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#35b779"}))

	return scatter.Render(w)
}
