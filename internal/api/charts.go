package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/banshee-data/pointcloud/internal/designs"
	"github.com/banshee-data/pointcloud/internal/httputil"
	"github.com/banshee-data/pointcloud/internal/monitoring"
	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/render"
	"github.com/banshee-data/pointcloud/internal/security"
)

// resolveCloud returns the named shape, or the stored design of that name
// when the request carries ?design=1. It writes the error response itself
// and reports false on failure.
func (s *Server) resolveCloud(w http.ResponseWriter, r *http.Request, name string) (pointcloud.Cloud, bool) {
	if isDesign, _ := strconv.ParseBool(r.URL.Query().Get("design")); isDesign {
		cloud, err := s.store.Load(name)
		switch {
		case errors.Is(err, designs.ErrNotFound):
			httputil.NotFound(w, errDesignNotFound)
			return nil, false
		case err != nil:
			monitoring.Logf("load design %q failed: %v", name, err)
			httputil.InternalServerError(w, "Failed to load design")
			return nil, false
		}
		return cloud, true
	}

	shape, ok := s.registry.ParseName(name)
	if !ok {
		httputil.NotFound(w, errModelNotFound)
		return nil, false
	}
	cloud, _ := s.registry.Generate(shape)
	return cloud, true
}

// showChart renders an interactive 3D scatter page with go-echarts.
// Query params:
//   - design=1 to chart a stored design instead of a shape
//   - rotate=1 to auto-rotate the view
func (s *Server) showChart(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/charts/")
	cloud, ok := s.resolveCloud(w, r, name)
	if !ok {
		return
	}
	rotate, _ := strconv.ParseBool(r.URL.Query().Get("rotate"))

	var buf bytes.Buffer
	err := render.Scatter3D(&buf, cloud, render.ChartOptions{
		Title:      name,
		AssetsHost: s.ChartAssetsHost,
		AutoRotate: rotate,
	})
	if err != nil {
		monitoring.Logf("render chart %q failed: %v", name, err)
		httputil.InternalServerError(w, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// showPlot renders /api/plots/<name>.png as a 2D projection.
// Query params:
//   - plane=xy|xz|yz (default xy)
//   - design=1 to plot a stored design instead of a shape
func (s *Server) showPlot(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	file := strings.TrimPrefix(r.URL.Path, "/api/plots/")
	name, ok := strings.CutSuffix(file, ".png")
	if !ok {
		httputil.NotFound(w, "plots are served as <name>.png")
		return
	}
	plane, err := render.ParsePlane(r.URL.Query().Get("plane"))
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	cloud, ok := s.resolveCloud(w, r, name)
	if !ok {
		return
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("%s (%s)", name, plane)
	if err := render.Projection(&buf, cloud, plane, title, "png"); err != nil {
		monitoring.Logf("render plot %q failed: %v", name, err)
		httputil.InternalServerError(w, "Failed to render plot")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

// exportASC serves /api/exports/<name>.asc as a CloudCompare download.
// Query params:
//   - design=1 to export a stored design instead of a shape
func (s *Server) exportASC(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	file := strings.TrimPrefix(r.URL.Path, "/api/exports/")
	name, ok := strings.CutSuffix(file, ".asc")
	if !ok {
		httputil.NotFound(w, "exports are served as <name>.asc")
		return
	}
	cloud, ok := s.resolveCloud(w, r, name)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := pointcloud.WriteASC(&buf, cloud, name); err != nil {
		monitoring.Logf("export %q failed: %v", name, err)
		httputil.InternalServerError(w, "Failed to export points")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.asc", security.SanitizeFilename(name)))
	_, _ = w.Write(buf.Bytes())
}
