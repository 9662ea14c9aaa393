package api

import (
	"net/http"
	"strings"

	"github.com/banshee-data/pointcloud/internal/httputil"
	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/shapes"
	"github.com/banshee-data/pointcloud/internal/version"
)

const errModelNotFound = "Model not found"

// ModelStats is the body of GET /api/models/<name>/stats.
type ModelStats struct {
	Name   shapes.Name `json:"name"`
	Budget int         `json:"budget"`
	pointcloud.Stats
}

// listModels serves every shape keyed by name. Each request regenerates the
// clouds.
func (s *Server) listModels(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	httputil.WriteJSONOK(w, s.registry.ListAllModels())
}

// modelRoutes handles /api/models/<name> and /api/models/<name>/stats.
func (s *Server) modelRoutes(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/models/")
	raw, sub, _ := strings.Cut(rest, "/")

	name, ok := s.registry.ParseName(raw)
	if !ok {
		httputil.NotFound(w, errModelNotFound)
		return
	}

	cloud, _ := s.registry.Generate(name)
	switch sub {
	case "":
		httputil.WriteJSONOK(w, cloud)
	case "stats":
		httputil.WriteJSONOK(w, ModelStats{
			Name:   name,
			Budget: s.registry.Budget(name),
			Stats:  pointcloud.ComputeStats(cloud),
		})
	default:
		httputil.NotFound(w, errModelNotFound)
	}
}

// ConfigResponse is the body of GET /api/config.
type ConfigResponse struct {
	Version string        `json:"version"`
	GitSHA  string        `json:"git_sha"`
	Store   string        `json:"store"`
	Shapes  []shapes.Name `json:"shapes"`
}

func (s *Server) showConfig(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	httputil.WriteJSONOK(w, ConfigResponse{
		Version: version.Version,
		GitSHA:  version.GitSHA,
		Store:   s.storeKind,
		Shapes:  s.registry.Names(),
	})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	httputil.MethodNotAllowed(w, allowed...)
}
