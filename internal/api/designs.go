package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/banshee-data/pointcloud/internal/designs"
	"github.com/banshee-data/pointcloud/internal/httputil"
	"github.com/banshee-data/pointcloud/internal/monitoring"
	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

const errDesignNotFound = "Design not found"

// SaveDesignRequest is the body of POST /api/save-design. A missing name
// saves under designs.DefaultName; missing points save an empty design.
type SaveDesignRequest struct {
	Name   *string          `json:"name"`
	Points pointcloud.Cloud `json:"points"`
}

// SaveDesignResponse acknowledges a save.
type SaveDesignResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
}

func (s *Server) saveDesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var req SaveDesignRequest
	if err := httputil.DecodeJSONBody(w, r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			httputil.BadRequest(w, "request body is required")
			return
		}
		httputil.BadRequest(w, err.Error())
		return
	}

	name := designs.DefaultName
	if req.Name != nil {
		name = *req.Name
	}

	where, err := s.store.Save(name, req.Points)
	switch {
	case errors.Is(err, designs.ErrInvalidName):
		httputil.BadRequest(w, err.Error())
		return
	case err != nil:
		monitoring.Logf("save design %q failed: %v", name, err)
		httputil.InternalServerError(w, "Failed to save design")
		return
	}

	httputil.WriteJSONOK(w, SaveDesignResponse{Status: "success", Filename: where})
}

func (s *Server) loadDesign(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/load-design/")
	cloud, err := s.store.Load(name)
	switch {
	case errors.Is(err, designs.ErrNotFound):
		httputil.NotFound(w, errDesignNotFound)
		return
	case err != nil:
		monitoring.Logf("load design %q failed: %v", name, err)
		httputil.InternalServerError(w, "Failed to load design")
		return
	}
	httputil.WriteJSONOK(w, cloud)
}

func (s *Server) listDesigns(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	names, err := s.store.List()
	if err != nil {
		monitoring.Logf("list designs failed: %v", err)
		httputil.InternalServerError(w, "Failed to list designs")
		return
	}
	httputil.WriteJSONOK(w, names)
}
