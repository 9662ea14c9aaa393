package api

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"tailscale.com/tsweb"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/version"
)

// AttachAdminRoutes adds a shape registry page to the tsweb /debug/ index.
func (s *Server) AttachAdminRoutes(mux *http.ServeMux) {
	debug := tsweb.Debugger(mux)
	debug.KV("Version", version.String())
	debug.KV("Design store", s.storeKind)
	debug.Handle("models", "Registered shapes and point counts", http.HandlerFunc(s.showModelsPage))
}

func (s *Server) showModelsPage(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("<html><head><title>Shapes</title></head><body>\n")
	b.WriteString("<table border=1 cellpadding=4>\n<tr><th>shape</th><th>raw</th><th>served</th><th>budget</th><th>mean radius</th><th></th></tr>\n")

	for _, name := range s.registry.Names() {
		m, _ := s.registry.Lookup(name)
		raw := m.Generate()
		served, _ := s.registry.Generate(name)
		st := pointcloud.ComputeStats(served)

		budget := "none"
		if m.Budget > 0 {
			budget = fmt.Sprint(m.Budget)
		}
		n := html.EscapeString(string(name))
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%d</td><td>%s</td><td>%.4f</td>"+
			"<td><a href=\"/api/charts/%s\">chart</a> <a href=\"/api/plots/%s.png\">plot</a> <a href=\"/api/exports/%s.asc\">asc</a></td></tr>\n",
			n, len(raw), len(served), budget, st.MeanRadius, n, n, n)
	}
	b.WriteString("</table>\n</body></html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}
