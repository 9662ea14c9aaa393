package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/banshee-data/pointcloud/internal/designs"
	"github.com/banshee-data/pointcloud/internal/httputil"
	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/shapes"
)

// Client calls a running server's model and design routes.
type Client struct {
	baseURL string
	http    httputil.HTTPClient
}

// NewClient returns a client for the server at baseURL, e.g.
// "http://localhost:5000". A nil hc uses http.DefaultClient.
func NewClient(baseURL string, hc httputil.HTTPClient) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return httputil.DoJSON(c.http, req, out)
}

// Models fetches every shape.
func (c *Client) Models(ctx context.Context) (map[shapes.Name]pointcloud.Cloud, error) {
	var out map[shapes.Name]pointcloud.Cloud
	if err := c.do(ctx, http.MethodGet, "/api/models", nil, &out); err != nil {
		return nil, fmt.Errorf("get models: %w", err)
	}
	return out, nil
}

// SaveDesign stores points under name and returns the server's location.
func (c *Client) SaveDesign(ctx context.Context, name string, points pointcloud.Cloud) (string, error) {
	var out SaveDesignResponse
	req := SaveDesignRequest{Name: &name, Points: points}
	if err := c.do(ctx, http.MethodPost, "/api/save-design", req, &out); err != nil {
		return "", fmt.Errorf("save design %q: %w", name, err)
	}
	return out.Filename, nil
}

// LoadDesign fetches a stored design. A missing design yields an error
// matching designs.ErrNotFound.
func (c *Client) LoadDesign(ctx context.Context, name string) (pointcloud.Cloud, error) {
	var out pointcloud.Cloud
	err := c.do(ctx, http.MethodGet, "/api/load-design/"+url.PathEscape(name), nil, &out)
	var se *httputil.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", designs.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load design %q: %w", name, err)
	}
	return out, nil
}

// ListDesigns returns the stored design names.
func (c *Client) ListDesigns(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/list-designs", nil, &out); err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	return out, nil
}
