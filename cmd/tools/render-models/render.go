package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/banshee-data/pointcloud/internal/api"
	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/render"
	"github.com/banshee-data/pointcloud/internal/rpc"
	"github.com/banshee-data/pointcloud/internal/security"
	"github.com/banshee-data/pointcloud/internal/shapes"
)

// Options configures a render run.
type Options struct {
	OutDir  string
	Workers int
	// AssetsHost is passed through to the HTML charts.
	AssetsHost string
	// Client, when set, adds every design saved on that server.
	Client *api.Client
	// Models, when set, fetches the shapes over gRPC instead of generating
	// them locally.
	Models *rpc.ModelServiceClient
}

// item is one cloud to render. base is the sanitized output file stem.
type item struct {
	title string
	base  string
	cloud pointcloud.Cloud
}

// collect returns the shapes sorted by file stem followed by the server's
// designs sorted by name.
func collect(ctx context.Context, registry *shapes.Registry, o Options) ([]item, error) {
	var items []item
	if o.Models != nil {
		models, err := rpc.FetchModels(ctx, o.Models)
		if err != nil {
			return nil, err
		}
		for _, m := range models {
			items = append(items, item{title: string(m.Name), base: security.SanitizeFilename(string(m.Name)), cloud: m.Cloud})
		}
	} else {
		for name, cloud := range registry.ListAllModels() {
			items = append(items, item{title: string(name), base: security.SanitizeFilename(string(name)), cloud: cloud})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].base < items[j].base })

	if o.Client != nil {
		names, err := o.Client.ListDesigns(ctx)
		if err != nil {
			return nil, fmt.Errorf("list designs: %w", err)
		}
		for _, name := range names {
			cloud, err := o.Client.LoadDesign(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("load design %q: %w", name, err)
			}
			items = append(items, item{
				title: "design " + name,
				base:  "design-" + security.SanitizeFilename(name),
				cloud: cloud,
			})
		}
	}

	uniqueStems(items)
	return items, nil
}

// uniqueStems suffixes -2, -3, ... onto stems that sanitize to one already
// taken, so no two workers write the same file.
func uniqueStems(items []item) {
	taken := make(map[string]bool, len(items))
	for i := range items {
		base := items[i].base
		for n := 2; taken[base]; n++ {
			base = fmt.Sprintf("%s-%d", items[i].base, n)
		}
		taken[base] = true
		items[i].base = base
	}
}

// Run renders every item into o.OutDir and returns the written paths sorted.
func Run(ctx context.Context, registry *shapes.Registry, o Options) ([]string, error) {
	if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	items, err := collect(ctx, registry, o)
	if err != nil {
		return nil, err
	}

	workers := o.Workers
	if workers <= 0 {
		workers = 4
	}

	results := make([][]string, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, it := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			paths, err := renderItem(it, o)
			if err != nil {
				return fmt.Errorf("render %s: %w", it.title, err)
			}
			results[i] = paths
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var written []string
	for _, paths := range results {
		written = append(written, paths...)
	}
	sort.Strings(written)
	return written, nil
}

// renderItem writes <base>.json, <base>.asc, <base>.html and one
// <base>_<plane>.png per projection plane.
func renderItem(it item, o Options) ([]string, error) {
	var written []string
	write := func(name string, fn func(*os.File) error) error {
		path := filepath.Join(o.OutDir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	if err := write(it.base+".json", func(f *os.File) error {
		return json.NewEncoder(f).Encode(it.cloud)
	}); err != nil {
		return nil, err
	}

	if err := write(it.base+".asc", func(f *os.File) error {
		return pointcloud.WriteASC(f, it.cloud, it.title)
	}); err != nil {
		return nil, err
	}

	if err := write(it.base+".html", func(f *os.File) error {
		return render.Scatter3D(f, it.cloud, render.ChartOptions{Title: it.title, AssetsHost: o.AssetsHost})
	}); err != nil {
		return nil, err
	}

	for _, plane := range render.Planes {
		name := fmt.Sprintf("%s_%s.png", it.base, plane)
		if err := write(name, func(f *os.File) error {
			return render.Projection(f, it.cloud, plane, it.title, "png")
		}); err != nil {
			return nil, err
		}
	}
	return written, nil
}
