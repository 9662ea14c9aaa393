// Package shapes holds the built-in parametric point-cloud models and the
// registry that maps model names to their generators.
//
// Every generator is a pure function of its loop indices: no randomness, no
// inputs and no error path. Generators return their full, uncapped output;
// the registry applies each model's point budget with pointcloud.Cap so the
// truncation policy lives in one place.
package shapes

import (
	"fmt"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
)

// Name identifies a built-in model.
type Name string

const (
	Tree     Name = "tree"
	Car      Name = "car"
	Cube     Name = "cube"
	Sphere   Name = "sphere"
	DNA      Name = "dna"
	Heart    Name = "heart"
	Airplane Name = "airplane"
	Human    Name = "human"
	House    Name = "house"
	Laptop   Name = "laptop"
)

// DefaultBudget is the point budget shared by every capped model.
const DefaultBudget = 2000

// Generator produces a model's raw point sequence.
type Generator func() pointcloud.Cloud

// Model pairs a generator with its point budget. A zero Budget means the
// generator's output is served as is.
type Model struct {
	Name     Name
	Generate Generator
	Budget   int
}

// Points runs the generator and applies the budget.
func (m Model) Points() pointcloud.Cloud {
	return pointcloud.Cap(m.Generate(), m.Budget)
}

// builtin lists the models in canonical order.
var builtin = []Model{
	{Name: Tree, Generate: tree},
	{Name: Car, Generate: car, Budget: DefaultBudget},
	{Name: Cube, Generate: cube, Budget: DefaultBudget},
	{Name: Sphere, Generate: sphere},
	{Name: DNA, Generate: dna},
	{Name: Heart, Generate: heart, Budget: DefaultBudget},
	{Name: Airplane, Generate: airplane, Budget: DefaultBudget},
	{Name: Human, Generate: human, Budget: DefaultBudget},
	{Name: House, Generate: house, Budget: DefaultBudget},
	{Name: Laptop, Generate: laptop, Budget: DefaultBudget},
}

// Registry is an immutable lookup table of models. It is safe for concurrent
// use and keeps no state between calls.
type Registry struct {
	models []Model
	index  map[Name]int
}

// NewRegistry builds a registry holding the ten built-in models.
func NewRegistry() *Registry {
	r := &Registry{
		models: make([]Model, len(builtin)),
		index:  make(map[Name]int, len(builtin)),
	}
	copy(r.models, builtin)
	for i, m := range r.models {
		if _, dup := r.index[m.Name]; dup {
			panic(fmt.Sprintf("shapes: duplicate model %q", m.Name))
		}
		r.index[m.Name] = i
	}
	return r
}

// Names returns the model names in canonical order.
func (r *Registry) Names() []Name {
	names := make([]Name, len(r.models))
	for i, m := range r.models {
		names[i] = m.Name
	}
	return names
}

// Lookup returns the model registered under name.
func (r *Registry) Lookup(name Name) (Model, bool) {
	i, ok := r.index[name]
	if !ok {
		return Model{}, false
	}
	return r.models[i], true
}

// ParseName reports whether s names a registered model.
func (r *Registry) ParseName(s string) (Name, bool) {
	n := Name(s)
	_, ok := r.index[n]
	return n, ok
}

// Budget returns the point budget of name, or zero when it is uncapped or
// unknown.
func (r *Registry) Budget(name Name) int {
	m, ok := r.Lookup(name)
	if !ok {
		return 0
	}
	return m.Budget
}

// Generate computes a single model from scratch.
func (r *Registry) Generate(name Name) (pointcloud.Cloud, bool) {
	m, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	return m.Points(), true
}

// ListAllModels runs every generator exactly once and returns the results
// keyed by name. Nothing is cached; each call recomputes every model.
func (r *Registry) ListAllModels() map[Name]pointcloud.Cloud {
	out := make(map[Name]pointcloud.Cloud, len(r.models))
	for _, m := range r.models {
		out[m.Name] = m.Points()
	}
	return out
}
