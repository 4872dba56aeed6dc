package mesh

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type Builder func(size float64) Mesh

// Registry maps primitive labels to mesh builders. Unknown labels resolve to the fallback.
type Registry struct {
	builders map[string]Builder
	fallback string
}

func NewRegistry() *Registry {
	r := &Registry{builders: map[string]Builder{}, fallback: TypeSphere}
	_ = r.Register(TypeCube, Cube)
	_ = r.Register(TypeSphere, Sphere)
	return r
}

func (r *Registry) Register(name string, b Builder) error {
	name = normalize(name)
	if name == "" {
		return fmt.Errorf("primitive name required")
	}
	if b == nil {
		return fmt.Errorf("builder required for %q", name)
	}
	if _, exists := r.builders[name]; exists {
		return fmt.Errorf("duplicate primitive: %s", name)
	}
	r.builders[name] = b
	return nil
}

// Resolve returns the label that Get would build for primitive.
func (r *Registry) Resolve(primitive string) string {
	name := normalize(primitive)
	if _, ok := r.builders[name]; ok {
		return name
	}
	return r.fallback
}

// Get builds the mesh for primitive. Sizes that are not positive and finite become DefaultSize.
func (r *Registry) Get(primitive string, size float64) (Mesh, string) {
	if !(size > 0) || math.IsInf(size, 1) {
		size = DefaultSize
	}
	name := r.Resolve(primitive)
	return r.builders[name](size), name
}

func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.builders))
	for name := range r.builders {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// TypeForPrompt picks a primitive from free text: "cube" anywhere selects the cube.
func TypeForPrompt(prompt string) string {
	if strings.Contains(strings.ToLower(prompt), TypeCube) {
		return TypeCube
	}
	return TypeSphere
}

var defaultRegistry = NewRegistry()

// GetMesh builds from the built-in primitives.
func GetMesh(primitive string, size float64) Mesh {
	m, _ := defaultRegistry.Get(primitive, size)
	return m
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
