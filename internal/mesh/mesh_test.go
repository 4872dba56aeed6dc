package mesh

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCubeGeometry(t *testing.T) {
	m := Cube(2)
	require.Len(t, m.Vertices, 8)
	require.Len(t, m.Faces, 12)
	for _, v := range m.Vertices {
		for _, c := range []float64{v.X, v.Y, v.Z} {
			require.InDelta(t, 1.0, math.Abs(c), 1e-9)
		}
	}
	require.Equal(t, Vertex{X: -1, Y: -1, Z: -1}, m.Vertices[0])
	require.Equal(t, Vertex{X: 1, Y: 1, Z: 1}, m.Vertices[7])
	requireFacesInRange(t, m)
}

func TestSphereIsClosedIcosahedron(t *testing.T) {
	m := Sphere(3)
	require.Len(t, m.Vertices, 12)
	require.Len(t, m.Faces, 20)
	for _, v := range m.Vertices {
		r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		require.InDelta(t, 1.5, r, 1e-9)
	}
	requireFacesInRange(t, m)

	edges := map[[2]int]int{}
	for _, f := range m.Faces {
		for i := range f.Vertices {
			a, b := f.Vertices[i], f.Vertices[(i+1)%len(f.Vertices)]
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}]++
		}
	}
	require.Len(t, edges, 30)
	for e, n := range edges {
		require.Equalf(t, 2, n, "edge %v shared by %d faces", e, n)
	}
}

func TestRegistryFallbackAndSize(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, []string{TypeCube, TypeSphere}, r.Types())

	m, name := r.Get(" CUBE ", 0)
	require.Equal(t, TypeCube, name)
	require.InDelta(t, 0.5, m.Vertices[7].X, 1e-9)

	_, name = r.Get("dodecahedron", 1)
	require.Equal(t, TypeSphere, name)

	_, name = r.Get("", math.NaN())
	require.Equal(t, TypeSphere, name)

	m, _ = r.Get("cube", math.Inf(1))
	require.InDelta(t, 0.5, m.Vertices[7].X, 1e-9)
	m, _ = r.Get("cube", -3)
	require.InDelta(t, 0.5, m.Vertices[7].X, 1e-9)

	require.Error(t, r.Register("cube", Cube))
	require.Error(t, r.Register("", Cube))
	require.NoError(t, r.Register("tetra", Sphere))
	require.Equal(t, "tetra", r.Resolve("Tetra"))
}

func TestMaterialDefaults(t *testing.T) {
	m := GetMesh("cube", 1)
	require.Equal(t, Material{Color: "#4A90E2", Roughness: 0.5, Metalness: 0.5}, m.Material)
}

func TestTypeForPrompt(t *testing.T) {
	require.Equal(t, TypeCube, TypeForPrompt("a spinning Cube"))
	require.Equal(t, TypeSphere, TypeForPrompt("a planet"))
	require.Equal(t, TypeSphere, TypeForPrompt(""))
}

func TestRenderPreview(t *testing.T) {
	raw, err := RenderPreview(Cube(1), "cube", 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 128, img.Bounds().Dx())
	require.Equal(t, 128, img.Bounds().Dy())

	_, err = RenderPreview(Cube(1), "", 8)
	require.Error(t, err)

	_, err = RenderPreview(Mesh{}, "", 128)
	require.Error(t, err)

	bad := Cube(1)
	bad.Faces = append(bad.Faces, Face{Vertices: []int{0, 1, 99}})
	_, err = RenderPreview(bad, "", 128)
	require.Error(t, err)
}

func requireFacesInRange(t *testing.T, m Mesh) {
	t.Helper()
	for _, f := range m.Faces {
		require.Len(t, f.Vertices, 3)
		for _, idx := range f.Vertices {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, len(m.Vertices))
		}
	}
}
