package mesh

import "math"

const (
	TypeCube   = "cube"
	TypeSphere = "sphere"

	DefaultSize  = 1.0
	DefaultColor = "#4A90E2"
)

type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Face struct {
	Vertices []int `json:"vertices"`
}

type Material struct {
	Color     string  `json:"color"`
	Roughness float64 `json:"roughness"`
	Metalness float64 `json:"metalness"`
}

type Mesh struct {
	Vertices []Vertex `json:"vertices"`
	Faces    []Face   `json:"faces"`
	Material Material `json:"material"`
}

func defaultMaterial() Material {
	return Material{Color: DefaultColor, Roughness: 0.5, Metalness: 0.5}
}

// Cube is an axis-aligned cube of edge size centred on the origin.
func Cube(size float64) Mesh {
	h := size / 2
	vertices := make([]Vertex, 0, 8)
	for _, x := range []float64{-h, h} {
		for _, y := range []float64{-h, h} {
			for _, z := range []float64{-h, h} {
				vertices = append(vertices, Vertex{X: x, Y: y, Z: z})
			}
		}
	}
	return Mesh{
		Vertices: vertices,
		Faces: faces(
			[3]int{0, 1, 2}, [3]int{1, 2, 3},
			[3]int{4, 5, 6}, [3]int{5, 6, 7},
			[3]int{0, 2, 4}, [3]int{2, 4, 6},
			[3]int{1, 3, 5}, [3]int{3, 5, 7},
			[3]int{0, 1, 4}, [3]int{1, 4, 5},
			[3]int{2, 3, 6}, [3]int{3, 6, 7},
		),
		Material: defaultMaterial(),
	}
}

// Sphere approximates a sphere of diameter size with an icosahedron.
func Sphere(size float64) Mesh {
	phi := (1 + math.Sqrt(5)) / 2
	scale := (size / 2) / math.Sqrt(1+phi*phi)

	raw := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	vertices := make([]Vertex, len(raw))
	for i, v := range raw {
		vertices[i] = Vertex{X: v[0] * scale, Y: v[1] * scale, Z: v[2] * scale}
	}
	return Mesh{
		Vertices: vertices,
		Faces: faces(
			[3]int{0, 11, 5}, [3]int{0, 5, 1}, [3]int{0, 1, 7}, [3]int{0, 7, 10}, [3]int{0, 10, 11},
			[3]int{1, 5, 9}, [3]int{5, 11, 4}, [3]int{11, 10, 2}, [3]int{10, 7, 6}, [3]int{7, 1, 8},
			[3]int{3, 9, 4}, [3]int{3, 4, 2}, [3]int{3, 2, 6}, [3]int{3, 6, 8}, [3]int{3, 8, 9},
			[3]int{4, 9, 5}, [3]int{2, 4, 11}, [3]int{6, 2, 10}, [3]int{8, 6, 7}, [3]int{9, 8, 1},
		),
		Material: defaultMaterial(),
	}
}

func faces(tris ...[3]int) []Face {
	out := make([]Face, len(tris))
	for i, t := range tris {
		out[i] = Face{Vertices: []int{t[0], t[1], t[2]}}
	}
	return out
}
