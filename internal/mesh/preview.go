package mesh

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	MinPreviewSize     = 64
	MaxPreviewSize     = 1024
	DefaultPreviewSize = 256
)

var labelFace = sync.OnceValues(func() (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: 14}), nil
})

// RenderPreview draws an isometric wireframe of m as a PNG of px×px pixels.
func RenderPreview(m Mesh, label string, px int) ([]byte, error) {
	if px < MinPreviewSize || px > MaxPreviewSize {
		return nil, fmt.Errorf("preview size %d out of range [%d,%d]", px, MinPreviewSize, MaxPreviewSize)
	}
	if len(m.Vertices) == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}

	pts := project(m.Vertices, float64(px))

	dc := gg.NewContext(px, px)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	color := m.Material.Color
	if color == "" {
		color = DefaultColor
	}
	dc.SetHexColor(color)
	dc.SetLineWidth(1.5)
	for _, f := range m.Faces {
		n := len(f.Vertices)
		for i := 0; i < n; i++ {
			a, b := f.Vertices[i], f.Vertices[(i+1)%n]
			if a < 0 || b < 0 || a >= len(pts) || b >= len(pts) {
				return nil, fmt.Errorf("face references vertex out of range")
			}
			dc.DrawLine(pts[a][0], pts[a][1], pts[b][0], pts[b][1])
		}
	}
	dc.Stroke()

	if label != "" {
		face, err := labelFace()
		if err != nil {
			return nil, fmt.Errorf("load label font: %w", err)
		}
		dc.SetFontFace(face)
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(label, float64(px)/2, float64(px)-12, 0.5, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// project maps vertices to canvas points with an isometric projection, fit to 80% of the canvas.
func project(vs []Vertex, canvas float64) [][2]float64 {
	cos30, sin30 := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	out := make([][2]float64, len(vs))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, v := range vs {
		x := (v.X - v.Z) * cos30
		y := v.Y - (v.X+v.Z)*sin30
		out[i] = [2]float64{x, y}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	scale := canvas * 0.8 / span
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	for i, p := range out {
		out[i] = [2]float64{
			canvas/2 + (p[0]-cx)*scale,
			canvas/2 - (p[1]-cy)*scale,
		}
	}
	return out
}
