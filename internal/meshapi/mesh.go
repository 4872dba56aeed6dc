package meshapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/yungbote/eduviz/internal/mesh"
	"github.com/yungbote/eduviz/internal/meshapi/httputil"
)

type generateRequest struct {
	Prompt     string `json:"prompt"`
	Parameters struct {
		Size float64 `json:"size,omitempty"`
	} `json:"parameters"`
}

type generateMetadata struct {
	Prompt string `json:"prompt"`
	Type   string `json:"type"`
}

type generateResponse struct {
	Success  bool             `json:"success"`
	Mesh     mesh.Mesh        `json:"mesh"`
	Metadata generateMetadata `json:"metadata"`
}

// POST /generate
func (s *service) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := httputil.DecodeJSON(w, r, s.maxBytes, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid json: "+err.Error())
		return
	}

	m, typ := s.registry.Get(mesh.TypeForPrompt(req.Prompt), req.Parameters.Size)
	s.metrics.IncMeshBuild(typ, "json")
	s.log.Debug("mesh generated", "prompt", req.Prompt, "type", typ)

	httputil.WriteJSON(w, http.StatusOK, generateResponse{
		Success:  true,
		Mesh:     m,
		Metadata: generateMetadata{Prompt: req.Prompt, Type: typ},
	})
}

// GET /v1/mesh
func (s *service) handleTypes(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"types": s.registry.Types()})
}

// GET /v1/mesh/{type}?size=
func (s *service) handleMesh(w http.ResponseWriter, r *http.Request) {
	size, err := parseSize(r.URL.Query().Get("size"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_size", err.Error())
		return
	}
	m, typ := s.registry.Get(r.PathValue("type"), size)
	s.metrics.IncMeshBuild(typ, "json")
	w.Header().Set("X-Mesh-Type", typ)
	httputil.WriteJSON(w, http.StatusOK, m)
}

// GET /v1/mesh/{type}/preview.png?size=&px=
func (s *service) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	size, err := parseSize(q.Get("size"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_size", err.Error())
		return
	}
	px := s.previewSize
	if raw := strings.TrimSpace(q.Get("px")); raw != "" {
		if px, err = strconv.Atoi(raw); err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "invalid_px", fmt.Sprintf("invalid px %q", raw))
			return
		}
	}

	m, typ := s.registry.Get(r.PathValue("type"), size)
	img, err := mesh.RenderPreview(m, typ, px)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid_preview", err.Error())
		return
	}
	s.metrics.IncMeshBuild(typ, "png")

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Mesh-Type", typ)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

// parseSize accepts an empty value as "use the default".
func parseSize(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", raw)
	}
	return f, nil
}
