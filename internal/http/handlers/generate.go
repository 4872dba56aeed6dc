package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/eduviz/internal/domain/content"
	"github.com/yungbote/eduviz/internal/generator"
	"github.com/yungbote/eduviz/internal/http/response"
	"github.com/yungbote/eduviz/internal/observability"
	"github.com/yungbote/eduviz/internal/platform/logger"
)

type GenerateHandler struct {
	log     *logger.Logger
	gen     *generator.Generator
	metrics *observability.Metrics
}

func NewGenerateHandler(log *logger.Logger, gen *generator.Generator, metrics *observability.Metrics) *GenerateHandler {
	return &GenerateHandler{log: log.With("handler", "GenerateHandler"), gen: gen, metrics: metrics}
}

// POST /generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req content.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, bindError(err))
		return
	}

	out, err := h.gen.Generate(c.Request.Context(), req)
	if err != nil {
		h.metrics.IncGeneration(generator.Classify(req.Prompt).String(), "error")
		h.log.Error("generation failed", "prompt", req.Prompt, "error", err)
		response.RespondAPIError(c, generationError(err))
		return
	}
	h.metrics.IncGeneration(out.Response.Subject.String(), "ok")
	h.log.Debug("generated", "prompt", req.Prompt, "subject", out.Response.Subject, "concept", out.Concept)

	response.RespondOK(c, out.Response)
}
