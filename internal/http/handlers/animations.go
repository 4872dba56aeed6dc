package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/eduviz/internal/data/repos/animations"
	"github.com/yungbote/eduviz/internal/domain/content"
	"github.com/yungbote/eduviz/internal/generator"
	"github.com/yungbote/eduviz/internal/http/response"
	"github.com/yungbote/eduviz/internal/observability"
	"github.com/yungbote/eduviz/internal/pkg/dbctx"
	pkgerrors "github.com/yungbote/eduviz/internal/pkg/errors"
	"github.com/yungbote/eduviz/internal/platform/apierr"
	"github.com/yungbote/eduviz/internal/platform/logger"
	"github.com/yungbote/eduviz/internal/realtime"
	"github.com/yungbote/eduviz/internal/realtime/bus"
)

type AnimationHandler struct {
	log     *logger.Logger
	gen     *generator.Generator
	repo    animations.AnimationRepo
	bus     bus.Bus
	hub     *realtime.SSEHub
	metrics *observability.Metrics
}

func NewAnimationHandler(
	log *logger.Logger,
	gen *generator.Generator,
	repo animations.AnimationRepo,
	b bus.Bus,
	hub *realtime.SSEHub,
	metrics *observability.Metrics,
) *AnimationHandler {
	return &AnimationHandler{
		log:     log.With("handler", "AnimationHandler"),
		gen:     gen,
		repo:    repo,
		bus:     b,
		hub:     hub,
		metrics: metrics,
	}
}

type createAnimationRequest struct {
	Prompt  string          `json:"prompt"`
	Context map[string]any  `json:"context,omitempty"`
	Objects json.RawMessage `json:"objects,omitempty"`
}

type createAnimationResponse struct {
	ID uuid.UUID `json:"id"`
	content.GeneratedResponse
	PrimitiveType string `json:"primitive_type"`
}

type updateAnimationRequest struct {
	Objects json.RawMessage `json:"objects"`
}

// POST /api/animations
func (h *AnimationHandler) Create(c *gin.Context) {
	var req createAnimationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, bindError(err))
		return
	}

	out, err := h.gen.Generate(c.Request.Context(), content.PromptRequest{Prompt: req.Prompt, Context: req.Context})
	if err != nil {
		h.metrics.IncGeneration(generator.Classify(req.Prompt).String(), "error")
		h.log.Error("generation failed", "prompt", req.Prompt, "error", err)
		response.RespondAPIError(c, generationError(err))
		return
	}
	h.metrics.IncGeneration(out.Response.Subject.String(), "ok")

	params, err := json.Marshal(out.Response.Parameters)
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("internal", err))
		return
	}
	var ctxJSON datatypes.JSON
	if req.Context != nil {
		if ctxJSON, err = json.Marshal(req.Context); err != nil {
			response.RespondAPIError(c, apierr.BadRequest("invalid_request", err))
			return
		}
	}

	row, err := h.repo.Create(dbctx.For(c.Request.Context()), &content.Animation{
		Prompt:        req.Prompt,
		Subject:       out.Response.Subject.String(),
		AnimationType: out.Response.AnimationType,
		PrimitiveType: out.Primitive,
		GeneratedText: out.Response.GeneratedText,
		Parameters:    datatypes.JSON(params),
		Context:       ctxJSON,
		Objects:       datatypes.JSON(req.Objects),
	})
	if err != nil {
		h.log.Error("create animation failed", "prompt", req.Prompt, "error", err)
		response.RespondAPIError(c, apierr.Internal("db_error", err))
		return
	}

	h.publish(c, realtime.SSEMessage{
		Channel: realtime.AnimationChannel(row.ID),
		Event:   realtime.SSEEventAnimationCreated,
		Data:    row,
	})

	response.RespondCreated(c, createAnimationResponse{
		ID:                row.ID,
		GeneratedResponse: out.Response,
		PrimitiveType:     out.Primitive,
	})
}

// GET /api/animations
func (h *AnimationHandler) List(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.RespondAPIError(c, apierr.BadRequest("invalid_limit", fmt.Errorf("invalid limit %q", raw)))
			return
		}
		limit = n
	}
	var subject content.SubjectTag
	if raw := strings.TrimSpace(c.Query("subject")); raw != "" {
		tag, ok := content.ParseSubject(raw)
		if !ok {
			response.RespondAPIError(c, apierr.BadRequest("invalid_subject", fmt.Errorf("unknown subject %q", raw)))
			return
		}
		subject = tag
	}
	rows, err := h.repo.ListRecent(dbctx.For(c.Request.Context()), subject, limit)
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("db_error", err))
		return
	}
	response.RespondOK(c, gin.H{"animations": rows})
}

// GET /api/animations/:id
func (h *AnimationHandler) Get(c *gin.Context) {
	row, ok := h.load(c)
	if !ok {
		return
	}
	response.RespondOK(c, row)
}

// PUT /api/animations/:id
func (h *AnimationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateAnimationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, bindError(err))
		return
	}
	if len(req.Objects) == 0 {
		response.RespondAPIError(c, apierr.BadRequest("invalid_request", errors.New("objects is required")))
		return
	}

	err := h.repo.UpdateObjects(dbctx.For(c.Request.Context()), id, datatypes.JSON(req.Objects))
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondAPIError(c, apierr.NotFound("not_found", fmt.Errorf("animation %s not found", id)))
		return
	case err != nil:
		h.log.Error("update animation failed", "animation_id", id, "error", err)
		response.RespondAPIError(c, apierr.Internal("db_error", err))
		return
	}

	h.publish(c, realtime.SSEMessage{
		Channel: realtime.AnimationChannel(id),
		Event:   realtime.SSEEventAnimationUpdated,
		Data:    gin.H{"id": id, "objects": req.Objects},
	})
	response.RespondOK(c, gin.H{"success": true})
}

// DELETE /api/animations/:id
func (h *AnimationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.repo.SoftDelete(dbctx.For(c.Request.Context()), id)
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondAPIError(c, apierr.NotFound("not_found", fmt.Errorf("animation %s not found", id)))
		return
	case err != nil:
		h.log.Error("delete animation failed", "animation_id", id, "error", err)
		response.RespondAPIError(c, apierr.Internal("db_error", err))
		return
	}

	h.publish(c, realtime.SSEMessage{
		Channel: realtime.AnimationChannel(id),
		Event:   realtime.SSEEventAnimationDeleted,
		Data:    gin.H{"id": id},
	})
	response.RespondOK(c, gin.H{"success": true})
}

// GET /api/animations/:id/events
func (h *AnimationHandler) Events(c *gin.Context) {
	row, ok := h.load(c)
	if !ok {
		return
	}
	client := h.hub.NewSSEClient()
	h.hub.AddChannel(client, realtime.AnimationChannel(row.ID))
	h.log.Debug("SSE stream open", "animation_id", row.ID, "client_id", client.ID)

	h.hub.ServeHTTP(c.Writer, c.Request, client)
	h.hub.CloseClient(client)
}

func (h *AnimationHandler) load(c *gin.Context) (*content.Animation, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	row, err := h.repo.GetByID(dbctx.For(c.Request.Context()), id)
	if err != nil {
		response.RespondAPIError(c, apierr.Internal("db_error", err))
		return nil, false
	}
	if row == nil {
		response.RespondAPIError(c, apierr.NotFound("not_found", fmt.Errorf("animation %s not found", id)))
		return nil, false
	}
	return row, true
}

func (h *AnimationHandler) publish(c *gin.Context, msg realtime.SSEMessage) {
	if h.bus == nil {
		return
	}
	if err := h.bus.Publish(c.Request.Context(), msg); err != nil {
		h.log.Warn("publish failed", "channel", msg.Channel, "event", msg.Event, "error", err)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		response.RespondAPIError(c, apierr.BadRequest("invalid_id", fmt.Errorf("invalid animation id %q", raw)))
		return uuid.Nil, false
	}
	return id, true
}
