package generator

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/eduviz/internal/domain/content"
)

const tracerName = "github.com/yungbote/eduviz/internal/generator"

// Generation is one pass of the pipeline: the response plus what went into it.
type Generation struct {
	Response  content.GeneratedResponse
	Primitive string
	Concept   string
	Object    string
}

// Generator runs classify, resolve, extract and compose. It holds no request state
// and is safe for concurrent use.
type Generator struct {
	tracer trace.Tracer
}

func New() *Generator {
	return &Generator{tracer: otel.Tracer(tracerName)}
}

func (g *Generator) Generate(ctx context.Context, req content.PromptRequest) (Generation, error) {
	_, span := g.tracer.Start(ctx, "generator.Generate")
	defer span.End()

	subject := Classify(req.Prompt)
	tmpl := Resolve(subject)
	concept, object := Extract(req.Prompt, subject)

	span.SetAttributes(
		attribute.String("eduviz.subject", subject.String()),
		attribute.String("eduviz.primitive", tmpl.Primitive),
		attribute.Int("eduviz.prompt_len", len(req.Prompt)),
	)

	resp, err := Compose(tmpl, concept, object, subject)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "compose failed")
		return Generation{}, err
	}

	return Generation{
		Response:  resp,
		Primitive: tmpl.Primitive,
		Concept:   concept,
		Object:    object,
	}, nil
}
