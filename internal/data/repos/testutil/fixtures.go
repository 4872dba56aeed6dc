package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/eduviz/internal/domain/content"
)

func SeedAnimation(tb testing.TB, ctx context.Context, tx *gorm.DB, prompt string, subject content.SubjectTag) *content.Animation {
	tb.Helper()
	a := &content.Animation{
		ID:            uuid.New(),
		Prompt:        prompt,
		Subject:       subject.String(),
		AnimationType: "rotate",
		PrimitiveType: "cube",
		GeneratedText: "seeded",
		Parameters:    datatypes.JSON([]byte(`{"interactive":true,"complexity":"medium","duration":5}`)),
		Context:       datatypes.JSON([]byte("{}")),
		Objects:       datatypes.JSON([]byte("[]")),
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed animation: %v", err)
	}
	return a
}
