package generator

import (
	"strings"

	"github.com/yungbote/eduviz/internal/domain/content"
)

const conceptTailTokens = 3

const (
	objectModel         = "model"
	objectVisualization = "visualization"
)

// Extract derives the concept phrase and object label interpolated into a template.
//
// Prompts longer than three tokens yield their last three lower-cased tokens; shorter
// prompts are used verbatim, case and spacing included.
func Extract(prompt string, subject content.SubjectTag) (concept, object string) {
	tokens := strings.Fields(strings.ToLower(prompt))
	if len(tokens) > conceptTailTokens {
		concept = strings.Join(tokens[len(tokens)-conceptTailTokens:], " ")
	} else {
		concept = prompt
	}
	return concept, ObjectFor(subject)
}

func ObjectFor(subject content.SubjectTag) string {
	switch subject {
	case content.SubjectBiology, content.SubjectChemistry:
		return objectModel
	default:
		return objectVisualization
	}
}
