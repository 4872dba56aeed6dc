package generator

import (
	"strings"

	"github.com/yungbote/eduviz/internal/domain/content"
)

// Classify maps a prompt onto a subject by keyword membership. The first subject in
// content.ScanOrder with any keyword present wins; no match yields SubjectDefault.
func Classify(prompt string) content.SubjectTag {
	lower := strings.ToLower(prompt)
	if lower == "" {
		return content.SubjectDefault
	}
	for _, tag := range content.ScanOrder {
		for _, kw := range keywordTable[tag] {
			if strings.Contains(lower, kw) {
				return tag
			}
		}
	}
	return content.SubjectDefault
}
