package generator

import "github.com/yungbote/eduviz/internal/domain/content"

type SubjectInfo struct {
	Subject   content.SubjectTag `json:"subject" yaml:"subject"`
	Keywords  []string           `json:"keywords" yaml:"keywords"`
	Pattern   string             `json:"pattern" yaml:"pattern"`
	Primitive string             `json:"primitive_type" yaml:"primitive_type"`
	Animation string             `json:"animation_type" yaml:"animation_type"`
}

// Subjects describes every subject in classifier order, fallback last.
func Subjects() []SubjectInfo {
	tags := content.AllSubjects()
	out := make([]SubjectInfo, 0, len(tags))
	for _, tag := range tags {
		t := Resolve(tag)
		out = append(out, SubjectInfo{
			Subject:   tag,
			Keywords:  Keywords(tag),
			Pattern:   t.Pattern,
			Primitive: t.Primitive,
			Animation: t.Animation,
		})
	}
	return out
}
