package generator

import (
	"fmt"
	"strings"

	"github.com/yungbote/eduviz/internal/domain/content"
)

// Interpolation slots every template pattern must contain exactly.
const (
	SlotObject  = "object"
	SlotConcept = "concept"
)

// Primitive labels understood by the mesh service.
const (
	PrimitiveCube   = "cube"
	PrimitiveSphere = "sphere"
)

type Template struct {
	Subject   content.SubjectTag
	Pattern   string
	Primitive string
	Animation string
}

var (
	physicsTemplate = Template{
		Subject:   content.SubjectPhysics,
		Pattern:   "The {object} shows how {concept} works in physics.",
		Primitive: PrimitiveSphere,
		Animation: "physics",
	}
	biologyTemplate = Template{
		Subject:   content.SubjectBiology,
		Pattern:   "This 3D {object} illustrates {concept} in biology.",
		Primitive: PrimitiveSphere,
		Animation: "scale",
	}
	chemistryTemplate = Template{
		Subject:   content.SubjectChemistry,
		Pattern:   "The {object} represents {concept} in chemical reactions.",
		Primitive: PrimitiveSphere,
		Animation: "orbit",
	}
	mathTemplate = Template{
		Subject:   content.SubjectMath,
		Pattern:   "This {object} helps visualize {concept} in mathematics.",
		Primitive: PrimitiveCube,
		Animation: "transform",
	}
	defaultTemplate = Template{
		Subject:   content.SubjectDefault,
		Pattern:   "This is an interactive {object} that demonstrates {concept}.",
		Primitive: PrimitiveCube,
		Animation: "rotate",
	}
)

// keywordTable holds lower-case trigger words matched as substrings of the lower-cased prompt.
var keywordTable = map[content.SubjectTag][]string{
	content.SubjectPhysics: {
		"physics", "force", "motion", "gravity", "energy", "velocity",
		"acceleration", "momentum", "friction", "wave", "pendulum",
	},
	content.SubjectBiology: {
		"biology", "cell", "dna", "organism", "photosynthesis", "evolution",
		"genetic", "protein", "ecosystem", "anatomy", "mitosis",
	},
	content.SubjectChemistry: {
		"chemistry", "chemical", "atom", "molecule", "reaction", "bond",
		"compound", "electron", "periodic", "acid",
	},
	content.SubjectMath: {
		"math", "equation", "function", "graph", "geometry", "algebra",
		"calculus", "triangle", "vector", "fraction",
	},
}

// Resolve returns the template for a subject. Unknown tags get the default template.
func Resolve(tag content.SubjectTag) Template {
	switch tag {
	case content.SubjectPhysics:
		return physicsTemplate
	case content.SubjectBiology:
		return biologyTemplate
	case content.SubjectChemistry:
		return chemistryTemplate
	case content.SubjectMath:
		return mathTemplate
	default:
		return defaultTemplate
	}
}

// Keywords returns a copy of the trigger words for a subject.
func Keywords(tag content.SubjectTag) []string {
	kws := keywordTable[tag]
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

func init() {
	if err := validateTables(); err != nil {
		panic(err)
	}
}

func validateTables() error {
	for _, tag := range content.AllSubjects() {
		t := Resolve(tag)
		if t.Subject != tag {
			return fmt.Errorf("generator: no template for subject %q", tag)
		}
		if err := checkPattern(t.Pattern, SlotObject, SlotConcept); err != nil {
			return fmt.Errorf("generator: subject %q: %w", tag, err)
		}
		if t.Primitive == "" || t.Animation == "" {
			return fmt.Errorf("generator: subject %q missing primitive or animation", tag)
		}
	}
	for _, tag := range content.ScanOrder {
		kws := keywordTable[tag]
		if len(kws) == 0 {
			return fmt.Errorf("generator: subject %q has no keywords", tag)
		}
		for _, kw := range kws {
			if kw == "" || kw != strings.ToLower(kw) {
				return fmt.Errorf("generator: subject %q has invalid keyword %q", tag, kw)
			}
		}
	}
	return nil
}
