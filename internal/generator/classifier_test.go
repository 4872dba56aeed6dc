package generator

import (
	"strings"
	"testing"

	"github.com/yungbote/eduviz/internal/domain/content"
)

func TestClassifyEveryKeywordSelectsItsSubject(t *testing.T) {
	for _, tag := range content.ScanOrder {
		for _, kw := range keywordTable[tag] {
			if got := Classify("explore " + kw + " today"); got != tag {
				t.Fatalf("Classify(%q)=%s want %s", kw, got, tag)
			}
			if got := Classify(strings.ToUpper(kw)); got != tag {
				t.Fatalf("Classify(upper %q)=%s want %s", kw, got, tag)
			}
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	cases := []struct {
		prompt string
		want   content.SubjectTag
	}{
		{"the gravity inside a cell", content.SubjectPhysics},
		{"cell reaction kinetics", content.SubjectBiology},
		{"equation of a molecule", content.SubjectChemistry},
		{"graph the velocity", content.SubjectPhysics},
		{"solve this equation", content.SubjectMath},
		{"DNA and atoms in motion", content.SubjectPhysics},
	}
	for _, tc := range cases {
		if got := Classify(tc.prompt); got != tc.want {
			t.Fatalf("Classify(%q)=%s want %s", tc.prompt, got, tc.want)
		}
	}
}

func TestClassifyFallsBackToDefault(t *testing.T) {
	for _, p := range []string{"", "   ", "hello world", "tell me a story", "\x00\xff"} {
		if got := Classify(p); got != content.SubjectDefault {
			t.Fatalf("Classify(%q)=%s want default", p, got)
		}
	}
}

func TestClassifyIsSubstringMatch(t *testing.T) {
	// "forces" contains "force".
	if got := Classify("balanced forces"); got != content.SubjectPhysics {
		t.Fatalf("got %s", got)
	}
}

func TestResolveCoversEverySubject(t *testing.T) {
	for _, tag := range content.AllSubjects() {
		tmpl := Resolve(tag)
		if tmpl.Subject != tag {
			t.Fatalf("Resolve(%s).Subject=%s", tag, tmpl.Subject)
		}
		if tmpl.Primitive != PrimitiveCube && tmpl.Primitive != PrimitiveSphere {
			t.Fatalf("Resolve(%s) primitive %q", tag, tmpl.Primitive)
		}
	}
	if got := Resolve(content.SubjectTag("astronomy")); got.Subject != content.SubjectDefault {
		t.Fatalf("unknown tag resolved to %s", got.Subject)
	}
}

func TestValidateTables(t *testing.T) {
	if err := validateTables(); err != nil {
		t.Fatalf("validateTables: %v", err)
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kws := Keywords(content.SubjectPhysics)
	kws[0] = "mutated"
	if keywordTable[content.SubjectPhysics][0] == "mutated" {
		t.Fatalf("Keywords leaked the backing table")
	}
	if n := len(Keywords(content.SubjectDefault)); n != 0 {
		t.Fatalf("default keywords=%d", n)
	}
}
