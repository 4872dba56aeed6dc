package content

import "strings"

// SubjectTag is the closed set of subject areas a prompt can be classified into.
type SubjectTag string

const (
	SubjectDefault   SubjectTag = "default"
	SubjectPhysics   SubjectTag = "physics"
	SubjectBiology   SubjectTag = "biology"
	SubjectChemistry SubjectTag = "chemistry"
	SubjectMath      SubjectTag = "math"
)

// ScanOrder is the classifier priority. Earlier subjects win ties.
// SubjectDefault is excluded; it is the fallback.
var ScanOrder = [...]SubjectTag{
	SubjectPhysics,
	SubjectBiology,
	SubjectChemistry,
	SubjectMath,
}

func (s SubjectTag) String() string { return string(s) }

func (s SubjectTag) Valid() bool {
	switch s {
	case SubjectDefault, SubjectPhysics, SubjectBiology, SubjectChemistry, SubjectMath:
		return true
	default:
		return false
	}
}

// ParseSubject normalizes a label; unknown labels map to SubjectDefault.
func ParseSubject(raw string) (SubjectTag, bool) {
	s := SubjectTag(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return SubjectDefault, false
	}
	return s, true
}

// AllSubjects lists every tag, scan order first and the fallback last.
func AllSubjects() []SubjectTag {
	out := make([]SubjectTag, 0, len(ScanOrder)+1)
	out = append(out, ScanOrder[:]...)
	return append(out, SubjectDefault)
}
