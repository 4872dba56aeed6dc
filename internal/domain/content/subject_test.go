package content

import "testing"

func TestParseSubject(t *testing.T) {
	cases := []struct {
		in   string
		want SubjectTag
		ok   bool
	}{
		{"physics", SubjectPhysics, true},
		{"  Biology ", SubjectBiology, true},
		{"MATH", SubjectMath, true},
		{"default", SubjectDefault, true},
		{"astronomy", SubjectDefault, false},
		{"", SubjectDefault, false},
	}
	for _, tc := range cases {
		got, ok := ParseSubject(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseSubject(%q)=(%s,%v) want (%s,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAllSubjectsEndsWithDefault(t *testing.T) {
	all := AllSubjects()
	if len(all) != 5 {
		t.Fatalf("len=%d", len(all))
	}
	if all[0] != SubjectPhysics || all[len(all)-1] != SubjectDefault {
		t.Fatalf("order=%v", all)
	}
	for _, s := range all {
		if !s.Valid() {
			t.Fatalf("%q not valid", s)
		}
	}
}
