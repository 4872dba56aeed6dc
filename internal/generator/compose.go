package generator

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/yungbote/eduviz/internal/domain/content"
)

// ErrMalformedTemplate marks a pattern whose slots do not line up with the values supplied.
var ErrMalformedTemplate = errors.New("malformed template")

// Compose fills the template and attaches the fixed parameter block.
func Compose(t Template, concept, object string, subject content.SubjectTag) (content.GeneratedResponse, error) {
	text, err := fill(t.Pattern, map[string]string{
		SlotObject:  object,
		SlotConcept: concept,
	})
	if err != nil {
		return content.GeneratedResponse{}, errors.Wrapf(err, "compose %s", subject)
	}
	return content.GeneratedResponse{
		GeneratedText: text,
		AnimationType: t.Animation,
		Subject:       subject,
		Parameters:    content.DefaultParameters(),
	}, nil
}

// fill replaces {name} placeholders. Every placeholder needs a value and every value
// must be used; braces not enclosing an identifier are copied through.
func fill(pattern string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern))
	used := make(map[string]bool, len(values))

	for i := 0; i < len(pattern); {
		if pattern[i] != '{' {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		end := strings.IndexByte(pattern[i+1:], '}')
		if end < 0 || !isSlotName(pattern[i+1:i+1+end]) {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		name := pattern[i+1 : i+1+end]
		v, ok := values[name]
		if !ok {
			return "", errors.WithHint(
				errors.Wrapf(ErrMalformedTemplate, "no value for slot %q", name),
				"remove the slot from the pattern or supply a value for it",
			)
		}
		b.WriteString(v)
		used[name] = true
		i += end + 2
	}

	for name := range values {
		if !used[name] {
			return "", errors.WithHint(
				errors.Wrapf(ErrMalformedTemplate, "slot %q missing from pattern %q", name, pattern),
				"every template pattern must reference {object} and {concept}",
			)
		}
	}
	return b.String(), nil
}

// checkPattern validates a pattern against the slot names it must reference.
func checkPattern(pattern string, slots ...string) error {
	probe := make(map[string]string, len(slots))
	for _, s := range slots {
		probe[s] = ""
	}
	_, err := fill(pattern, probe)
	return err
}

func isSlotName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && c != '_' && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	return true
}
