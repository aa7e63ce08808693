package mask

import (
	"regexp"
	"strings"
)

// placeholder matches any <...> token for substitution. It is looser than
// paramToken so names such as "vegetable-name" can still be filled in.
var placeholder = regexp.MustCompile(`<([^<>=\s]+)[^<>]*>`)

// Reconstruct substitutes params into the canonical mask and returns the
// resulting path. No defaults or validation are applied; a parameter missing
// from params produces an empty segment.
func (m *Mask) Reconstruct(params map[string]string) string {
	return substitute(m.canonical, params)
}

// Reconstruct compiles raw and substitutes params into it.
func Reconstruct(raw string, params map[string]string) (string, error) {
	m, err := Compile(raw)
	if err != nil {
		return "", err
	}
	return m.Reconstruct(params), nil
}

func substitute(tpl string, params map[string]string) string {
	locs := placeholder.FindAllStringSubmatchIndex(tpl, -1)
	if len(locs) == 0 {
		return tpl
	}

	var (
		sb  strings.Builder
		end int
	)
	for _, loc := range locs {
		sb.WriteString(tpl[end:loc[0]])
		sb.WriteString(params[tpl[loc[2]:loc[3]]])
		end = loc[1]
	}
	sb.WriteString(tpl[end:])

	return sb.String()
}
