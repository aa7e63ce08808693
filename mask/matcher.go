package mask

import (
	"regexp"
	"strings"
)

// variantMatcher is the compiled form of one variant.
type variantMatcher struct {
	template string
	re       *regexp.Regexp
	// names holds the parameter name of each capturing group, in order.
	names []string
}

// newVariantMatcher compiles a bracket-free template into an anchored regexp
// in which every parameter token became a capturing group.
func newVariantMatcher(template string) (*variantMatcher, error) {
	tokens := scanTokens(template)

	var (
		pattern strings.Builder
		names   = make([]string, 0, len(tokens))
		end     int
	)

	pattern.WriteByte('^')
	for _, t := range tokens {
		pattern.WriteString(regexp.QuoteMeta(template[end:t.start]))
		pattern.WriteString("(" + valueClass + ")")
		names = append(names, t.name)
		end = t.end
	}
	pattern.WriteString(regexp.QuoteMeta(template[end:]))
	pattern.WriteByte('$')

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, err
	}

	return &variantMatcher{
		template: template,
		re:       re,
		names:    names,
	}, nil
}

// captures returns the raw values captured from path, or nil when the
// literal structure of the variant does not match.
func (v *variantMatcher) captures(path string) map[string]string {
	matches := v.re.FindStringSubmatch(path)
	if matches == nil {
		return nil
	}

	vars := make(map[string]string, len(v.names))
	for i, name := range v.names {
		if i+1 < len(matches) && matches[i+1] != "" {
			vars[name] = matches[i+1]
		}
	}
	return vars
}

// Value is a parameter resolved against a request path.
type Value struct {
	Name  string
	Order int
	// Value is the captured text or the default.
	Value string
	// Present is false when neither a capture nor a default exists.
	Present bool
	// Valid reports whether Value satisfies the declared expression.
	Valid bool
}

// Binding holds the resolved parameters of one match attempt, in
// declaration order.
type Binding []Value

// Valid reports whether every parameter is valid.
func (b Binding) Valid() bool {
	for _, v := range b {
		if !v.Valid {
			return false
		}
	}
	return true
}

// Get returns the value resolved for name.
func (b Binding) Get(name string) (Value, bool) {
	for _, v := range b {
		if v.Name == name {
			return v, true
		}
	}
	return Value{}, false
}

// Params returns the present values keyed by parameter name.
func (b Binding) Params() map[string]string {
	params := make(map[string]string, len(b))
	for _, v := range b {
		if v.Present {
			params[v.Name] = v.Value
		}
	}
	return params
}

// Match reports whether path matches any variant of the mask with every
// parameter valid.
func (m *Mask) Match(path string) bool {
	_, _, ok := m.find(CleanPath(path))
	return ok
}

// Resolve returns the first variant accepting path.
func (m *Mask) Resolve(path string) (string, bool) {
	v, _, ok := m.find(CleanPath(path))
	if !ok {
		return "", false
	}
	return v.template, true
}

// Bind returns the parameters of the first variant accepting path.
func (m *Mask) Bind(path string) (Binding, bool) {
	_, b, ok := m.find(CleanPath(path))
	return b, ok
}

// find tries the variants in order and returns the first one whose literal
// structure matches and whose parameters all validate.
func (m *Mask) find(path string) (*variantMatcher, Binding, bool) {
	for _, v := range m.variants {
		vars := v.captures(path)
		if vars == nil {
			continue
		}

		b := m.bind(vars)
		if b.Valid() {
			return v, b, true
		}
	}
	return nil, nil, false
}

// bind resolves every declared parameter from the captures of a variant.
func (m *Mask) bind(vars map[string]string) Binding {
	b := make(Binding, len(m.params))
	for i, p := range m.params {
		val := Value{Name: p.Name, Order: p.Order}

		if s, ok := vars[p.Name]; ok {
			val.Value, val.Present = s, true
		} else if p.HasDefault {
			val.Value, val.Present = p.Default, true
		}

		val.Valid = p.Expr == nil || (val.Present && p.Expr.MatchString(val.Value))
		b[i] = val
	}
	return b
}
