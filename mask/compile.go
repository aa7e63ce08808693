package mask

import (
	"errors"
	"strings"
)

const (
	openChar  = '['
	closeChar = ']'
)

// Mask is a compiled mask. It is immutable and safe for concurrent use.
type Mask struct {
	raw       string
	canonical string
	params    []Param
	variants  []*variantMatcher
}

// Compile parses a mask and returns a matcher for it. It returns a
// *MalformedMaskError when brackets are unbalanced or a validation
// expression does not compile.
func Compile(raw string) (*Mask, error) {
	canonical, err := canonicalCache.load(raw, canonicalize)
	if err != nil {
		return nil, withMask(err, raw)
	}

	params, err := declarationCache.load(canonical, parseDeclarations)
	if err != nil {
		return nil, withMask(err, raw)
	}

	variants, err := variantCache.load(raw, expandVariants)
	if err != nil {
		return nil, withMask(err, raw)
	}

	m := &Mask{
		raw:       raw,
		canonical: canonical,
		params:    params,
		variants:  make([]*variantMatcher, 0, len(variants)),
	}

	for _, v := range variants {
		vm, err := matcherCache.load(v, newVariantMatcher)
		if err != nil {
			return nil, withMask(err, raw)
		}
		m.variants = append(m.variants, vm)
	}

	return m, nil
}

// MustCompile is like Compile but panics if the mask cannot be compiled.
func MustCompile(raw string) *Mask {
	m, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the mask text as passed to Compile.
func (m *Mask) String() string {
	return m.raw
}

// Canonical returns the cleaned mask with every optional bracket removed.
func (m *Mask) Canonical() string {
	return m.canonical
}

// Params returns the parameter declarations in order.
func (m *Mask) Params() []Param {
	out := make([]Param, len(m.params))
	copy(out, m.params)
	return out
}

// Variants returns the concrete templates the mask expands to, in the order
// they are tried.
func (m *Mask) Variants() []string {
	out := make([]string, len(m.variants))
	for i, v := range m.variants {
		out[i] = v.template
	}
	return out
}

// canonicalize cleans raw and strips the optional brackets.
func canonicalize(raw string) (string, error) {
	s := CleanPath(raw)
	if !balanced(s) {
		return "", &MalformedMaskError{Mask: raw}
	}

	return strings.NewReplacer(string(openChar), "", string(closeChar), "").Replace(s), nil
}

// balanced reports whether every bracket in s has a counterpart.
func balanced(s string) bool {
	level := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case openChar:
			level++
		case closeChar:
			if level--; level < 0 {
				return false
			}
		}
	}
	return level == 0
}

// withMask returns a copy of a compile error that names the original mask.
func withMask(err error, raw string) error {
	var me *MalformedMaskError
	if errors.As(err, &me) {
		return &MalformedMaskError{Mask: raw, Param: me.Param, Err: me.Err}
	}
	return err
}
