package mask

import (
	"regexp"
	"strings"
)

// paramToken matches a parameter token: <name>, <name=default>,
// <name expression> and <name=default expression>.
var paramToken = regexp.MustCompile(`<(?P<name>[a-z][A-Za-z0-9]*)(?:=(?P<default>.+?))?\s*(?:\s+(?P<expr>.+?))?>`)

var (
	tokenName    = paramToken.SubexpIndex("name")
	tokenDefault = paramToken.SubexpIndex("default")
	tokenExpr    = paramToken.SubexpIndex("expr")
)

// valueClass is the character class a parameter value is captured with.
const valueClass = `[A-Za-z0-9_~:.=+\-]+`

// Param is a parameter declared in a mask.
type Param struct {
	// Name is the parameter name.
	Name string
	// Order is the 1-based position of the first occurrence of Name.
	Order int
	// Default is used when a matched variant does not capture the parameter.
	Default string
	// HasDefault is false when no default was given or it was blank.
	HasDefault bool
	// Expr validates the resolved value; nil means any value is valid.
	Expr *regexp.Regexp
}

// token is one parameter token located in a template.
type token struct {
	start, end int
	name       string
	def        string
	expr       string
	hasExpr    bool
}

// scanTokens returns the parameter tokens of tpl from left to right.
func scanTokens(tpl string) []token {
	locs := paramToken.FindAllStringSubmatchIndex(tpl, -1)
	if len(locs) == 0 {
		return nil
	}

	tokens := make([]token, 0, len(locs))
	for _, loc := range locs {
		t := token{
			start: loc[0],
			end:   loc[1],
			name:  tpl[loc[2*tokenName]:loc[2*tokenName+1]],
		}
		if loc[2*tokenDefault] >= 0 {
			t.def = strings.TrimSpace(tpl[loc[2*tokenDefault]:loc[2*tokenDefault+1]])
		}
		if loc[2*tokenExpr] >= 0 {
			t.expr = tpl[loc[2*tokenExpr]:loc[2*tokenExpr+1]]
			t.hasExpr = true
		}
		tokens = append(tokens, t)
	}

	return tokens
}

// parseDeclarations builds the declaration table of a canonical mask.
// A repeated name keeps the order of its first occurrence; its default and
// expression are taken from the last occurrence.
func parseDeclarations(canonical string) ([]Param, error) {
	tokens := scanTokens(canonical)
	params := make([]Param, 0, len(tokens))
	index := make(map[string]int, len(tokens))

	for _, t := range tokens {
		p := Param{
			Name:       t.name,
			Default:    t.def,
			HasDefault: t.def != "",
		}

		if t.hasExpr {
			re, err := regexp.Compile(t.expr)
			if err != nil {
				return nil, &MalformedMaskError{Mask: canonical, Param: t.name, Err: err}
			}
			p.Expr = re
		}

		if i, ok := index[t.name]; ok {
			p.Order = params[i].Order
			params[i] = p
			continue
		}

		p.Order = len(params) + 1
		index[t.name] = len(params)
		params = append(params, p)
	}

	return params, nil
}
