// Package mask compiles path masks into matchers.
//
// A mask is a path template with optional segments and typed parameters:
//
//	product[/detail]
//	[product[/detail]]
//	product/<id>
//	page/<id=123 \d+>
//	[<presenter=homepage>[/<action=default>]]
//
// # Optional Segments
//
// Text enclosed in "[" and "]" may be left out of a matching path. Segments
// nest. A mask expands into a list of variants, each a concrete template
// without brackets:
//
//	m := mask.MustCompile("[foo[/bar]]")
//	m.Variants() // ["", "foo", "foo/bar"]
//
// Sibling segments are kept in contiguous runs only: for "[a][b][c]" the
// variant "ac" is not produced.
//
// # Parameters
//
// A parameter is written as <name>, <name=default>, <name expression> or
// <name=default expression>. Names match [a-z][A-Za-z0-9]*. Values are
// captured with the class [A-Za-z0-9_~:.=+-]+. A parameter not captured by
// the matched variant falls back to its default. When an expression is
// given, the resolved value must match it (unanchored) or the variant is
// rejected. Expressions cannot contain "[", "]" or ">":
//
//	m := mask.MustCompile("<presenter>[/<action>]")
//	b, ok := m.Bind("homepage")
//	b.Params() // map[presenter:homepage]
//
// # Paths
//
// One leading and one trailing "/" are ignored in masks and paths alike,
// see CleanPath.
//
// # Reverse Routing
//
// Reconstruct fills parameter values into the mask with the brackets
// removed:
//
//	mask.MustCompile("<controller>/<action>/<id>").Reconstruct(map[string]string{
//	    "controller": "product", "action": "detail", "id": "abc123",
//	}) // "product/detail/abc123"
//
// # Caching
//
// Canonical masks, variant lists, declaration tables and variant regexps are
// cached process-wide by their exact text. Compiled masks are immutable and
// safe for concurrent use.
package mask
