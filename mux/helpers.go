package mux

import (
	"fmt"
	"strings"

	"github.com/vitalvas/maskroute/mask"
)

// checkPairs returns an error if the list of key/value pairs has odd length.
func checkPairs(pairs ...string) (int, error) {
	if len(pairs)%2 != 0 {
		return 0, fmt.Errorf("mux: number of parameters must be multiple of 2, got %v", pairs)
	}
	return len(pairs) / 2, nil
}

// mapFromPairsToString converts variadic string parameters to a string map.
func mapFromPairsToString(pairs ...string) (map[string]string, error) {
	length, err := checkPairs(pairs...)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, length)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m, nil
}

// TrimPrefix returns a pathname hook for a router mounted under prefix.
// "/my-root/product/detail" becomes "/product/detail"; paths outside the
// prefix are returned unchanged.
func TrimPrefix(prefix string) func(string) string {
	prefix = "/" + mask.CleanPath(prefix)

	return func(p string) string {
		if prefix == "/" {
			return p
		}
		if p == prefix {
			return "/"
		}
		if strings.HasPrefix(p, prefix+"/") {
			return p[len(prefix):]
		}
		return p
	}
}

// pathname applies the hook, if any, to the request path.
func pathname(transform func(string) string, p string) string {
	if transform != nil {
		p = transform(p)
	}
	return mask.CleanPath(p)
}
