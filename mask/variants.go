package mask

import "strings"

// segment is the byte range of a top-level optional segment, brackets
// included: s[open:close] is "[...]".
type segment struct {
	open, close int
}

// optionalSegments returns the top-level optional segments of s. Nested
// brackets are left inside their enclosing segment.
func optionalSegments(s string) ([]segment, bool) {
	var (
		segs []segment
		open = -1
		skip int
	)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case openChar:
			if open < 0 {
				open = i
			} else {
				skip++
			}
		case closeChar:
			if open < 0 {
				return nil, false
			}
			if skip > 0 {
				skip--
				continue
			}
			segs = append(segs, segment{open: open, close: i + 1})
			open = -1
		}
	}

	if open >= 0 {
		return nil, false
	}

	return segs, true
}

// expandVariants returns every concrete template a mask expands to.
//
// For n top-level optional segments, one candidate is built per index pair
// 0 <= i <= j <= n keeping segments i..j-1 and dropping the others. Only
// contiguous runs of segments are kept together. Each candidate is expanded
// again until no brackets remain; the result is de-duplicated in first-seen
// order.
func expandVariants(raw string) ([]string, error) {
	s := CleanPath(raw)

	segs, ok := optionalSegments(s)
	if !ok {
		return nil, &MalformedMaskError{Mask: raw}
	}
	if len(segs) == 0 {
		return []string{s}, nil
	}

	base := make([]string, 0, len(segs)+1)
	optional := make([]string, 0, len(segs))
	end := 0
	for _, seg := range segs {
		base = append(base, s[end:seg.open])
		optional = append(optional, s[seg.open+1:seg.close-1])
		end = seg.close
	}
	base = append(base, s[end:])

	var (
		result []string
		seen   = make(map[string]struct{})
		sb     strings.Builder
	)

	for i := 0; i <= len(optional); i++ {
		for j := i; j <= len(optional); j++ {
			sb.Reset()
			for k, b := range base {
				sb.WriteString(b)
				if k >= i && k < j {
					sb.WriteString(optional[k])
				}
			}

			expanded, err := variantCache.load(sb.String(), expandVariants)
			if err != nil {
				return nil, err
			}

			for _, v := range expanded {
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				result = append(result, v)
			}
		}
	}

	return result, nil
}
