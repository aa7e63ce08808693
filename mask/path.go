package mask

// CleanPath removes a single leading and a single trailing "/" from s.
// Masks and request paths are both cleaned this way before they meet, so
// "/foo/", "foo/", "/foo" and "foo" are equivalent.
func CleanPath(s string) string {
	if len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
