package datamodel

import "strings"

// Data-model paths address nodes in a surface's model in slash form:
// "/user/name", "/items/0/label". The root is the empty path. Dotted
// input ("user.name") is accepted for agent convenience and
// canonicalized; map keys containing literal dots are therefore not
// addressable in dotted form.

// NormalizePath canonicalizes a path: dotted form becomes slash form,
// empty segments collapse, and the root is "".
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	if !strings.Contains(path, "/") {
		path = strings.ReplaceAll(path, ".", "/")
	}

	segs := splitNonEmpty(path)
	if len(segs) == 0 {
		return ""
	}
	return "/" + strings.Join(segs, "/")
}

// Split returns a path's segments. The root path has none.
func Split(path string) []string {
	p := NormalizePath(path)
	if p == "" {
		return nil
	}
	return strings.Split(p[1:], "/")
}

func splitNonEmpty(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
