// Package assets resolves candidate photo references to displayable URLs.
package assets

import (
	"net/url"
	"strings"
)

// Resolver joins relative photo references onto a configured base URL.
type Resolver struct {
	base string
}

// NewResolver creates a Resolver. Trailing slashes on base are ignored.
func NewResolver(base string) Resolver {
	return Resolver{base: strings.TrimRight(strings.TrimSpace(base), "/")}
}

// Resolve returns the URL for a photo reference. Absolute references pass
// through unchanged and protocol-relative ones ("//host/x") take the
// base's scheme; relative ones have backslashes turned into slashes,
// duplicate slashes collapsed, and exactly one slash at the join.
// An empty reference resolves to "".
func (r Resolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if isAbsolute(ref) {
		return ref
	}
	if strings.HasPrefix(ref, "//") {
		return r.scheme() + ref
	}
	rel := collapseSlashes(strings.ReplaceAll(ref, `\`, "/"))
	rel = strings.TrimPrefix(rel, "./")
	rel = strings.TrimLeft(rel, "/")
	if r.base == "" {
		return "/" + rel
	}
	return r.base + "/" + rel
}

// scheme returns the base's "scheme:" prefix for protocol-relative refs.
func (r Resolver) scheme() string {
	if u, err := url.Parse(r.base); err == nil && u.Scheme != "" {
		return u.Scheme + ":"
	}
	return ""
}

func isAbsolute(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Scheme == "data")
}

func collapseSlashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSlash := false
	for _, r := range s {
		if r == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
