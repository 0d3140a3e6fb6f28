package acquire

import (
	"strconv"
	"strings"
)

// devPathPrefix is the Linux video device prefix understood by the index
// fallback: "/dev/video3" and index 3 address the same device.
const devPathPrefix = "/dev/video"

// Source is a normalized capture source: either a numeric device index or a
// raw path/URL passed through to the backend untouched.
type Source struct {
	Index   int
	Path    string
	IsIndex bool
}

// IndexSource returns a Source addressing a device by numeric index.
func IndexSource(i int) Source { return Source{Index: i, IsIndex: true} }

// PathSource returns a Source addressing a device by path or URL.
func PathSource(p string) Source { return Source{Path: p} }

// Normalize maps a user-supplied source string to its canonical Source.
// "/dev/video<digits>" and pure-digit strings become indices; anything else
// passes through unchanged. Normalization is total and idempotent.
func Normalize(raw string) Source {
	s := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(s, devPathPrefix); ok && isDigits(rest) {
		if n, err := strconv.Atoi(rest); err == nil {
			return IndexSource(n)
		}
	}
	if isDigits(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return IndexSource(n)
		}
	}
	return PathSource(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String renders the source the way the backend will see it.
func (s Source) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Path
}

// Value returns the backend-facing open argument: int for indices, string
// for everything else.
func (s Source) Value() any {
	if s.IsIndex {
		return s.Index
	}
	return s.Path
}
