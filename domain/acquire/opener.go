package acquire

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// candidate is one (source, API, label) open attempt.
type candidate struct {
	src   Source
	api   API
	label string
}

// buildCandidates returns the ordered open attempts for src. Integer sources
// get a /dev/video<N> path fallback for backends that refuse bare indices.
func buildCandidates(src Source) []candidate {
	cands := []candidate{{src: src, api: APIAny, label: "default"}}
	if src.IsIndex {
		cands = append(cands, candidate{
			src:   PathSource(fmt.Sprintf("%s%d", devPathPrefix, src.Index)),
			api:   APIAny,
			label: "dev-path",
		})
	}
	return cands
}

// OpenCapture tries each candidate in order and returns the first handle
// that reports itself open. Ownership of the returned handle transfers to
// the caller; handles that were created but never opened are closed here.
func OpenCapture(b Backend, src Source, logger *slog.Logger) (Handle, error) {
	h, tried := openCandidates(b, buildCandidates(src), logger)
	if h != nil {
		return h, nil
	}
	return nil, &OpenError{Source: src, Tried: tried, Hint: openHint(src)}
}

// openCandidates attempts each candidate once, de-duplicated by
// (source kind, source representation, API). It returns the first open
// handle and the labels attempted up to that point.
func openCandidates(b Backend, cands []candidate, logger *slog.Logger) (Handle, []string) {
	type dedupeKey struct {
		isIndex bool
		repr    string
		api     API
	}
	seen := make(map[dedupeKey]bool)
	var tried []string

	for _, c := range cands {
		k := dedupeKey{isIndex: c.src.IsIndex, repr: c.src.String(), api: c.api}
		if seen[k] {
			continue
		}
		seen[k] = true
		tried = append(tried, c.label)

		h, err := b.Open(c.src, c.api)
		if h == nil {
			if err != nil {
				logger.Debug("open candidate failed",
					slog.String("label", c.label), slog.String("err", err.Error()))
			}
			continue
		}
		if h.IsOpened() {
			return h, tried
		}
		_ = h.Close()
	}
	return nil, tried
}

// openHint diagnoses a failed device-path source. Best-effort only: a
// filesystem probe failure just yields an empty hint.
func openHint(src Source) string {
	if src.IsIndex || !strings.HasPrefix(src.Path, devPathPrefix) {
		return ""
	}
	if _, err := os.Stat(src.Path); err != nil {
		return "Device path does not exist."
	}
	if !canAccessDevice(src.Path) {
		return "Permission denied for camera device."
	}
	return ""
}
