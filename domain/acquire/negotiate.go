package acquire

import (
	"log/slog"
	"math"
)

// matchTolerance is the absolute slack allowed between a requested value and
// the driver readback before a mismatch warning is emitted. FourCC codes are
// compared exactly.
const matchTolerance = 0.5

// Parameter is one preferred capture setting applied during negotiation.
type Parameter struct {
	Prop  Property
	Value float64

	// FourCC holds the four-character codec code for PropFourCC; it is
	// encoded through the handle at apply time.
	FourCC string
}

// DefaultParameters returns the preferred capture settings in application
// order: width, height, frame rate, then pixel format.
func DefaultParameters(width, height, fps int, fourCC string) []Parameter {
	return []Parameter{
		{Prop: PropFrameWidth, Value: float64(width)},
		{Prop: PropFrameHeight, Value: float64(height)},
		{Prop: PropFrameRate, Value: float64(fps)},
		{Prop: PropFourCC, FourCC: fourCC},
	}
}

// ApplyParameters applies each preferred setting in order. Parameters the
// backend does not expose are skipped; settings the driver rejects are
// verified by readback and produce at most one warning each. Negotiation
// never fails the acquisition.
func ApplyParameters(b Backend, h Handle, params []Parameter, logger *slog.Logger) {
	for _, p := range params {
		if !b.Supports(p.Prop) {
			continue
		}
		desired := p.Value
		if p.Prop == PropFourCC {
			code, ok := h.EncodeFourCC(p.FourCC)
			if !ok {
				continue
			}
			desired = code
		}
		applyParameter(h, p.Prop, desired, logger)
	}
}

func applyParameter(h Handle, prop Property, desired float64, logger *slog.Logger) {
	if h.Set(prop, desired) {
		return
	}

	actual, ok := h.Get(prop)
	if ok && matches(prop, desired, actual) {
		return
	}

	attrs := []any{
		slog.String("parameter", prop.String()),
		slog.Float64("desired", desired),
	}
	if ok {
		attrs = append(attrs, slog.Float64("actual", actual))
	}
	logger.Warn("capture setting ignored by driver", attrs...)
}

func matches(prop Property, desired, actual float64) bool {
	if prop == PropFourCC {
		return int64(actual) == int64(desired)
	}
	return math.Abs(actual-desired) <= matchTolerance
}
