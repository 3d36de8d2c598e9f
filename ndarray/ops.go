package ndarray

import (
	"fmt"

	"github.com/DashFlow-IO/ndarray/dtype"
	"github.com/DashFlow-IO/ndarray/shape"
)

// BroadcastShapes resolves the NumPy-style right-aligned broadcast shape
// of the given shapes (spec §5's broadcast_shapes), surfacing failure as
// ErrBroadcastFailure rather than the bare bool shape.BroadcastShapes
// returns, to match this package's error-sentinel convention (spec §7).
func BroadcastShapes(shapes ...[]int) ([]int, error) {
	out, ok := shape.BroadcastShapes(shapes...)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrBroadcastFailure, shapes)
	}
	return out, nil
}

// ViewAs returns a new descriptor over the same buffer, shape, strides,
// and offset as a, reinterpreted under dt, after checking that casting
// a.Dtype() to dt is permitted under mode via dtype.IsAllowedCast.
// Reusing New means the returned descriptor's flags and byte length are
// recomputed for dt's byte width, so ViewAs also rejects (via
// ErrIncompatibleBuffer) a reinterpretation the original buffer no longer
// fits.
func (a *Array) ViewAs(dt dtype.Type, mode dtype.CastingMode) (*Array, error) {
	if !dtype.IsAllowedCast(a.dt, dt, mode) {
		return nil, fmt.Errorf("%w: %v -> %v under %v", ErrCastNotAllowed, a.dt, dt, mode)
	}
	return New(dt, a.data, a.shapeVal, a.strides, a.offset, a.order, a.imode, a.submodes)
}
