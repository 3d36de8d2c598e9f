package shape

import "github.com/DashFlow-IO/ndarray/indexmode"

// SubToInd resolves a subscript vector to a buffer offset (spec §4.3's
// sub_to_ind). Each axis applies its own index mode, recycled modulo
// len(submodes) (submodes must be non-empty). Returns false if any axis
// resolves out of bounds under ErrorMode.
func SubToInd(s, strides []int, offset int, sub []int, submodes []indexmode.Mode) (int, bool) {
	addr := offset
	for i := range s {
		mode := submodes[i%len(submodes)]
		resolved, ok := indexmode.Resolve(sub[i], s[i]-1, mode)
		if !ok {
			return 0, false
		}
		addr += strides[i] * resolved
	}
	return addr, true
}

// axisOrderSlowestFirst returns axis indices ordered from slowest-varying
// to fastest-varying for the given declared order: row-major iterates
// axis 0 slowest (last axis fastest); column-major is the mirror image.
func axisOrderSlowestFirst(order Order, ndims int) []int {
	axes := make([]int, ndims)
	if order == ColumnMajor {
		for i := 0; i < ndims; i++ {
			axes[i] = ndims - 1 - i
		}
		return axes
	}
	for i := 0; i < ndims; i++ {
		axes[i] = i
	}
	return axes
}

// unravel decomposes a flat index into subscripts given a (possibly
// signed) per-axis step sequence, processing axes slowest-varying first.
// Negative steps are compensated per spec §4.3: subscript = shape[i]-1+quotient.
func unravel(s []int, steps []int, axes []int, idx int, out []int) {
	remaining := idx
	for _, i := range axes {
		step := steps[i]
		if step == 0 {
			out[i] = 0
			continue
		}
		q := remaining / step
		if step < 0 {
			out[i] = s[i] - 1 + q
		} else {
			out[i] = q
		}
		remaining -= step * out[i]
	}
}

// IndToSub decomposes a view-linear index into subscripts (spec §4.3's
// ind_to_sub). Per the specification's own glossary, a view-linear index
// is defined purely in terms of shape and declared order — independent of
// strides and offset — so this implementation resolves idx against
// Numel(s)-1 under mode and then unravels against the canonical
// (positive, order-consistent) element strides, regardless of offset.
// Strides and offset only enter when converting to a buffer address (see
// VindToBind). out must have length len(s); returns false if idx resolves
// out of bounds under ErrorMode.
func IndToSub(s []int, order Order, idx int, mode indexmode.Mode, out []int) bool {
	length := Numel(s)
	resolved, ok := indexmode.Resolve(idx, length-1, mode)
	if !ok {
		return false
	}
	if len(s) == 0 {
		return true
	}
	canonical := ShapeToStrides(s, order)
	axes := axisOrderSlowestFirst(order, len(s))
	unravel(s, canonical, axes, resolved, out)
	return true
}

// VindToBind converts a view-linear index directly to a buffer offset
// (spec §4.3's vind_to_bind), without materializing the intermediate
// subscript vector in the caller's view.
func VindToBind(s, strides []int, offset int, order Order, idx int, mode indexmode.Mode) (int, bool) {
	sub := make([]int, len(s))
	if !IndToSub(s, order, idx, mode, sub) {
		return 0, false
	}
	addr := offset
	for i := range s {
		addr += strides[i] * sub[i]
	}
	return addr, true
}

// BindToVind is the inverse of VindToBind: given a buffer-linear (byte or
// element, matching the unit of strides) index, it recovers subscripts
// using the actual signed strides — axes are processed in descending
// order of absolute stride so each division peels the correct axis first
// — then recomposes the view-linear index from those subscripts using the
// canonical order-consistent strides. Returns false if idx does not
// correspond to any legal subscript (a non-zero remainder after peeling
// every axis) or if the recomposed view-linear index resolves out of
// bounds under mode.
//
// remaining is measured from the view's minimum reachable address, so a
// negative stride maps its quotient q to subscript shape[i]-1+q, which
// keeps the recovery correct for mixed-sign strides.
func BindToVind(s, strides []int, offset int, order Order, idx int, mode indexmode.Mode) (int, bool) {
	ndims := len(s)
	if ndims == 0 {
		resolved, ok := indexmode.Resolve(0, 0, mode)
		return resolved, ok
	}
	axes := make([]int, ndims)
	for i := range axes {
		axes[i] = i
	}
	// Sort axes by descending |stride| (insertion sort: rank is small).
	for i := 1; i < ndims; i++ {
		for j := i; j > 0 && abs(strides[axes[j-1]]) < abs(strides[axes[j]]); j-- {
			axes[j-1], axes[j] = axes[j], axes[j-1]
		}
	}
	remaining := idx - offset
	for i, st := range strides {
		if st < 0 {
			remaining -= st * (s[i] - 1)
		}
	}
	sub := make([]int, ndims)
	for _, i := range axes {
		st := strides[i]
		if st == 0 {
			sub[i] = 0
			continue
		}
		q := remaining / st
		if st < 0 {
			sub[i] = s[i] - 1 + q
		} else {
			sub[i] = q
		}
		remaining -= st * q
	}
	if remaining != 0 {
		return 0, false
	}
	canonical := ShapeToStrides(s, order)
	vidx := 0
	for i := range s {
		vidx += canonical[i] * sub[i]
	}
	length := Numel(s)
	return indexmode.Resolve(vidx, length-1, mode)
}
