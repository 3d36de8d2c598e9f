// Package ndarray implements the array descriptor: the record that maps
// logical multi-dimensional coordinates to byte offsets in a caller-owned
// flat buffer, together with its constructor, flag bit-mask, and typed
// element accessors (spec §2.5, §3, §4.4).
//
// The buffer is modeled as an owned-by-caller []byte plus unaligned typed
// reads/writes through unsafe.Pointer, rather than an any-boxed typed
// slice — see SPEC_FULL.md §6 and DESIGN.md for why this departs from the
// teacher's eager_tensor.Tensor representation.
package ndarray

import (
	"fmt"

	"github.com/DashFlow-IO/ndarray/dtype"
	"github.com/DashFlow-IO/ndarray/indexmode"
	"github.com/DashFlow-IO/ndarray/shape"
)

// Order re-exports shape.Order for callers who only need the two legal
// descriptor order values (RowMajor, ColumnMajor).
type Order = shape.Order

const (
	RowMajor    = shape.RowMajor
	ColumnMajor = shape.ColumnMajor
)

// Array is the ndarray record of spec §3: a view over a caller-owned byte
// buffer, described by dtype, shape, strides (in bytes), offset, order,
// and index-mode policy. Array does not own data; destroying an Array
// releases only the descriptor, never the buffer.
type Array struct {
	dt        dtype.Type
	data      []byte
	shapeVal  []int
	strides   []int // bytes
	offset    int
	order     Order
	imode     indexmode.Mode
	submodes  []indexmode.Mode
	length    int
	byteLen   int
	elemBytes int
	flags     Flags
}

// New constructs an Array descriptor. If strides is nil, canonical strides
// are computed from shapeVal and order (in element units via
// shape.ShapeToStrides) and converted to bytes by multiplying by the
// dtype's byte width — the one unit-conversion point in this module (see
// SPEC_FULL.md §5). If submodes is empty, imode is used as the sole
// submode. shapeVal and strides are not copied; the caller must keep them
// alive for the descriptor's lifetime.
func New(dt dtype.Type, data []byte, shapeVal []int, strides []int, offset int, order Order, imode indexmode.Mode, submodes []indexmode.Mode) (*Array, error) {
	if !dtype.IsRegistered(dt) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDType, dt)
	}
	elemBytes := dtype.ByteWidth(dt)

	if strides == nil {
		canonical := shape.ShapeToStrides(shapeVal, order)
		strides = make([]int, len(canonical))
		for i, s := range canonical {
			strides[i] = s * elemBytes
		}
	}
	if len(strides) != len(shapeVal) {
		return nil, fmt.Errorf("%w: strides length %d != shape length %d", ErrShapeMismatch, len(strides), len(shapeVal))
	}
	if len(submodes) == 0 {
		submodes = []indexmode.Mode{imode}
	}

	length := shape.Numel(shapeVal)
	byteLen := length * elemBytes

	if elemBytes > 0 && data != nil {
		if !shape.IsBufferLengthCompatible(shapeVal, strides, offset, elemBytes, len(data)/elemBytes) {
			return nil, fmt.Errorf("%w: buffer of %d bytes cannot back the declared view", ErrIncompatibleBuffer, len(data))
		}
	}

	a := &Array{
		dt:        dt,
		data:      data,
		shapeVal:  shapeVal,
		strides:   strides,
		offset:    offset,
		order:     order,
		imode:     imode,
		submodes:  submodes,
		length:    length,
		byteLen:   byteLen,
		elemBytes: elemBytes,
	}
	a.recomputeFlags()
	return a, nil
}

func (a *Array) recomputeFlags() {
	var f Flags
	if shape.IsRowMajorContiguous(a.shapeVal, a.strides, a.offset, a.elemBytes) {
		f.Enable(RowMajorContiguous)
	}
	if shape.IsColumnMajorContiguous(a.shapeVal, a.strides, a.offset, a.elemBytes) {
		f.Enable(ColumnMajorContiguous)
	}
	a.flags = f
}

// Dtype returns the descriptor's element type tag.
func (a *Array) Dtype() dtype.Type { return a.dt }

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shapeVal) }

// Shape returns the per-axis extents. The returned slice must not be
// mutated by the caller.
func (a *Array) Shape() []int { return a.shapeVal }

// Strides returns the per-axis byte steps. The returned slice must not be
// mutated by the caller.
func (a *Array) Strides() []int { return a.strides }

// Offset returns the byte offset of the all-zero-subscript element.
func (a *Array) Offset() int { return a.offset }

// Order returns the declared memory order.
func (a *Array) Order() Order { return a.order }

// IMode returns the default index mode for linear (iget/iset) access.
func (a *Array) IMode() indexmode.Mode { return a.imode }

// Submodes returns the per-axis subscript modes, recycled modulo their
// length.
func (a *Array) Submodes() []indexmode.Mode { return a.submodes }

// Length returns the cached element count (numel).
func (a *Array) Length() int { return a.length }

// ByteLength returns length * BytesPerElement.
func (a *Array) ByteLength() int { return a.byteLen }

// BytesPerElement returns the cached per-element byte width.
func (a *Array) BytesPerElement() int { return a.elemBytes }

// Flags returns the descriptor's current flag bit-mask.
func (a *Array) Flags() Flags { return a.flags }

// EnableFlags sets bits in the descriptor's flag mask without validation
// (spec §4.4).
func (a *Array) EnableFlags(bits Flags) { a.flags.Enable(bits) }

// DisableFlags clears bits in the descriptor's flag mask without
// validation (spec §4.4).
func (a *Array) DisableFlags(bits Flags) { a.flags.Disable(bits) }

// Data returns the underlying caller-owned buffer.
func (a *Array) Data() []byte { return a.data }

// IsBufferLengthCompatible reports whether the descriptor's declared view
// fits within a buffer of buflen elements (spec §4.5).
func (a *Array) IsBufferLengthCompatible(buflen int) bool {
	return shape.IsBufferLengthCompatible(a.shapeVal, a.strides, a.offset, a.elemBytes, buflen)
}
