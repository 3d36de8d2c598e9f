package ndarray

import (
	"unsafe"

	"github.com/DashFlow-IO/ndarray/dtype"
	"github.com/DashFlow-IO/ndarray/indexmode"
	"github.com/DashFlow-IO/ndarray/shape"
)

// bytePtr returns an unsafe.Pointer to the byte at addr within a.data,
// validating that a full element of a.elemBytes fits within the buffer.
// This bounds check is what keeps the unsafe.Pointer casts below from
// reading or writing past the caller-supplied buffer.
func (a *Array) bytePtr(addr int) (unsafe.Pointer, bool) {
	if addr < 0 || a.elemBytes < 0 || addr+a.elemBytes > len(a.data) {
		return nil, false
	}
	return unsafe.Pointer(&a.data[addr]), true
}

// Get reads the element at the given subscript vector (spec §4.4's
// get(sub), typed form). Resolves the subscript via the descriptor's
// submodes through shape.SubToInd.
func Get[T any](a *Array, sub []int) (T, error) {
	var zero T
	addr, ok := shape.SubToInd(a.shapeVal, a.strides, a.offset, sub, a.submodes)
	if !ok {
		return zero, ErrOutOfBounds
	}
	ptr, ok := a.bytePtr(addr)
	if !ok {
		return zero, ErrIncompatibleBuffer
	}
	return *(*T)(ptr), nil
}

// Set writes the element at the given subscript vector (spec §4.4's
// set(sub, v), typed form).
func Set[T any](a *Array, sub []int, v T) error {
	addr, ok := shape.SubToInd(a.shapeVal, a.strides, a.offset, sub, a.submodes)
	if !ok {
		return ErrOutOfBounds
	}
	ptr, ok := a.bytePtr(addr)
	if !ok {
		return ErrIncompatibleBuffer
	}
	*(*T)(ptr) = v
	return nil
}

// GetPtr performs unchecked raw access through an arbitrary byte pointer
// (spec §4.4's get_ptr_value): the caller certifies both the pointer's
// validity and that T matches the descriptor's dtype.
func GetPtr[T any](ptr unsafe.Pointer) T {
	return *(*T)(ptr)
}

// SetPtr is the unchecked raw-access write counterpart of GetPtr.
func SetPtr[T any](ptr unsafe.Pointer, v T) {
	*(*T)(ptr) = v
}

// elementAddr resolves a view-linear index to a byte address, taking the
// fast contiguous paths described in spec §4.4 before falling back to
// shape.VindToBind.
func (a *Array) elementAddr(resolved int) (int, bool) {
	if a.Rank() == 0 {
		return a.offset, true
	}
	io := shape.IterationOrder(a.strides)
	switch {
	case a.flags.Has(RowMajorContiguous) && io == 1:
		return a.offset + resolved*a.elemBytes, true
	case a.flags.Has(RowMajorContiguous) && io == -1:
		return a.offset - resolved*a.elemBytes, true
	default:
		return shape.VindToBind(a.shapeVal, a.strides, a.offset, a.order, resolved, a.imode)
	}
}

// IGet reads the element at the given view-linear index (spec §4.4's
// iget(idx)), resolved against the descriptor's imode. Zero-dimensional
// arrays ignore idx and read the single element at data+offset.
func IGet[T any](a *Array, idx int) (T, error) {
	var zero T
	if a.Rank() == 0 {
		idx = 0
	}
	resolved, ok := indexmode.Resolve(idx, a.length-1, a.imode)
	if !ok {
		return zero, ErrOutOfBounds
	}
	addr, ok := a.elementAddr(resolved)
	if !ok {
		return zero, ErrOutOfBounds
	}
	ptr, ok := a.bytePtr(addr)
	if !ok {
		return zero, ErrIncompatibleBuffer
	}
	return *(*T)(ptr), nil
}

// ISet writes the element at the given view-linear index (spec §4.4's
// iset(idx, v)). Zero-dimensional arrays ignore idx, as in IGet.
func ISet[T any](a *Array, idx int, v T) error {
	if a.Rank() == 0 {
		idx = 0
	}
	resolved, ok := indexmode.Resolve(idx, a.length-1, a.imode)
	if !ok {
		return ErrOutOfBounds
	}
	addr, ok := a.elementAddr(resolved)
	if !ok {
		return ErrOutOfBounds
	}
	ptr, ok := a.bytePtr(addr)
	if !ok {
		return ErrIncompatibleBuffer
	}
	*(*T)(ptr) = v
	return nil
}

// GetAny reads the element at idx, boxing the result per the descriptor's
// dtype (spec §4.4's untyped iget form). Returns ErrUnknownDType for tags
// with no native Go representation (Int128, Uint128, Float16, BFloat16,
// Float128, Uint8Clamped, Binary, Generic).
func GetAny(a *Array, idx int) (any, error) {
	switch a.dt {
	case dtype.Bool:
		return IGet[bool](a, idx)
	case dtype.Int8:
		return IGet[int8](a, idx)
	case dtype.Int16:
		return IGet[int16](a, idx)
	case dtype.Int32:
		return IGet[int32](a, idx)
	case dtype.Int64:
		return IGet[int64](a, idx)
	case dtype.Uint8:
		return IGet[uint8](a, idx)
	case dtype.Uint16:
		return IGet[uint16](a, idx)
	case dtype.Uint32:
		return IGet[uint32](a, idx)
	case dtype.Uint64:
		return IGet[uint64](a, idx)
	case dtype.Float32:
		return IGet[float32](a, idx)
	case dtype.Float64:
		return IGet[float64](a, idx)
	case dtype.Complex64:
		return IGet[complex64](a, idx)
	case dtype.Complex128:
		return IGet[complex128](a, idx)
	default:
		return nil, ErrUnknownDType
	}
}

// SetAny writes v (type-asserted per the descriptor's dtype) at idx. See
// GetAny for the set of supported tags.
func SetAny(a *Array, idx int, v any) error {
	switch a.dt {
	case dtype.Bool:
		x, ok := v.(bool)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Int8:
		x, ok := v.(int8)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Int16:
		x, ok := v.(int16)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Int32:
		x, ok := v.(int32)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Int64:
		x, ok := v.(int64)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Uint8:
		x, ok := v.(uint8)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Uint16:
		x, ok := v.(uint16)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Uint32:
		x, ok := v.(uint32)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Uint64:
		x, ok := v.(uint64)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Float32:
		x, ok := v.(float32)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Float64:
		x, ok := v.(float64)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Complex64:
		x, ok := v.(complex64)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	case dtype.Complex128:
		x, ok := v.(complex128)
		if !ok {
			return ErrUnknownDType
		}
		return ISet(a, idx, x)
	default:
		return ErrUnknownDType
	}
}

// Ptr returns an unsafe.Pointer to the byte address resolved from idx,
// for callers that want to bypass the generic Get/Set overhead in a tight
// loop. ok is false if idx resolves
// out of bounds or the resolved address falls outside the buffer.
func (a *Array) Ptr(idx int) (unsafe.Pointer, bool) {
	resolved, ok := indexmode.Resolve(idx, a.length-1, a.imode)
	if !ok {
		return nil, false
	}
	addr, ok := a.elementAddr(resolved)
	if !ok {
		return nil, false
	}
	return a.bytePtr(addr)
}
