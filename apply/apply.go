// Package apply implements the element-wise unary apply engine (spec §2.7,
// §4.6): given an input and output descriptor sharing the same shape, it
// writes output[i] = cast_out(f(cast_in(input[i]))) for every i in the
// view, correct for any combination of contiguity, stride sign, and
// declared order, without allocating per call.
//
// The specification's six C-style "operation variants" (INLINE, CLBK,
// CLBK_RET_NOCAST, CLBK_ARG_CAST, CLBK_ARG_CAST_FCN, CLBK_RET_CAST_FCN)
// collapse into three generic entry points here — Apply, ApplyConv, and
// Apply2 — per spec §9's own guidance to prefer one generic accessor
// parameterized by T over macro-expanded variants. Rank specialization
// (spec's "ndims nested loops" family for 1D-10D) collapses similarly
// into one rank-parametric recursive traversal, grounded on the teacher's
// dimension-peeling pattern in
// x/math/primitive/generics/st/apply_tensor.go's ElemApplyUnaryStrided,
// rather than ten hand-unrolled loop bodies — see DESIGN.md.
package apply

import (
	"github.com/DashFlow-IO/ndarray/indexmode"
	"github.com/DashFlow-IO/ndarray/ndarray"
	"github.com/DashFlow-IO/ndarray/shape"
)

// maxSpecializedRank is the rank above which the engine falls back to the
// general N-D implementation driven by shape.VindToBind (spec §4.6).
const maxSpecializedRank = 10

// Apply covers the INLINE/CLBK/CLBK_RET_NOCAST variants: dst[i] = f(src[i])
// for every i in the shared view. dst and src must share Rank() and
// Shape(); otherwise ErrShapeMismatch is returned before any element is
// touched (spec §7: pre-flight validation, no partial writes on a shape
// error).
func Apply[In, Out any](dst, src *ndarray.Array, f func(In) Out) error {
	if err := validateShapes(dst, src); err != nil {
		return err
	}
	if src.Rank() > maxSpecializedRank {
		return applyGeneralND(dst, src, f)
	}
	return applyRec(dst.Shape(), dst.Strides(), src.Strides(), 0, dst.Offset(), src.Offset(), dst, src, f)
}

// ApplyConv covers CLBK_ARG_CAST/CLBK_ARG_CAST_FCN/CLBK_RET_CAST_FCN: the
// callback f operates in an intermediate type Mid, with caller-supplied
// conversion functions at the boundary.
func ApplyConv[In, Mid, Out any](dst, src *ndarray.Array, f func(Mid) Mid, cin func(In) Mid, cout func(Mid) Out) error {
	return Apply[In, Out](dst, src, func(in In) Out {
		return cout(f(cin(in)))
	})
}

// Apply2 is the two-output family: both dst1 and dst2 must share shape
// with src; strides and dtypes of the two outputs are independent.
func Apply2[In, Out1, Out2 any](dst1, dst2, src *ndarray.Array, f func(In) (Out1, Out2)) error {
	if err := validateShapes(dst1, src); err != nil {
		return err
	}
	if err := validateShapes(dst2, src); err != nil {
		return err
	}
	return apply2Rec(src.Shape(), dst1.Strides(), dst2.Strides(), src.Strides(), 0, dst1.Offset(), dst2.Offset(), src.Offset(), dst1, dst2, src, f)
}

func validateShapes(a, b *ndarray.Array) error {
	if a.Rank() != b.Rank() {
		return ndarray.ErrShapeMismatch
	}
	as, bs := a.Shape(), b.Shape()
	for i := range as {
		if as[i] != bs[i] {
			return ndarray.ErrShapeMismatch
		}
	}
	return nil
}

// applyRec is the unified rank-parametric traversal: it recurses one axis
// at a time (peeling the outermost remaining axis), accumulating the byte
// base offset for dst and src independently, until depth reaches the
// rank, at which point it performs the single-element read/convert/write.
// This is behaviorally equivalent across every rank — specialization in
// the original C source exists only for performance, which this
// implementation instead gets from Go's inliner and the cache-blocked
// variant in blocked.go.
func applyRec[In, Out any](shapeArr, dstStrides, srcStrides []int, depth, dstBase, srcBase int, dst, src *ndarray.Array, f func(In) Out) error {
	if depth == len(shapeArr) {
		return applyElem(dst, src, dstBase, srcBase, f)
	}
	n := shapeArr[depth]
	dStride := dstStrides[depth]
	sStride := srcStrides[depth]
	for i := 0; i < n; i++ {
		if err := applyRec(shapeArr, dstStrides, srcStrides, depth+1, dstBase+i*dStride, srcBase+i*sStride, dst, src, f); err != nil {
			return err
		}
	}
	return nil
}

func applyElem[In, Out any](dst, src *ndarray.Array, dstAddr, srcAddr int, f func(In) Out) error {
	inPtr, ok := src.BufferPtrAt(srcAddr)
	if !ok {
		return ndarray.ErrIncompatibleBuffer
	}
	outPtr, ok := dst.BufferPtrAt(dstAddr)
	if !ok {
		return ndarray.ErrIncompatibleBuffer
	}
	in := ndarray.GetPtr[In](inPtr)
	ndarray.SetPtr(outPtr, f(in))
	return nil
}

func apply2Rec[In, Out1, Out2 any](shapeArr, d1Strides, d2Strides, srcStrides []int, depth, d1Base, d2Base, srcBase int, dst1, dst2, src *ndarray.Array, f func(In) (Out1, Out2)) error {
	if depth == len(shapeArr) {
		inPtr, ok := src.BufferPtrAt(srcBase)
		if !ok {
			return ndarray.ErrIncompatibleBuffer
		}
		out1Ptr, ok := dst1.BufferPtrAt(d1Base)
		if !ok {
			return ndarray.ErrIncompatibleBuffer
		}
		out2Ptr, ok := dst2.BufferPtrAt(d2Base)
		if !ok {
			return ndarray.ErrIncompatibleBuffer
		}
		in := ndarray.GetPtr[In](inPtr)
		o1, o2 := f(in)
		ndarray.SetPtr(out1Ptr, o1)
		ndarray.SetPtr(out2Ptr, o2)
		return nil
	}
	n := shapeArr[depth]
	d1s, d2s, ss := d1Strides[depth], d2Strides[depth], srcStrides[depth]
	for i := 0; i < n; i++ {
		if err := apply2Rec(shapeArr, d1Strides, d2Strides, srcStrides, depth+1, d1Base+i*d1s, d2Base+i*d2s, srcBase+i*ss, dst1, dst2, src, f); err != nil {
			return err
		}
	}
	return nil
}

// applyGeneralND is the canonical-but-slow fallback for rank > 10 (spec
// §4.6): it iterates the view-linear index directly and resolves each
// participant's byte address independently via shape.VindToBind, using
// that participant's own declared order and index mode.
func applyGeneralND[In, Out any](dst, src *ndarray.Array, f func(In) Out) error {
	length := src.Length()
	srcShape, dstShape := src.Shape(), dst.Shape()
	srcStrides, dstStrides := src.Strides(), dst.Strides()
	for i := 0; i < length; i++ {
		srcAddr, ok := shape.VindToBind(srcShape, srcStrides, src.Offset(), src.Order(), i, indexmode.ErrorMode)
		if !ok {
			return ndarray.ErrOutOfBounds
		}
		dstAddr, ok := shape.VindToBind(dstShape, dstStrides, dst.Offset(), dst.Order(), i, indexmode.ErrorMode)
		if !ok {
			return ndarray.ErrOutOfBounds
		}
		if err := applyElem(dst, src, dstAddr, srcAddr, f); err != nil {
			return err
		}
	}
	return nil
}
