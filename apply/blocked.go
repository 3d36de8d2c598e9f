package apply

import "github.com/DashFlow-IO/ndarray/ndarray"

// BlockSizeInBytes is the working-set budget used to derive the tile size
// B for ApplyBlocked (spec §4.6's BLOCK_SIZE_IN_BYTES).
const BlockSizeInBytes = 64

// BlockSizeInElements is the tile size used when every participant's
// element width is zero (opaque/generic dtypes), per spec §4.6's
// BLOCK_SIZE_IN_ELEMENTS fallback.
const BlockSizeInElements = 8

// ApplyBlocked is the cache-blocked variant of Apply (spec §4.6): it
// first performs a loop interchange (sorting axes by descending absolute
// input stride) so the innermost tiled loop walks the input's most
// contiguous axis, then tiles the permuted loop nest at a block size
// derived from BlockSizeInBytes. Ranks below 2 have no blocking to do and
// fall back to Apply directly; ranks above 10 are rejected (the
// specification scopes the blocked variant to 2D-10D) in favor of the
// unblocked general N-D fallback via Apply.
func ApplyBlocked[In, Out any](dst, src *ndarray.Array, f func(In) Out) error {
	if err := validateShapes(dst, src); err != nil {
		return err
	}
	ndims := src.Rank()
	if ndims < 2 || ndims > maxSpecializedRank {
		return Apply(dst, src, f)
	}

	srcShape := append([]int(nil), src.Shape()...)
	srcStrides := append([]int(nil), src.Strides()...)
	dstStrides := append([]int(nil), dst.Strides()...)

	axes := loopInterchangeOrder(srcStrides)
	permShape := permute(srcShape, axes)
	permSrcStrides := permute(srcStrides, axes)
	permDstStrides := permute(dstStrides, axes)

	bpe := src.BytesPerElement()
	if dst.BytesPerElement() > bpe {
		bpe = dst.BytesPerElement()
	}
	block := BlockSizeInElements
	if bpe > 0 {
		block = BlockSizeInBytes / bpe
		if block == 0 {
			block = 1
		}
	}

	return applyBlockedRec(permShape, permDstStrides, permSrcStrides, 0, dst.Offset(), src.Offset(), block, dst, src, f)
}

// loopInterchangeOrder returns axis indices sorted by descending absolute
// stride, via insertion sort — sufficient given the tiny rank involved
// (spec §4.6 explicitly calls out insertion sort for this reason). Depth 0
// of applyBlockedRec is the outermost loop and depth len(permShape)-1 is
// innermost, so the largest-stride axis must sort first and the
// smallest-stride (most contiguous) axis last.
func loopInterchangeOrder(strides []int) []int {
	axes := make([]int, len(strides))
	for i := range axes {
		axes[i] = i
	}
	for i := 1; i < len(axes); i++ {
		for j := i; j > 0 && absInt(strides[axes[j-1]]) < absInt(strides[axes[j]]); j-- {
			axes[j-1], axes[j] = axes[j], axes[j-1]
		}
	}
	return axes
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func permute(s []int, axes []int) []int {
	out := make([]int, len(s))
	for i, ax := range axes {
		out[i] = s[ax]
	}
	return out
}

// applyBlockedRec tiles every axis of the permuted loop nest at the given
// block size: for each axis, it walks tile starts in steps of block, then
// within each tile walks individual positions, recomputing the per-tile
// base pointer from the permuted offsets at every step. Recursing this
// pattern at every depth produces genuine multi-axis tiling rather than
// blocking only the innermost axis.
func applyBlockedRec[In, Out any](permShape, dstStrides, srcStrides []int, depth, dstBase, srcBase, block int, dst, src *ndarray.Array, f func(In) Out) error {
	if depth == len(permShape) {
		return applyElem(dst, src, dstBase, srcBase, f)
	}
	n := permShape[depth]
	dStride := dstStrides[depth]
	sStride := srcStrides[depth]
	for tileStart := 0; tileStart < n; tileStart += block {
		tileLen := block
		if tileStart+tileLen > n {
			tileLen = n - tileStart
		}
		tileDstBase := dstBase + tileStart*dStride
		tileSrcBase := srcBase + tileStart*sStride
		for i := 0; i < tileLen; i++ {
			if err := applyBlockedRec(permShape, dstStrides, srcStrides, depth+1, tileDstBase+i*dStride, tileSrcBase+i*sStride, block, dst, src, f); err != nil {
				return err
			}
		}
	}
	return nil
}
