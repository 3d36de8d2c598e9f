package ndarray_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DashFlow-IO/ndarray/dtype"
	"github.com/DashFlow-IO/ndarray/indexmode"
	"github.com/DashFlow-IO/ndarray/ndarray"
)

func float64Buffer(vals ...float64) []byte {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		bits := math.Float64bits(v)
		*(*uint64)(unsafe.Pointer(&buf[i*8])) = bits
	}
	return buf
}

func TestRowMajorContiguousRead(t *testing.T) {
	// spec §8 scenario 1.
	buf := float64Buffer(1, 2, 3, 4, 5, 6)
	a, err := ndarray.New(dtype.Float64, buf, []int{2, 3}, []int{24, 8}, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	require.NoError(t, err)
	assert.True(t, a.Flags().Has(ndarray.RowMajorContiguous))

	v, err := ndarray.IGet[float64](a, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = ndarray.Get[float64](a, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestColumnMajorContiguousRead(t *testing.T) {
	// spec §8 scenario 2 (subscript-recovery half only; see DESIGN.md for
	// the noted inconsistency in the scenario's stated buffer value).
	buf := float64Buffer(1, 2, 3, 4, 5, 6)
	a, err := ndarray.New(dtype.Float64, buf, []int{2, 3}, []int{8, 16}, 0, ndarray.ColumnMajor, indexmode.ErrorMode, nil)
	require.NoError(t, err)
	assert.True(t, a.Flags().Has(ndarray.ColumnMajorContiguous))

	iget4, err := ndarray.IGet[float64](a, 4)
	require.NoError(t, err)
	getSub, err := ndarray.Get[float64](a, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, getSub, iget4)
}

func TestNegativeStrideNonzeroOffset(t *testing.T) {
	// spec §8 scenario 3.
	buf := float64Buffer(10, 20, 30)
	a, err := ndarray.New(dtype.Float64, buf, []int{3}, []int{-8}, 16, ndarray.RowMajor, indexmode.ErrorMode, nil)
	require.NoError(t, err)

	v, err := ndarray.IGet[float64](a, 0)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)

	v, err = ndarray.IGet[float64](a, 2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestWrapIndexMode(t *testing.T) {
	// spec §8 scenario 4.
	buf := float64Buffer(1, 2, 3, 4, 5)
	a, err := ndarray.New(dtype.Float64, buf, []int{5}, nil, 0, ndarray.RowMajor, indexmode.Wrap, nil)
	require.NoError(t, err)

	neg1, err := ndarray.IGet[float64](a, -1)
	require.NoError(t, err)
	four, err := ndarray.IGet[float64](a, 4)
	require.NoError(t, err)
	assert.Equal(t, four, neg1)

	seven, err := ndarray.IGet[float64](a, 7)
	require.NoError(t, err)
	two, err := ndarray.IGet[float64](a, 2)
	require.NoError(t, err)
	assert.Equal(t, two, seven)
}

func TestOutOfBoundsUnderErrorMode(t *testing.T) {
	buf := float64Buffer(1, 2, 3)
	a, err := ndarray.New(dtype.Float64, buf, []int{3}, nil, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	require.NoError(t, err)

	_, err = ndarray.IGet[float64](a, 5)
	assert.ErrorIs(t, err, ndarray.ErrOutOfBounds)
}

func TestUnknownDtypeConstructor(t *testing.T) {
	_, err := ndarray.New(dtype.UserDefinedBase, nil, []int{1}, nil, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	assert.ErrorIs(t, err, ndarray.ErrUnknownDType)
}

func TestRankZeroDescriptor(t *testing.T) {
	buf := float64Buffer(42)
	a, err := ndarray.New(dtype.Float64, buf, nil, nil, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Length())

	v, err := ndarray.IGet[float64](a, 0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestGetAnySetAny(t *testing.T) {
	buf := make([]byte, 4*4)
	a, err := ndarray.New(dtype.Int32, buf, []int{4}, nil, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	require.NoError(t, err)

	require.NoError(t, ndarray.SetAny(a, 2, int32(7)))
	v, err := ndarray.GetAny(a, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
}

func TestIncompatibleBuffer(t *testing.T) {
	buf := make([]byte, 8) // only one float64
	_, err := ndarray.New(dtype.Float64, buf, []int{3}, nil, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	assert.ErrorIs(t, err, ndarray.ErrIncompatibleBuffer)
}

func TestBroadcastShapes(t *testing.T) {
	out, err := ndarray.BroadcastShapes([]int{3, 1}, []int{1, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, out)

	_, err = ndarray.BroadcastShapes([]int{3}, []int{4})
	assert.ErrorIs(t, err, ndarray.ErrBroadcastFailure)
}

func TestViewAs(t *testing.T) {
	buf := make([]byte, 4*4)
	a, err := ndarray.New(dtype.Int32, buf, []int{4}, nil, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	require.NoError(t, err)

	widened, err := a.ViewAs(dtype.Int64, dtype.NoCasting)
	assert.ErrorIs(t, err, ndarray.ErrCastNotAllowed)
	assert.Nil(t, widened)

	same, err := a.ViewAs(dtype.Int32, dtype.NoCasting)
	require.NoError(t, err)
	assert.Equal(t, dtype.Int32, same.Dtype())
}
