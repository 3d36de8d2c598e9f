package ndarray_test

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/DashFlow-IO/ndarray/apply"
	"github.com/DashFlow-IO/ndarray/dtype"
	"github.com/DashFlow-IO/ndarray/indexmode"
	"github.com/DashFlow-IO/ndarray/internal/obslog"
	"github.com/DashFlow-IO/ndarray/ndarray"
)

// Example demonstrates constructing a row-major float64 descriptor and
// squaring every element with the apply engine. This is the one place in
// the module that logs — see internal/obslog for why.
func Example() {
	buf := make([]byte, 4*8)
	for i, v := range []float64{1, 2, 3, 4} {
		*(*uint64)(unsafe.Pointer(&buf[i*8])) = math.Float64bits(v)
	}
	src, err := ndarray.New(dtype.Float64, buf, []int{2, 2}, nil, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	if err != nil {
		panic(err)
	}
	outBuf := make([]byte, 4*8)
	dst, err := ndarray.New(dtype.Float64, outBuf, []int{2, 2}, nil, 0, ndarray.RowMajor, indexmode.ErrorMode, nil)
	if err != nil {
		panic(err)
	}

	obslog.Log.Debug().Int("rank", src.Rank()).Msg("applying square callback")

	if err := apply.Apply(dst, src, func(x float64) float64 { return x * x }); err != nil {
		panic(err)
	}

	v, _ := ndarray.Get[float64](dst, []int{1, 1})
	fmt.Println(v)
	// Output: 16
}
