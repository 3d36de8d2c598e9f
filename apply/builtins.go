package apply

import (
	"math"

	"github.com/chewxy/math32"
)

// Builtins is a small catalog of ready-to-use unary callbacks, named after
// the teacher's ElementWise interface operations
// (x/math/tensor/types/elementwise.go: Square/Sqrt/Abs/Sign/Negative).
// Unlike the teacher, whose arithmetic ElementWise methods are float32-only
// (eager_tensor/math.go routes everything through fp32.*), these come in
// float64 and float32 forms; the apply engine itself is generic over its
// element types, and the separate float32 forms avoid a
// widen-then-narrow round trip. The float32 forms route through chewxy/math32, matching
// the teacher's own use of that package in
// x/math/control/kinematics/joints/planar/planar2dof.go.
var Builtins = struct {
	Sqrt64, Abs64, Square64, Negate64, Sign64 func(float64) float64
	Sqrt32, Abs32, Square32, Negate32, Sign32 func(float32) float32
}{
	Sqrt64:   math.Sqrt,
	Abs64:    math.Abs,
	Square64: func(x float64) float64 { return x * x },
	Negate64: func(x float64) float64 { return -x },
	Sign64: func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	},
	Sqrt32:   math32.Sqrt,
	Abs32:    math32.Abs,
	Square32: func(x float32) float32 { return x * x },
	Negate32: func(x float32) float32 { return -x },
	Sign32: func(x float32) float32 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	},
}
