// Package dtype implements the element data type registry: the closed set
// of element tags an ndarray descriptor may carry, their byte widths,
// single-letter character codes, and kind classification used to build the
// casting tables.
package dtype

import "fmt"

// Type is a closed tag identifying an element's numeric encoding and width.
type Type uint8

const (
	// Invalid is the zero value: no valid descriptor carries this tag.
	Invalid Type = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Int128
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128
	Uint8Clamped
	Float16
	BFloat16
	Float32
	Float64
	Float128
	Complex64
	Complex128
	Binary
	Generic
	// UserDefinedBase reserves the remaining numeric range for extension;
	// it is never produced by this package and carries no metadata.
	UserDefinedBase
)

// Kind groups types by casting compatibility (spec §4.5: SAME_KIND_CASTS is
// defined within a kind: integer<->integer, float<->float, and so on).
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindComplex
	KindBinary
	KindGeneric
)

type typeInfo struct {
	name      string
	byteWidth int
	code      byte
	kind      Kind
}

// info is indexed by Type. UserDefinedBase has no entry and must not be
// used with any function in this package.
var info = [...]typeInfo{
	Invalid:      {"invalid", 0, 0, KindInvalid},
	Bool:         {"bool", 1, 'x', KindBool},
	Int8:         {"int8", 1, 's', KindInt},
	Int16:        {"int16", 2, 'n', KindInt},
	Int32:        {"int32", 4, 'i', KindInt},
	Int64:        {"int64", 8, 'l', KindInt},
	Int128:       {"int128", 16, 'k', KindInt},
	Uint8:        {"uint8", 1, 'b', KindUint},
	Uint16:       {"uint16", 2, 'N', KindUint},
	Uint32:       {"uint32", 4, 'u', KindUint},
	Uint64:       {"uint64", 8, 'U', KindUint},
	Uint128:      {"uint128", 16, 'K', KindUint},
	Uint8Clamped: {"uint8_clamped", 1, 'B', KindUint},
	Float16:      {"float16", 2, 'h', KindFloat},
	BFloat16:     {"bfloat16", 2, 'e', KindFloat},
	Float32:      {"float32", 4, 'f', KindFloat},
	Float64:      {"float64", 8, 'd', KindFloat},
	Float128:     {"float128", 16, 'g', KindFloat},
	Complex64:    {"complex64", 8, 'c', KindComplex},
	Complex128:   {"complex128", 16, 'z', KindComplex},
	Binary:       {"binary", 0, 'r', KindBinary},
	Generic:      {"generic", 0, 'o', KindGeneric},
}

// valid reports whether t has a metadata entry in this registry.
func valid(t Type) bool {
	return t < Type(len(info)) && t != Invalid
}

// ByteWidth returns the element width in bytes, or 0 for variable/opaque
// types (Binary, Generic). Panics if t is not a registered type.
func ByteWidth(t Type) int {
	mustValid(t)
	return info[t].byteWidth
}

// Code returns the single-letter character code for t. Panics if t is not
// a registered type.
func Code(t Type) byte {
	mustValid(t)
	return info[t].code
}

// KindOf returns the casting-kind classification for t.
func KindOf(t Type) Kind {
	mustValid(t)
	return info[t].kind
}

// Name returns a human-readable name for t, primarily for error messages.
func Name(t Type) string {
	if !valid(t) {
		return fmt.Sprintf("dtype.Type(%d)", uint8(t))
	}
	return info[t].name
}

func (t Type) String() string { return Name(t) }

func mustValid(t Type) {
	if !valid(t) {
		panic(fmt.Sprintf("dtype: unknown type %d", uint8(t)))
	}
}

// IsRegistered reports whether t is a member of the registry (spec §3's
// "dtype is a member of the registry" descriptor invariant).
func IsRegistered(t Type) bool {
	return valid(t)
}

// CodeToType resolves a single-letter character code back to a Type. The
// second return value is false if no registered type uses that code.
func CodeToType(code byte) (Type, bool) {
	for i, e := range info {
		if i == int(Invalid) {
			continue
		}
		if e.code == code {
			return Type(i), true
		}
	}
	return Invalid, false
}

// All returns every registered type in ascending tag order, excluding
// Invalid and UserDefinedBase.
func All() []Type {
	out := make([]Type, 0, len(info)-1)
	for i := range info {
		if Type(i) == Invalid {
			continue
		}
		out = append(out, Type(i))
	}
	return out
}
