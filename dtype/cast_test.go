package dtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DashFlow-IO/ndarray/dtype"
)

func TestSafeCastIdentity(t *testing.T) {
	// Testable property (spec §8): SAFE_CASTS[t][t] == 1 for every t.
	for _, typ := range dtype.All() {
		assert.True(t, dtype.SafeCast(typ, typ), "type %v", typ)
	}
}

func TestSafeCastWidening(t *testing.T) {
	assert.True(t, dtype.SafeCast(dtype.Int8, dtype.Int32))
	assert.True(t, dtype.SafeCast(dtype.Float32, dtype.Float64))
	assert.False(t, dtype.SafeCast(dtype.Int32, dtype.Int8))
	assert.False(t, dtype.SafeCast(dtype.Float64, dtype.Float32))
}

func TestSameKindCast(t *testing.T) {
	assert.True(t, dtype.SameKindCast(dtype.Int8, dtype.Int64))
	assert.True(t, dtype.SameKindCast(dtype.Float32, dtype.Float64))
	assert.False(t, dtype.SameKindCast(dtype.Int32, dtype.Float32))
	assert.True(t, dtype.SameKindCast(dtype.Complex64, dtype.Complex128))
}

func TestIsAllowedCast(t *testing.T) {
	tests := []struct {
		name       string
		from, to   dtype.Type
		mode       dtype.CastingMode
		wantAllow  bool
	}{
		{"unsafe always allows", dtype.Float64, dtype.Int8, dtype.UnsafeCasting, true},
		{"identity always allows under no-casting", dtype.Int32, dtype.Int32, dtype.NoCasting, true},
		{"no-casting rejects non-identity", dtype.Int32, dtype.Int64, dtype.NoCasting, false},
		{"safe allows widening", dtype.Int8, dtype.Int64, dtype.SafeCasting, true},
		{"safe rejects narrowing", dtype.Int64, dtype.Int8, dtype.SafeCasting, false},
		{"same-kind allows narrowing within kind", dtype.Int64, dtype.Int8, dtype.SameKindCasting, true},
		{"same-kind rejects cross-kind", dtype.Int32, dtype.Float32, dtype.SameKindCasting, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAllow, dtype.IsAllowedCast(tt.from, tt.to, tt.mode))
		})
	}
}
