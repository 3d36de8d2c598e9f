package indexmode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DashFlow-IO/ndarray/indexmode"
)

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, indexmode.ClampIndex(-5, 4))
	assert.Equal(t, 4, indexmode.ClampIndex(9, 4))
	assert.Equal(t, 2, indexmode.ClampIndex(2, 4))
	assert.Equal(t, 0, indexmode.ClampIndex(0, 0))
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		name     string
		idx, max int
		want     int
	}{
		{"in range", 2, 4, 2},
		{"one past end wraps to zero", 5, 4, 0},
		{"negative one wraps to max", -1, 4, 4},
		{"large positive multiple spans", 7, 4, 2},
		{"large negative multiple spans", -7, 4, 3},
		{"single element always zero", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, indexmode.WrapIndex(tt.idx, tt.max))
		})
	}
}

func TestResolveErrorMode(t *testing.T) {
	got, ok := indexmode.Resolve(2, 4, indexmode.ErrorMode)
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = indexmode.Resolve(-1, 4, indexmode.ErrorMode)
	assert.False(t, ok)

	_, ok = indexmode.Resolve(5, 4, indexmode.ErrorMode)
	assert.False(t, ok)
}

func TestResolveClampAndWrapAlwaysSucceed(t *testing.T) {
	got, ok := indexmode.Resolve(-1, 4, indexmode.Clamp)
	assert.True(t, ok)
	assert.Equal(t, 0, got)

	got, ok = indexmode.Resolve(7, 4, indexmode.Wrap)
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestWrapScenarioFromSpec(t *testing.T) {
	// spec §8 scenario 4: shape=[5], imode=WRAP. iget(-1) == iget(4);
	// iget(7) == iget(2).
	max := 4
	a, ok := indexmode.Resolve(-1, max, indexmode.Wrap)
	assert.True(t, ok)
	b, ok := indexmode.Resolve(4, max, indexmode.Wrap)
	assert.True(t, ok)
	assert.Equal(t, b, a)

	c, ok := indexmode.Resolve(7, max, indexmode.Wrap)
	assert.True(t, ok)
	d, ok := indexmode.Resolve(2, max, indexmode.Wrap)
	assert.True(t, ok)
	assert.Equal(t, d, c)
}
