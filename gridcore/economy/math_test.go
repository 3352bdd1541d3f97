package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yieldgrid/game-core/gridcore/game"
)

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint64
		den     uint64
		want    uint64
		wantErr bool
	}{
		{name: "simple", a: 10, b: 3, den: 2, want: 15},
		{name: "floors", a: 7, b: 3, den: 2, want: 10},
		{name: "zero numerator", a: 0, b: 100, den: 7, want: 0},
		{
			// Intermediate product exceeds 64 bits but the quotient fits.
			name: "wide intermediate",
			a:    ^uint64(0) / 2,
			b:    4,
			den:  8,
			want: ^uint64(0) / 4,
		},
		{name: "quotient overflows", a: ^uint64(0), b: 2, den: 1, wantErr: true},
		{name: "zero denominator", a: 1, b: 1, den: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mulDiv(tt.a, tt.b, tt.den)
			if tt.wantErr {
				assert.ErrorIs(t, err, game.ErrArithmeticOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyBps(t *testing.T) {
	v, err := applyBps(6_000000, 2000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_200000), v)

	v, err = applyBps(1_000000, 10000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000000), v)

	v, err = applyBps(1_000000, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}
