package economy

import (
	"math/bits"

	"github.com/yieldgrid/game-core/gridcore/game"
)

// mulDiv computes floor(a*b/den) over the full 128-bit intermediate so large
// micro-unit amounts cannot silently wrap.
func mulDiv(a, b, den uint64) (uint64, error) {
	if den == 0 {
		return 0, game.ErrArithmeticOverflow
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= den {
		return 0, game.ErrArithmeticOverflow
	}
	q, _ := bits.Div64(hi, lo, den)
	return q, nil
}

// applyBps scales v by a basis-point factor, rounding down.
func applyBps(v uint64, bps uint16) (uint64, error) {
	return mulDiv(v, uint64(bps), game.BasisPoints)
}
