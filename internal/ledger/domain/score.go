package domain

import "math/bits"

// QuadraticScore returns (Σ√amount)² − Σamount over the set's contribution
// records. The true value is non-negative, but floor-rounded roots can push
// the squared sum below the funding total for few large contributions; the
// result is clamped to zero in that case rather than underflowing.
//
// Sums and the square use checked 64-bit arithmetic; ErrArithmeticOverflow
// is returned instead of wrapping.
func (c *Contributions) QuadraticScore() (uint64, error) {
	var sumRoots, total uint64
	for _, r := range c.records {
		var carry uint64
		sumRoots, carry = bits.Add64(sumRoots, FloorSqrt(r.Amount), 0)
		if carry != 0 {
			return 0, ErrArithmeticOverflow
		}
		total, carry = bits.Add64(total, r.Amount, 0)
		if carry != 0 {
			return 0, ErrArithmeticOverflow
		}
	}

	hi, squared := bits.Mul64(sumRoots, sumRoots)
	if hi != 0 {
		return 0, ErrArithmeticOverflow
	}
	if squared < total {
		return 0, nil
	}
	return squared - total, nil
}

// MatchAmount proportions the matching pool by score/totalScore, flooring
// the result. The product score*pool is carried in 128 bits so realistic
// magnitudes never wrap. totalScore must include score; callers passing a
// score greater than totalScore get ErrArithmeticOverflow.
func MatchAmount(score, totalScore, pool uint64) (uint64, error) {
	if totalScore == 0 || score == 0 || pool == 0 {
		return 0, nil
	}
	if score > totalScore {
		return 0, ErrArithmeticOverflow
	}

	hi, lo := bits.Mul64(score, pool)
	// score <= totalScore and pool < 2^64 guarantee hi < totalScore, which
	// Div64 requires. The check stays as a hard stop for corrupted input.
	if hi >= totalScore {
		return 0, ErrArithmeticOverflow
	}
	quo, _ := bits.Div64(hi, lo, totalScore)
	return quo, nil
}
