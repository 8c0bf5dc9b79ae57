package rangecoding

import "math/bits"

// fracThresholds are the Q15 cutoffs for one more eighth of a bit, as in
// libopus ec_tell_frac.
var fracThresholds = [8]uint32{35733, 38967, 42495, 46340, 50535, 55109, 60097, 65535}

func ilog(x uint32) int {
	return bits.Len32(x)
}

// tell is the bit count rounded up to a whole bit.
func tell(nbits int, rng uint32) int {
	return nbits - ilog(rng)
}

// tellFrac is the bit count in 1/8 bit units.
func tellFrac(nbits int, rng uint32) int {
	l := ilog(rng)
	r := rng >> uint(l-16)
	b := int(r>>12) - 8
	if r > fracThresholds[b] {
		b++
	}
	return nbits<<3 - (l<<3 + b)
}
