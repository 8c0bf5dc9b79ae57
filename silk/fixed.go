package silk

import "math/bits"

// Fixed-point helpers named after the libopus SigProc_FIX.h macros they
// implement. Operand truncation to 16 bits is explicit in the conversions.

func silkLimitInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func silkLimit32(x, lo, hi int32) int32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func silkAbs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// silkRSHIFT_ROUND is a right shift with rounding to nearest.
func silkRSHIFT_ROUND(x int32, shift int) int32 {
	if shift == 1 {
		return (x >> 1) + (x & 1)
	}
	return ((x >> (shift - 1)) + 1) >> 1
}

func silkRSHIFT_ROUND64(x int64, shift int) int64 {
	if shift == 1 {
		return (x >> 1) + (x & 1)
	}
	return ((x >> (shift - 1)) + 1) >> 1
}

// silkSMULWB multiplies a by the low 16 bits of b and keeps the top 32 of 48 bits.
func silkSMULWB(a, b int32) int32 {
	return int32((int64(a) * int64(int16(b))) >> 16)
}

// silkSMLAWB is a + silkSMULWB(b, c).
func silkSMLAWB(a, b, c int32) int32 {
	return a + int32((int64(b)*int64(int16(c)))>>16)
}

// silkSMULBB multiplies the low 16 bits of both operands.
func silkSMULBB(a, b int32) int32 {
	return int32(int16(a)) * int32(int16(b))
}

// silkSMULWW is (a * b) >> 16 with a 64-bit intermediate.
func silkSMULWW(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 16)
}

func silkSMLAWW(a, b, c int32) int32 {
	return a + int32((int64(b)*int64(c))>>16)
}

func silkSMULL(a, b int32) int64 {
	return int64(a) * int64(b)
}

// silkSMMUL returns the top 32 bits of the 64-bit product.
func silkSMMUL(a, b int32) int32 {
	return int32(silkSMULL(a, b) >> 32)
}

func silkSAT16(x int32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}
	return int16(x)
}

func silkLShiftSAT32(x int32, shift int) int32 {
	v := int64(x) << shift
	if v > int64(silkInt32Max) {
		return silkInt32Max
	}
	if v < int64(silkInt32Min) {
		return silkInt32Min
	}
	return int32(v)
}

func silkSubSat32(a, b int32) int32 {
	v := int64(a) - int64(b)
	if v > int64(silkInt32Max) {
		return silkInt32Max
	}
	if v < int64(silkInt32Min) {
		return silkInt32Min
	}
	return int32(v)
}

// silkDiv32 divides, returning 0 for a zero divisor.
func silkDiv32(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	return a / b
}

// silkInverse32VarQ approximates (1 << q) / b32.
func silkInverse32VarQ(b32 int32, q int) int32 {
	if b32 == 0 || q <= 0 {
		return 0
	}
	bHeadrm := silkCLZ32(silkAbs32(b32)) - 1
	b32Nrm := b32 << uint(bHeadrm)

	b32Inv := silkDiv32(int32(0x7fffffff>>2), b32Nrm>>16)
	result := b32Inv << 16

	errQ32 := ((1 << 29) - silkSMULWB(b32Nrm, b32Inv)) << 3
	result = silkSMLAWW(result, errQ32, b32Inv)

	lshift := 61 - bHeadrm - q
	if lshift <= 0 {
		return silkLShiftSAT32(result, -lshift)
	}
	if lshift < 32 {
		return result >> uint(lshift)
	}
	return 0
}

func silkCLZ32(x int32) int {
	return bits.LeadingZeros32(uint32(x))
}

// silkCLZ_FRAC returns the leading zero count of in and the 7 bits that
// follow the leading one.
func silkCLZ_FRAC(in int32) (lz int, fracQ7 int32) {
	lz = silkCLZ32(in)
	fracQ7 = int32(bits.RotateLeft32(uint32(in), -(24-lz)) & 0x7f)
	return lz, fracQ7
}

// silkFixConst converts x to Q-format q, rounding to nearest.
func silkFixConst(x float64, q int) int32 {
	return int32(x*float64(int64(1)<<q) + 0.5)
}

const (
	silkInt32Max = int32(^uint32(0) >> 1)
	silkInt32Min = -silkInt32Max - 1
)

func silkAddSat16(a, b int16) int16 {
	return silkSAT16(int32(a) + int32(b))
}

// silkMul32FracQ is (a * b) >> q with rounding.
func silkMul32FracQ(a, b int32, q int) int32 {
	return int32(silkRSHIFT_ROUND64(silkSMULL(a, b), q))
}

// silkSMLABB is a + silkSMULBB(b, c).
func silkSMLABB(a, b, c int32) int32 {
	return a + int32(int16(b))*int32(int16(c))
}
