package silk

const (
	invPredGainQA        = 24
	invPredGainALimitQ24 = 16773022 // 0.99975 in Q24
)

// Root ordering that keeps the polynomial products well-conditioned.
var (
	nlsf2aOrdering16 = [16]int{0, 15, 8, 7, 4, 11, 12, 3, 2, 13, 10, 5, 6, 9, 14, 1}
	nlsf2aOrdering10 = [10]int{0, 9, 6, 3, 4, 5, 8, 1, 2, 7}
)

// nlsf2aFindPoly builds the coefficients of one of the two symmetric
// polynomials from the cosines at every other position of cLSF.
func nlsf2aFindPoly(out []int32, cLSF []int32, dd int) {
	out[0] = 1 << nlsf2aQA
	out[1] = -cLSF[0]
	for k := 1; k < dd; k++ {
		ftmp := cLSF[2*k]
		out[k+1] = out[k-1]<<1 - int32(silkRSHIFT_ROUND64(silkSMULL(ftmp, out[k]), nlsf2aQA))
		for n := k; n > 1; n-- {
			out[n] += out[n-2] - int32(silkRSHIFT_ROUND64(silkSMULL(ftmp, out[n-1]), nlsf2aQA))
		}
		out[1] -= ftmp
	}
}

// nlsf2A converts a Q15 NLSF vector of order 10 or 16 to Q12 LPC
// coefficients, bandwidth-expanding until the filter is stable.
func nlsf2A(nlsfQ15 []int16, order int) [maxLPCOrder]int16 {
	var aQ12 [maxLPCOrder]int16
	ordering := nlsf2aOrdering10[:]
	if order == maxLPCOrder {
		ordering = nlsf2aOrdering16[:]
	}

	// Cosine of each NLSF by linear interpolation in the table.
	var cosQA [maxLPCOrder]int32
	for k := 0; k < order; k++ {
		fInt := int32(nlsfQ15[k]) >> (15 - 7)
		fFrac := int32(nlsfQ15[k]) - fInt<<(15-7)
		c := int32(silk_LSFCosTab_FIX_Q12[fInt])
		delta := int32(silk_LSFCosTab_FIX_Q12[fInt+1]) - c
		cosQA[ordering[k]] = silkRSHIFT_ROUND(c<<8+delta*fFrac, 20-nlsf2aQA)
	}

	dd := order >> 1
	var p, q [maxLPCOrder/2 + 1]int32
	nlsf2aFindPoly(p[:], cosQA[:], dd)
	nlsf2aFindPoly(q[:], cosQA[1:], dd)

	var a32QA1 [maxLPCOrder]int32
	for k := 0; k < dd; k++ {
		pTmp := p[k+1] + p[k]
		qTmp := q[k+1] - q[k]
		a32QA1[k] = -qTmp - pTmp
		a32QA1[order-k-1] = qTmp - pTmp
	}

	lpcFit(aQ12[:order], a32QA1[:order], 12, nlsf2aQA+1)

	for i := 0; lpcInversePredGain(aQ12[:order]) == 0 && i < maxLPCStabilizeIt; i++ {
		// Bandwidth expansion with a chirp that grows each iteration.
		bwExpander32(a32QA1[:order], 65536-int32(2)<<uint(i))
		for k := 0; k < order; k++ {
			aQ12[k] = int16(silkRSHIFT_ROUND(a32QA1[k], nlsf2aQA+1-12))
		}
	}
	return aQ12
}

// bwExpander applies chirp bandwidth expansion to Q12 coefficients.
func bwExpander(ar []int16, chirpQ16 int32) {
	n := len(ar)
	if n == 0 {
		return
	}
	chirpMinusOneQ16 := chirpQ16 - 65536
	for i := 0; i < n-1; i++ {
		ar[i] = int16(silkRSHIFT_ROUND(chirpQ16*int32(ar[i]), 16))
		chirpQ16 += silkRSHIFT_ROUND(chirpQ16*chirpMinusOneQ16, 16)
	}
	ar[n-1] = int16(silkRSHIFT_ROUND(chirpQ16*int32(ar[n-1]), 16))
}

func bwExpander32(ar []int32, chirpQ16 int32) {
	n := len(ar)
	if n == 0 {
		return
	}
	chirpMinusOneQ16 := chirpQ16 - 65536
	for i := 0; i < n-1; i++ {
		ar[i] = silkSMULWW(chirpQ16, ar[i])
		chirpQ16 += silkRSHIFT_ROUND(chirpQ16*chirpMinusOneQ16, 16)
	}
	ar[n-1] = silkSMULWW(chirpQ16, ar[n-1])
}

// lpcFit converts qIn coefficients to 16-bit qOut coefficients, shrinking
// the filter while any coefficient would overflow.
func lpcFit(aQOut []int16, aQIn []int32, qOut, qIn int) {
	order := len(aQOut)
	i := 0
	for ; i < 10; i++ {
		maxAbs := int32(0)
		idx := 0
		for k := 0; k < order; k++ {
			if v := silkAbs32(aQIn[k]); v > maxAbs {
				maxAbs = v
				idx = k
			}
		}
		maxAbs = silkRSHIFT_ROUND(maxAbs, qIn-qOut)
		if maxAbs <= 32767 {
			break
		}
		// Reduce magnitude of prediction coefficients.
		maxAbs = min(maxAbs, 163838) // (0x7FFF*0.999*5)
		chirpQ16 := silkFixConst(0.999, 16) - silkDiv32((maxAbs-32767)<<14, (maxAbs*int32(idx+1))>>2)
		bwExpander32(aQIn, chirpQ16)
	}

	if i == 10 {
		// Reached the last iteration, clip the coefficients.
		for k := 0; k < order; k++ {
			aQOut[k] = silkSAT16(silkRSHIFT_ROUND(aQIn[k], qIn-qOut))
			aQIn[k] = int32(aQOut[k]) << uint(qIn-qOut)
		}
		return
	}
	for k := 0; k < order; k++ {
		aQOut[k] = int16(silkRSHIFT_ROUND(aQIn[k], qIn-qOut))
	}
}

// lpcInversePredGain returns the inverse prediction gain of a Q12 filter in
// Q30, or 0 if the filter is unstable or its gain exceeds 1e4.
func lpcInversePredGain(aQ12 []int16) int32 {
	var aQA [maxLPCOrder]int32
	dcResp := int32(0)
	for k, a := range aQ12 {
		dcResp += int32(a)
		aQA[k] = int32(a) << (invPredGainQA - 12)
	}
	// A DC response of 1 or more means the filter is unstable.
	if dcResp >= 4096 {
		return 0
	}
	return lpcInversePredGainQA(aQA[:len(aQ12)])
}

func lpcInversePredGainQA(aQA []int32) int32 {
	invGainQ30 := int32(1 << 30)
	for k := len(aQA) - 1; k > 0; k-- {
		if aQA[k] > invPredGainALimitQ24 || aQA[k] < -invPredGainALimitQ24 {
			return 0
		}

		// Reflection coefficient.
		rcQ31 := -(aQA[k] << (31 - invPredGainQA))
		rcMult1Q30 := int32(1<<30) - silkSMMUL(rcQ31, rcQ31)

		invGainQ30 = silkSMMUL(invGainQ30, rcMult1Q30) << 2
		if invGainQ30 < maxPredictionPowerGainInvQ30 {
			return 0
		}

		mult2Q := 32 - silkCLZ32(silkAbs32(rcMult1Q30))
		rcMult2 := silkInverse32VarQ(rcMult1Q30, mult2Q+30)

		// Step-down recursion, updating the pair (n, k-n-1) in place.
		for n := 0; n < (k+1)>>1; n++ {
			tmp1 := aQA[n]
			tmp2 := aQA[k-n-1]
			v := silkRSHIFT_ROUND64(silkSMULL(silkSubSat32(tmp1, silkMul32FracQ(tmp2, rcQ31, 31)), rcMult2), mult2Q)
			if v > int64(silkInt32Max) || v < int64(silkInt32Min) {
				return 0
			}
			aQA[n] = int32(v)
			v = silkRSHIFT_ROUND64(silkSMULL(silkSubSat32(tmp2, silkMul32FracQ(tmp1, rcQ31, 31)), rcMult2), mult2Q)
			if v > int64(silkInt32Max) || v < int64(silkInt32Min) {
				return 0
			}
			aQA[k-n-1] = int32(v)
		}
	}

	if aQA[0] > invPredGainALimitQ24 || aQA[0] < -invPredGainALimitQ24 {
		return 0
	}
	rcQ31 := -(aQA[0] << (31 - invPredGainQA))
	rcMult1Q30 := int32(1<<30) - silkSMMUL(rcQ31, rcQ31)
	invGainQ30 = silkSMMUL(invGainQ30, rcMult1Q30) << 2
	if invGainQ30 < maxPredictionPowerGainInvQ30 {
		return 0
	}
	return invGainQ30
}
