package silk

// nlsfUnpack expands the packed entropy selectors of stage-1 vector
// cb1Index into per-coefficient residual iCDF offsets and backward
// prediction coefficients.
func nlsfUnpack(cb *NLSFCodebook, cb1Index int) (ecIx [maxLPCOrder]int, predQ8 [maxLPCOrder]uint8) {
	sel := cb.ECSel[cb1Index*cb.Order/2:]
	for i := 0; i < cb.Order; i += 2 {
		entry := sel[i/2]
		ecIx[i] = int((entry>>1)&7) * (2*nlsfQuantMaxAmplitude + 1)
		predQ8[i] = cb.PredQ8[i+int(entry&1)*(cb.Order-1)]
		ecIx[i+1] = int((entry>>5)&7) * (2*nlsfQuantMaxAmplitude + 1)
		// The last coefficient has no successor to predict from.
		if i+1 < cb.Order-1 {
			predQ8[i+1] = cb.PredQ8[i+int((entry>>4)&1)*(cb.Order-1)+1]
		}
	}
	return ecIx, predQ8
}

// nlsfResidualDequant reconstructs the Q10 stage-2 residuals, predicting
// each coefficient backwards from the one after it.
func nlsfResidualDequant(indices []int8, predQ8 *[maxLPCOrder]uint8, quantStepSizeQ16 int32, order int) [maxLPCOrder]int16 {
	var resQ10 [maxLPCOrder]int16
	var outQ10 int32
	for i := order - 1; i >= 0; i-- {
		predQ10 := silkSMULBB(outQ10, int32(predQ8[i])) >> 8
		outQ10 = int32(indices[i]) << 10
		if outQ10 > 0 {
			outQ10 -= nlsfQuantLevelAdjQ10
		} else if outQ10 < 0 {
			outQ10 += nlsfQuantLevelAdjQ10
		}
		outQ10 = silkSMLAWB(predQ10, outQ10, quantStepSizeQ16)
		resQ10[i] = int16(outQ10)
	}
	return resQ10
}

// nlsfDecode reconstructs a stabilized Q15 NLSF vector from the stage-1
// index and residual indices in indices.
func nlsfDecode(indices *[maxLPCOrder + 1]int8, cb *NLSFCodebook) [maxLPCOrder]int16 {
	var nlsfQ15 [maxLPCOrder]int16
	cb1 := int(indices[0])
	_, predQ8 := nlsfUnpack(cb, cb1)
	resQ10 := nlsfResidualDequant(indices[1:], &predQ8, cb.QuantStepSizeQ16, cb.Order)

	base := cb.CB1NLSFQ8[cb1*cb.Order:]
	wght := cb.CB1WghtQ9[cb1*cb.Order:]
	for i := 0; i < cb.Order; i++ {
		v := (int32(resQ10[i])<<14)/int32(wght[i]) + int32(base[i])<<7
		nlsfQ15[i] = int16(silkLimit32(v, 0, 32767))
	}

	nlsfStabilize(nlsfQ15[:cb.Order], cb.DeltaMinQ15)
	return nlsfQ15
}

const nlsfStabilizeMaxLoops = 20

// nlsfStabilize enforces the minimum spacing deltaMinQ15 between adjacent
// NLSFs and to the band edges 0 and 1<<15. deltaMinQ15 has len(nlsfQ15)+1
// entries.
func nlsfStabilize(nlsfQ15, deltaMinQ15 []int16) {
	order := len(nlsfQ15)
	for loops := 0; loops < nlsfStabilizeMaxLoops; loops++ {
		// Find the smallest distance.
		minDiff := int32(nlsfQ15[0]) - int32(deltaMinQ15[0])
		idx := 0
		for i := 1; i < order; i++ {
			diff := int32(nlsfQ15[i]) - (int32(nlsfQ15[i-1]) + int32(deltaMinQ15[i]))
			if diff < minDiff {
				minDiff = diff
				idx = i
			}
		}
		diff := int32(1<<15) - (int32(nlsfQ15[order-1]) + int32(deltaMinQ15[order]))
		if diff < minDiff {
			minDiff = diff
			idx = order
		}
		if minDiff >= 0 {
			return
		}

		switch idx {
		case 0:
			nlsfQ15[0] = deltaMinQ15[0]
		case order:
			nlsfQ15[order-1] = int16(1<<15 - int32(deltaMinQ15[order]))
		default:
			// Move the pair apart around its centre, keeping the centre
			// far enough from both edges.
			minCenter := int32(deltaMinQ15[idx]) >> 1
			for k := 0; k < idx; k++ {
				minCenter += int32(deltaMinQ15[k])
			}
			maxCenter := int32(1<<15) - int32(deltaMinQ15[idx])>>1
			for k := order; k > idx; k-- {
				maxCenter -= int32(deltaMinQ15[k])
			}
			center := silkLimit32(silkRSHIFT_ROUND(int32(nlsfQ15[idx-1])+int32(nlsfQ15[idx]), 1), minCenter, maxCenter)
			nlsfQ15[idx-1] = int16(center - int32(deltaMinQ15[idx])>>1)
			nlsfQ15[idx] = nlsfQ15[idx-1] + deltaMinQ15[idx]
		}
	}

	// Fall back to sorting and clamping in both directions.
	insertionSortInt16(nlsfQ15)
	nlsfQ15[0] = max(nlsfQ15[0], deltaMinQ15[0])
	for i := 1; i < order; i++ {
		nlsfQ15[i] = max(nlsfQ15[i], silkAddSat16(nlsfQ15[i-1], deltaMinQ15[i]))
	}
	nlsfQ15[order-1] = min(nlsfQ15[order-1], int16(1<<15-int32(deltaMinQ15[order])))
	for i := order - 2; i >= 0; i-- {
		nlsfQ15[i] = min(nlsfQ15[i], nlsfQ15[i+1]-deltaMinQ15[i+1])
	}
}

func insertionSortInt16(a []int16) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// nlsfInterpolate blends the previous and current NLSF vectors with a Q2
// weight on the current one.
func nlsfInterpolate(prevQ15, curQ15 *[maxLPCOrder]int16, coefQ2 int, order int) [maxLPCOrder]int16 {
	var out [maxLPCOrder]int16
	for i := 0; i < order; i++ {
		out[i] = int16(int32(prevQ15[i]) + (int32(coefQ2)*(int32(curQ15[i])-int32(prevQ15[i])))>>2)
	}
	return out
}
