package silk

// gainsDequant converts gain indices to Q16 gains. prevIndex carries the
// last subframe's quantizer level between frames and is updated in place.
func gainsDequant(ind *[maxNbSubfr]int8, prevIndex *int8, conditional bool, nbSubfr int) [maxNbSubfr]int32 {
	var gainsQ16 [maxNbSubfr]int32
	prev := int(*prevIndex)
	for k := 0; k < nbSubfr; k++ {
		if k == 0 && !conditional {
			// Gain index is not allowed to go down more than 16 steps (~21.8 dB).
			prev = max(int(ind[k]), prev-16)
		} else {
			indTmp := int(ind[k]) + minDeltaGainQuant
			doubleStep := 2*maxDeltaGainQuant - nLevelsQGain + prev
			if indTmp > doubleStep {
				prev += 2*indTmp - doubleStep
			} else {
				prev += indTmp
			}
		}
		prev = silkLimitInt(prev, 0, nLevelsQGain-1)
		gainsQ16[k] = silkLog2Lin(min(silkSMULWB(gainInvScaleQ16, int32(prev))+gainOffsetQ7, maxLogGainQ7))
	}
	*prevIndex = int8(prev)
	return gainsQ16
}

// QuantizeGains quantizes Q16 subframe gains to indices, the encoder side of
// gain coding. It returns the indices and the quantizer level of the last
// subframe, to be passed as prevIndex for the next frame. The gains the
// decoder will reconstruct from the indices are returned as well.
func QuantizeGains(gainsQ16 [maxNbSubfr]int32, prevIndex int8, conditional bool, nbSubfr int) (ind [maxNbSubfr]int8, lastIndex int8, quantQ16 [maxNbSubfr]int32) {
	prev := int32(prevIndex)
	for k := 0; k < nbSubfr; k++ {
		// Convert to log scale, scale and floor to an integer level.
		level := silkSMULWB(gainScaleQ16, silkLin2Log(gainsQ16[k])-gainOffsetQ7)

		// Round towards the previous level to reduce oscillation.
		if level < prev {
			level++
		}
		level = silkLimit32(level, 0, nLevelsQGain-1)

		if k == 0 && !conditional {
			// Full index, at most 4 levels below the previous one.
			level = silkLimit32(level, prev+minDeltaGainQuant, nLevelsQGain-1)
			ind[k] = int8(level)
			prev = level
		} else {
			delta := level - prev

			// Limit for a double quantization step above the threshold.
			doubleStepThreshold := int32(2*maxDeltaGainQuant - nLevelsQGain + prev)
			if delta > doubleStepThreshold {
				delta = doubleStepThreshold + ((delta - doubleStepThreshold + 1) >> 1)
			}
			delta = silkLimit32(delta, minDeltaGainQuant, maxDeltaGainQuant)

			if delta > doubleStepThreshold {
				prev += 2*delta - doubleStepThreshold
				prev = min(prev, nLevelsQGain-1)
			} else {
				prev += delta
			}
			ind[k] = int8(delta - minDeltaGainQuant)
		}
		quantQ16[k] = silkLog2Lin(min(silkSMULWB(gainInvScaleQ16, prev)+gainOffsetQ7, maxLogGainQ7))
	}
	return ind, int8(prev), quantQ16
}
