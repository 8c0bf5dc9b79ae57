package silk

// DecodePitch maps a lag index and contour index to one pitch lag per
// subframe, in samples at fsKHz. Every lag is clamped to
// [2 ms, 18 ms] at the given rate.
func DecodePitch(lagIndex, contourIndex, fsKHz, nbSubfr int) [maxNbSubfr]int {
	var pitchL [maxNbSubfr]int
	if nbSubfr > maxNbSubfr {
		nbSubfr = maxNbSubfr
	}

	minLag := peMinLagMs * fsKHz
	maxLag := peMaxLagMs * fsKHz
	lag := minLag + lagIndex
	for k := 0; k < nbSubfr; k++ {
		pitchL[k] = silkLimitInt(lag+contourOffset(k, contourIndex, fsKHz, nbSubfr), minLag, maxLag)
	}
	return pitchL
}

// contourOffset returns the contour table entry for subframe k.
// Contour indices past the end of the table, which the range decoder never
// produces, select the last column.
func contourOffset(k, contourIndex, fsKHz, nbSubfr int) int {
	var row []int8
	if fsKHz == 8 {
		if nbSubfr == maxNbSubfr {
			row = silk_CB_lags_stage2[k][:]
		} else {
			row = silk_CB_lags_stage2_10_ms[k][:]
		}
	} else {
		if nbSubfr == maxNbSubfr {
			row = silk_CB_lags_stage3[k][:]
		} else {
			row = silk_CB_lags_stage3_10_ms[k][:]
		}
	}
	return int(row[silkLimitInt(contourIndex, 0, len(row)-1)])
}
