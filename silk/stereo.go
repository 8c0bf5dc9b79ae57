package silk

// Stereo prediction weights are coded as an index into a 16-entry table
// plus one of stereoQuantSubSteps sub-steps between adjacent entries.

// stereoPredLevel returns the Q13 weight of table interval i, sub-step j.
func stereoPredLevel(i, j int) int32 {
	lowQ13 := int32(silk_stereo_pred_quant_Q13[i])
	stepQ13 := silkSMULWB(int32(silk_stereo_pred_quant_Q13[i+1])-lowQ13, silkFixConst(0.5/stereoQuantSubSteps, 16))
	return silkSMLABB(lowQ13, stepQ13, int32(2*j+1))
}

// DecodeStereoPred decodes the two Q13 mid/side prediction weights of a
// stereo frame.
func DecodeStereoPred(sd SymbolDecoder) [2]int32 {
	var ix [2][3]int
	n := sd.DecodeICDF(silk_stereo_pred_joint_iCDF, 8)
	ix[0][2] = n / 5
	ix[1][2] = n - 5*ix[0][2]
	for i := 0; i < 2; i++ {
		ix[i][0] = sd.DecodeICDF(silk_uniform3_iCDF, 8)
		ix[i][1] = sd.DecodeICDF(silk_uniform5_iCDF, 8)
	}

	var predQ13 [2]int32
	for i := 0; i < 2; i++ {
		predQ13[i] = stereoPredLevel(ix[i][0]+3*ix[i][2], ix[i][1])
	}
	predQ13[0] -= predQ13[1]
	return predQ13
}

// DecodeMidOnly reports whether a stereo frame codes the mid channel only.
func DecodeMidOnly(sd SymbolDecoder) bool {
	return sd.DecodeICDF(silk_stereo_only_code_mid_iCDF, 8) != 0
}

// QuantizeStereoPred quantizes two Q13 prediction weights to stereo
// indices. It returns the indices and the weights DecodeStereoPred will
// reconstruct from them.
func QuantizeStereoPred(predQ13 [2]int32) (ix [2][3]int8, quantQ13 [2]int32) {
	for n := 0; n < 2; n++ {
		errMinQ13 := silkInt32Max
		var best int32
		var bi, bj int
	search:
		for i := 0; i < len(silk_stereo_pred_quant_Q13)-1; i++ {
			for j := 0; j < stereoQuantSubSteps; j++ {
				lvl := stereoPredLevel(i, j)
				errQ13 := silkAbs32(predQ13[n] - lvl)
				if errQ13 >= errMinQ13 {
					// Levels increase, so the error only grows from here.
					break search
				}
				errMinQ13 = errQ13
				best, bi, bj = lvl, i, j
			}
		}
		ix[n][2] = int8(bi / 3)
		ix[n][0] = int8(bi - 3*(bi/3))
		ix[n][1] = int8(bj)
		quantQ13[n] = best
	}
	quantQ13[0] -= quantQ13[1]
	return ix, quantQ13
}

// EncodeStereoPred writes stereo prediction indices.
func EncodeStereoPred(se SymbolEncoder, ix *[2][3]int8) {
	se.EncodeICDF(int(5*ix[0][2]+ix[1][2]), silk_stereo_pred_joint_iCDF, 8)
	for i := 0; i < 2; i++ {
		se.EncodeICDF(int(ix[i][0]), silk_uniform3_iCDF, 8)
		se.EncodeICDF(int(ix[i][1]), silk_uniform5_iCDF, 8)
	}
}

// EncodeMidOnly writes the mid-only flag.
func EncodeMidOnly(se SymbolEncoder, midOnly bool) {
	s := 0
	if midOnly {
		s = 1
	}
	se.EncodeICDF(s, silk_stereo_only_code_mid_iCDF, 8)
}
