package silk

// ReconstructParameters dequantizes the indices of one frame into synthesis
// parameters. It updates st.LastGainIndex and st.PrevNLSFQ15; idx.PERIndex
// is cleared for frames that are not voiced.
func ReconstructParameters(st *ChannelState, idx *SideInfoIndices, cond CodingMode) DecoderControl {
	var ctrl DecoderControl
	order := st.LPCOrder

	ctrl.GainsQ16 = gainsDequant(&idx.GainsIndices, &st.LastGainIndex, cond == CodeConditionally, st.NbSubfr)

	// NLSFs and the LPC coefficients of the second half of the frame.
	nlsfQ15 := nlsfDecode(&idx.NLSFIndices, st.NLSFCB)
	ctrl.PredCoefQ12[1] = nlsf2A(nlsfQ15[:order], order)

	// No interpolation right after a reset, the previous NLSFs are stale.
	if st.FirstFrameAfterReset {
		idx.NLSFInterpCoefQ2 = 4
	}
	if idx.NLSFInterpCoefQ2 < 4 {
		nlsf0Q15 := nlsfInterpolate(&st.PrevNLSFQ15, &nlsfQ15, int(idx.NLSFInterpCoefQ2), order)
		ctrl.PredCoefQ12[0] = nlsf2A(nlsf0Q15[:order], order)
	} else {
		ctrl.PredCoefQ12[0] = ctrl.PredCoefQ12[1]
	}

	st.PrevNLSFQ15 = nlsfQ15

	// Shrink the poles after packet loss.
	if st.LossCnt() != 0 {
		bwExpander(ctrl.PredCoefQ12[0][:order], bweAfterLossQ16)
		bwExpander(ctrl.PredCoefQ12[1][:order], bweAfterLossQ16)
	}

	if idx.SignalType != TypeVoiced {
		idx.PERIndex = 0
		return ctrl
	}

	ctrl.PitchL = DecodePitch(int(idx.LagIndex), int(idx.ContourIndex), st.FsKHz, st.NbSubfr)

	cbk := silk_LTP_vq_ptrs_Q7[idx.PERIndex]
	for k := 0; k < st.NbSubfr; k++ {
		row := &cbk[idx.LTPIndex[k]]
		for i := 0; i < ltpOrder; i++ {
			ctrl.LTPCoefQ14[k*ltpOrder+i] = int16(row[i]) << 7
		}
	}
	ctrl.LTPScaleQ14 = int32(silk_LTPScales_table_Q14[idx.LTPScaleIndex])
	return ctrl
}
