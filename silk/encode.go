package silk

const nlsfMaxResidual = nlsfQuantMaxAmplitude + 6 // largest escape coded residual

// EncodeIndices writes the side information of one frame, the inverse of
// DecodeIndices. st is the encoder's view of the channel state: it needs
// NbSubfr, FsKHz and the codebook and tables set by SetSampleRate, and its
// ECPrevLagIndex and ECPrevSignalType are updated as DecodeIndices updates
// the decoder's.
//
// NLSF residuals beyond the escape range are clamped.
func EncodeIndices(se SymbolEncoder, st *ChannelState, idx *SideInfoIndices, vadOrLBRR bool, cond CodingMode) {
	ix := 2*int(idx.SignalType) + int(idx.QuantOffsetType)
	if vadOrLBRR {
		se.EncodeICDF(ix-2, silk_type_offset_VAD_iCDF, 8)
	} else {
		se.EncodeICDF(ix, silk_type_offset_no_VAD_iCDF, 8)
	}

	if cond == CodeConditionally {
		se.EncodeICDF(int(idx.GainsIndices[0]), silk_delta_gain_iCDF, 8)
	} else {
		se.EncodeICDF(int(idx.GainsIndices[0])>>3, silk_gain_iCDF[idx.SignalType], 8)
		se.EncodeICDF(int(idx.GainsIndices[0])&7, silk_uniform8_iCDF, 8)
	}
	for i := 1; i < st.NbSubfr; i++ {
		se.EncodeICDF(int(idx.GainsIndices[i]), silk_delta_gain_iCDF, 8)
	}

	cb := st.NLSFCB
	se.EncodeICDF(int(idx.NLSFIndices[0]), cb.CB1ICDF[int(idx.SignalType>>1)*cb.NVectors:], 8)
	ecIx, _ := nlsfUnpack(cb, int(idx.NLSFIndices[0]))
	for i := 0; i < cb.Order; i++ {
		icdf := cb.ECICDF[ecIx[i]:]
		res := silkLimitInt(int(idx.NLSFIndices[i+1]), -nlsfMaxResidual, nlsfMaxResidual)
		switch {
		case res >= nlsfQuantMaxAmplitude:
			se.EncodeICDF(2*nlsfQuantMaxAmplitude, icdf, 8)
			se.EncodeICDF(res-nlsfQuantMaxAmplitude, silk_NLSF_EXT_iCDF, 8)
		case res <= -nlsfQuantMaxAmplitude:
			se.EncodeICDF(0, icdf, 8)
			se.EncodeICDF(-res-nlsfQuantMaxAmplitude, silk_NLSF_EXT_iCDF, 8)
		default:
			se.EncodeICDF(res+nlsfQuantMaxAmplitude, icdf, 8)
		}
	}

	if st.NbSubfr == maxNbSubfr {
		se.EncodeICDF(int(idx.NLSFInterpCoefQ2), silk_NLSF_interpolation_factor_iCDF, 8)
	}

	if idx.SignalType == TypeVoiced {
		absolute := true
		if cond == CodeConditionally && st.ECPrevSignalType == TypeVoiced {
			// Deltas outside [-8, 11] escape to absolute coding.
			delta := int(idx.LagIndex) - st.ECPrevLagIndex
			if delta < -8 || delta > 11 {
				delta = 0
			} else {
				delta += 9
				absolute = false
			}
			se.EncodeICDF(delta, silk_pitch_delta_iCDF, 8)
		}
		if absolute {
			half := st.FsKHz >> 1
			se.EncodeICDF(int(idx.LagIndex)/half, silk_pitch_lag_iCDF, 8)
			se.EncodeICDF(int(idx.LagIndex)%half, st.pitchLagLowBitsICDF, 8)
		}
		st.ECPrevLagIndex = int(idx.LagIndex)

		se.EncodeICDF(int(idx.ContourIndex), st.pitchContourICDF, 8)

		se.EncodeICDF(int(idx.PERIndex), silk_LTP_per_index_iCDF, 8)
		for k := 0; k < st.NbSubfr; k++ {
			se.EncodeICDF(int(idx.LTPIndex[k]), silk_LTP_gain_iCDF_ptrs[idx.PERIndex], 8)
		}

		if cond == CodeIndependently {
			se.EncodeICDF(int(idx.LTPScaleIndex), silk_LTPscale_iCDF, 8)
		}
	}
	st.ECPrevSignalType = int(idx.SignalType)

	se.EncodeICDF(int(idx.Seed), silk_uniform4_iCDF, 8)
}
