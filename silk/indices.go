package silk

// DecodeIndices reads the side information of one frame from sd in
// bitstream order. vadOrLBRR selects the signal type table for frames with
// voice activity (or LBRR frames); cond is the frame's coding mode.
//
// Only st.ECPrevLagIndex and st.ECPrevSignalType are modified.
func DecodeIndices(sd SymbolDecoder, st *ChannelState, vadOrLBRR bool, cond CodingMode) SideInfoIndices {
	var idx SideInfoIndices

	// Signal type and quantizer offset.
	var ix int
	if vadOrLBRR {
		ix = sd.DecodeICDF(silk_type_offset_VAD_iCDF, 8) + 2
	} else {
		ix = sd.DecodeICDF(silk_type_offset_no_VAD_iCDF, 8)
	}
	idx.SignalType = int8(ix >> 1)
	idx.QuantOffsetType = int8(ix & 1)

	// Gains. The first subframe is absolute unless coded conditionally.
	if cond == CodeConditionally {
		idx.GainsIndices[0] = int8(sd.DecodeICDF(silk_delta_gain_iCDF, 8))
	} else {
		msb := sd.DecodeICDF(silk_gain_iCDF[idx.SignalType], 8)
		lsb := sd.DecodeICDF(silk_uniform8_iCDF, 8)
		idx.GainsIndices[0] = int8(msb<<3 + lsb)
	}
	for i := 1; i < st.NbSubfr; i++ {
		idx.GainsIndices[i] = int8(sd.DecodeICDF(silk_delta_gain_iCDF, 8))
	}

	// NLSF stage 1, then the stage-2 residuals with escape coding.
	cb := st.NLSFCB
	idx.NLSFIndices[0] = int8(sd.DecodeICDF(cb.CB1ICDF[int(idx.SignalType>>1)*cb.NVectors:], 8))
	ecIx, _ := nlsfUnpack(cb, int(idx.NLSFIndices[0]))
	for i := 0; i < cb.Order; i++ {
		v := sd.DecodeICDF(cb.ECICDF[ecIx[i]:], 8)
		if v == 0 {
			v -= sd.DecodeICDF(silk_NLSF_EXT_iCDF, 8)
		} else if v == 2*nlsfQuantMaxAmplitude {
			v += sd.DecodeICDF(silk_NLSF_EXT_iCDF, 8)
		}
		idx.NLSFIndices[i+1] = int8(v - nlsfQuantMaxAmplitude)
	}

	if st.NbSubfr == maxNbSubfr {
		idx.NLSFInterpCoefQ2 = int8(sd.DecodeICDF(silk_NLSF_interpolation_factor_iCDF, 8))
	} else {
		idx.NLSFInterpCoefQ2 = 4
	}

	if idx.SignalType == TypeVoiced {
		// Pitch lag, delta coded against the previous voiced frame when
		// possible. A zero delta symbol escapes to absolute coding.
		absolute := true
		if cond == CodeConditionally && st.ECPrevSignalType == TypeVoiced {
			if d := sd.DecodeICDF(silk_pitch_delta_iCDF, 8); d > 0 {
				idx.LagIndex = int16(st.ECPrevLagIndex + d - 9)
				absolute = false
			}
		}
		if absolute {
			idx.LagIndex = int16(sd.DecodeICDF(silk_pitch_lag_iCDF, 8) * (st.FsKHz >> 1))
			idx.LagIndex += int16(sd.DecodeICDF(st.pitchLagLowBitsICDF, 8))
		}
		st.ECPrevLagIndex = int(idx.LagIndex)

		idx.ContourIndex = int8(sd.DecodeICDF(st.pitchContourICDF, 8))

		// LTP filter codebook and one index per subframe.
		idx.PERIndex = int8(sd.DecodeICDF(silk_LTP_per_index_iCDF, 8))
		for k := 0; k < st.NbSubfr; k++ {
			idx.LTPIndex[k] = int8(sd.DecodeICDF(silk_LTP_gain_iCDF_ptrs[idx.PERIndex], 8))
		}

		if cond == CodeIndependently {
			idx.LTPScaleIndex = int8(sd.DecodeICDF(silk_LTPscale_iCDF, 8))
		}
	}
	st.ECPrevSignalType = int(idx.SignalType)

	idx.Seed = int8(sd.DecodeICDF(silk_uniform4_iCDF, 8))
	return idx
}
