package silk

import "testing"

func TestDecodeIndicesUnvoicedScenario(t *testing.T) {
	st := mustChannelState(t, 16, 4)
	cb := st.NLSFCB

	// Type/offset symbol 1 in the VAD table is combined index 3.
	d := newScriptedDecoder(t,
		[]int{1},      // type/offset
		[]int{2, 5},   // gain MSB, LSB
		repeat(4, 3),  // gain deltas
		[]int{0},      // NLSF stage 1
		[]int{0, 2},   // residual 0 escapes down by 2
		repeat(4, 15), // remaining residuals
		[]int{4},      // interpolation
		[]int{3},      // seed
	)
	idx := DecodeIndices(d, st, true, CodeIndependently)
	d.done()

	if idx.SignalType != TypeUnvoiced || idx.QuantOffsetType != 1 {
		t.Errorf("signal type %d, offset %d, want 1, 1", idx.SignalType, idx.QuantOffsetType)
	}
	if idx.GainsIndices != [4]int8{21, 4, 4, 4} {
		t.Errorf("gain indices %v, want [21 4 4 4]", idx.GainsIndices)
	}
	if idx.NLSFIndices[1] != -6 {
		t.Errorf("first NLSF residual %d, want -6", idx.NLSFIndices[1])
	}
	for i := 2; i <= cb.Order; i++ {
		if idx.NLSFIndices[i] != 0 {
			t.Errorf("NLSF residual %d = %d, want 0", i-1, idx.NLSFIndices[i])
		}
	}
	if idx.NLSFInterpCoefQ2 != 4 || idx.Seed != 3 {
		t.Errorf("interp %d, seed %d, want 4, 3", idx.NLSFInterpCoefQ2, idx.Seed)
	}
	if st.ECPrevSignalType != TypeUnvoiced {
		t.Errorf("ECPrevSignalType = %d, want %d", st.ECPrevSignalType, TypeUnvoiced)
	}

	ecIx, _ := nlsfUnpack(cb, 0)
	want := [][]uint8{
		silk_type_offset_VAD_iCDF,
		silk_gain_iCDF[1],
		silk_uniform8_iCDF,
		silk_delta_gain_iCDF,
		silk_delta_gain_iCDF,
		silk_delta_gain_iCDF,
		cb.CB1ICDF,
		cb.ECICDF[ecIx[0]:],
		silk_NLSF_EXT_iCDF,
	}
	for i := 1; i < cb.Order; i++ {
		want = append(want, cb.ECICDF[ecIx[i]:])
	}
	want = append(want, silk_NLSF_interpolation_factor_iCDF, silk_uniform4_iCDF)
	if len(d.tables) != len(want) {
		t.Fatalf("decoded %d symbols, want %d", len(d.tables), len(want))
	}
	for i := range want {
		if !sameTable(d.tables[i], want[i]) {
			t.Errorf("symbol %d decoded against the wrong table", i)
		}
	}
}

func TestDecodeIndicesVoicedAbsolute(t *testing.T) {
	st := mustChannelState(t, 8, 2)
	st.ECPrevSignalType = TypeVoiced
	st.ECPrevLagIndex = 40

	d := newScriptedDecoder(t,
		[]int{2},      // voiced, offset 0
		[]int{3, 1},   // gain MSB, LSB
		[]int{6},      // gain delta
		[]int{5},      // NLSF stage 1
		repeat(4, 10), // residuals
		[]int{5, 3},   // lag high, lag low
		[]int{2},      // contour
		[]int{1},      // periodicity
		[]int{7, 15},  // LTP indices
		[]int{2},      // LTP scale
		[]int{0},      // seed
	)
	idx := DecodeIndices(d, st, true, CodeIndependently)
	d.done()

	if idx.SignalType != TypeVoiced || idx.QuantOffsetType != 0 {
		t.Errorf("signal type %d, offset %d, want 2, 0", idx.SignalType, idx.QuantOffsetType)
	}
	if idx.GainsIndices[0] != 25 {
		t.Errorf("first gain index %d, want 25", idx.GainsIndices[0])
	}
	if idx.NLSFInterpCoefQ2 != 4 {
		t.Errorf("interp %d, want 4 for 10 ms frames", idx.NLSFInterpCoefQ2)
	}
	if d.used(silk_NLSF_interpolation_factor_iCDF) {
		t.Error("interpolation factor decoded for a 10 ms frame")
	}
	if !sameTable(d.tables[1], silk_gain_iCDF[2]) {
		t.Error("first gain MSB not decoded with the voiced table")
	}
	if !sameTable(d.tables[4], st.NLSFCB.CB1ICDF[st.NLSFCB.NVectors:]) {
		t.Error("stage 1 not decoded with the voiced half of the codebook iCDF")
	}
	// Independent coding never delta codes the lag.
	if d.used(silk_pitch_delta_iCDF) {
		t.Error("pitch delta decoded under independent coding")
	}
	if !d.used(silk_uniform4_iCDF) || !d.used(silk_pitch_contour_10_ms_NB_iCDF) {
		t.Error("8 kHz 10 ms lag tables not used")
	}
	if !d.used(silk_LTP_gain_iCDF_1) {
		t.Error("LTP indices not decoded with the periodicity 1 table")
	}
	if idx.LagIndex != 23 || st.ECPrevLagIndex != 23 {
		t.Errorf("lag index %d, ECPrevLagIndex %d, want 23", idx.LagIndex, st.ECPrevLagIndex)
	}
	if idx.ContourIndex != 2 || idx.PERIndex != 1 || idx.LTPIndex != [4]int8{7, 15} || idx.LTPScaleIndex != 2 {
		t.Errorf("contour %d, PER %d, LTP %v, scale %d", idx.ContourIndex, idx.PERIndex, idx.LTPIndex, idx.LTPScaleIndex)
	}
}

// voicedConditionalPrefix is the part of a 16 kHz, 20 ms voiced frame coded
// conditionally that precedes the pitch lag.
func voicedConditionalPrefix() []int {
	var s []int
	s = append(s, 2)                // voiced
	s = append(s, repeat(4, 4)...)  // gain deltas
	s = append(s, 0)                // NLSF stage 1
	s = append(s, repeat(4, 16)...) // residuals
	s = append(s, 2)                // interpolation
	return s
}

func TestDecodeIndicesPitchLagCoding(t *testing.T) {
	tests := []struct {
		name       string
		prevSignal int
		lagSyms    []int
		wantLag    int16
		wantDelta  bool
	}{
		{"delta", TypeVoiced, []int{12}, 103, true},
		{"delta minimum", TypeVoiced, []int{1}, 92, true},
		{"delta escape", TypeVoiced, []int{0, 3, 7}, 31, true},
		{"previous unvoiced", TypeUnvoiced, []int{3, 7}, 31, false},
		{"previous inactive", TypeNoVoiceActivity, []int{20, 0}, 160, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := mustChannelState(t, 16, 4)
			st.ECPrevSignalType = tc.prevSignal
			st.ECPrevLagIndex = 100

			d := newScriptedDecoder(t,
				voicedConditionalPrefix(),
				tc.lagSyms,
				[]int{0},     // contour
				[]int{0},     // periodicity
				repeat(3, 4), // LTP indices
				[]int{1},     // seed, no LTP scale when conditional
			)
			idx := DecodeIndices(d, st, true, CodeConditionally)
			d.done()

			if idx.LagIndex != tc.wantLag {
				t.Errorf("lag index %d, want %d", idx.LagIndex, tc.wantLag)
			}
			if d.used(silk_pitch_delta_iCDF) != tc.wantDelta {
				t.Errorf("pitch delta decoded = %v, want %v", d.used(silk_pitch_delta_iCDF), tc.wantDelta)
			}
			if st.ECPrevLagIndex != int(tc.wantLag) || st.ECPrevSignalType != TypeVoiced {
				t.Errorf("state lag %d type %d, want %d, %d", st.ECPrevLagIndex, st.ECPrevSignalType, tc.wantLag, TypeVoiced)
			}
			if d.used(silk_LTPscale_iCDF) || idx.LTPScaleIndex != 0 {
				t.Errorf("LTP scale decoded under conditional coding (index %d)", idx.LTPScaleIndex)
			}
			if !sameTable(d.tables[1], silk_delta_gain_iCDF) {
				t.Error("first gain not delta coded under conditional coding")
			}
		})
	}
}

func TestDecodeIndicesNoLTPScaling(t *testing.T) {
	st := mustChannelState(t, 12, 4)
	d := newScriptedDecoder(t,
		[]int{3},      // voiced, offset 1
		[]int{0, 0},   // gain MSB, LSB
		repeat(0, 3),  // gain deltas
		[]int{31},     // NLSF stage 1
		repeat(4, 10), // residuals
		[]int{0},      // interpolation
		[]int{31, 5},  // lag high, lag low
		[]int{33},     // contour
		[]int{2},      // periodicity
		repeat(31, 4), // LTP indices
		[]int{2},      // seed
	)
	idx := DecodeIndices(d, st, true, CodeIndependentlyNoLTPScaling)
	d.done()

	if idx.LagIndex != 31*6+5 {
		t.Errorf("lag index %d, want %d", idx.LagIndex, 31*6+5)
	}
	if d.used(silk_LTPscale_iCDF) {
		t.Error("LTP scale decoded without LTP scaling")
	}
	if !d.used(silk_uniform6_iCDF) || !d.used(silk_pitch_contour_iCDF) {
		t.Error("12 kHz lag tables not used")
	}
}

func TestDecodeIndicesNLSFEscapes(t *testing.T) {
	tests := []struct {
		name string
		syms []int
		want int8
	}{
		{"plain", []int{6}, 2},
		{"lowest plain", []int{1}, -3},
		{"highest plain", []int{7}, 3},
		{"negative escape", []int{0, 0}, -4},
		{"negative escape max", []int{0, 6}, -10},
		{"positive escape", []int{8, 0}, 4},
		{"positive escape max", []int{8, 6}, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := mustChannelState(t, 8, 2)
			d := newScriptedDecoder(t,
				[]int{0},     // inactive
				[]int{0, 0},  // gain MSB, LSB
				[]int{4},     // gain delta
				[]int{3},     // NLSF stage 1
				repeat(4, 9), // residuals 0..8
				tc.syms,      // last residual
				[]int{0},     // seed
			)
			idx := DecodeIndices(d, st, false, CodeIndependently)
			d.done()
			if got := idx.NLSFIndices[10]; got != tc.want {
				t.Errorf("residual %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDecodeIndicesNoVADTable(t *testing.T) {
	st := mustChannelState(t, 16, 2)
	d := newScriptedDecoder(t,
		[]int{1},      // inactive, offset 1
		[]int{7, 7},   // gain MSB, LSB
		[]int{4},      // gain delta
		[]int{0},      // NLSF stage 1
		repeat(4, 16), // residuals
		[]int{0},      // seed
	)
	idx := DecodeIndices(d, st, false, CodeIndependently)
	d.done()

	if !sameTable(d.tables[0], silk_type_offset_no_VAD_iCDF) {
		t.Error("type/offset not decoded with the no-VAD table")
	}
	if idx.SignalType != TypeNoVoiceActivity || idx.QuantOffsetType != 1 {
		t.Errorf("signal type %d, offset %d, want 0, 1", idx.SignalType, idx.QuantOffsetType)
	}
	if !sameTable(d.tables[1], silk_gain_iCDF[0]) {
		t.Error("first gain MSB not decoded with the inactive table")
	}
	if idx.GainsIndices[0] != 63 {
		t.Errorf("first gain index %d, want 63", idx.GainsIndices[0])
	}
}
