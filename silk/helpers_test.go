package silk

import (
	"math/rand"
	"testing"
)

// scriptedDecoder is a SymbolDecoder that returns a fixed symbol sequence
// and records the tables it was asked to decode against.
type scriptedDecoder struct {
	t      *testing.T
	syms   []int
	pos    int
	tables [][]uint8 // nil entries are DecodeBit calls
}

func newScriptedDecoder(t *testing.T, parts ...[]int) *scriptedDecoder {
	d := &scriptedDecoder{t: t}
	for _, p := range parts {
		d.syms = append(d.syms, p...)
	}
	return d
}

func (d *scriptedDecoder) next() int {
	if d.pos >= len(d.syms) {
		d.t.Fatalf("script exhausted after %d symbols", d.pos)
	}
	s := d.syms[d.pos]
	d.pos++
	return s
}

func (d *scriptedDecoder) DecodeICDF(icdf []uint8, ftb uint) int {
	d.tables = append(d.tables, icdf)
	s := d.next()
	if s < 0 || s >= symbolCount(icdf) {
		d.t.Fatalf("symbol %d at position %d out of range for a %d-symbol table", s, d.pos-1, symbolCount(icdf))
	}
	return s
}

func (d *scriptedDecoder) DecodeBit(logp uint) int {
	d.tables = append(d.tables, nil)
	return d.next() & 1
}

// used reports whether icdf was passed to the decoder.
func (d *scriptedDecoder) used(icdf []uint8) bool {
	for _, tbl := range d.tables {
		if sameTable(tbl, icdf) {
			return true
		}
	}
	return false
}

func (d *scriptedDecoder) done() {
	d.t.Helper()
	if d.pos != len(d.syms) {
		d.t.Errorf("consumed %d of %d scripted symbols", d.pos, len(d.syms))
	}
}

// symbolCount returns the number of symbols of an iCDF table, which ends at
// the first 0.
func symbolCount(icdf []uint8) int {
	for i, v := range icdf {
		if v == 0 {
			return i + 1
		}
	}
	return len(icdf)
}

func sameTable(a, b []uint8) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// sample draws a symbol with its coded probability, so every symbol it
// returns is encodable.
func sample(rng *rand.Rand, icdf []uint8) int {
	r := uint8(rng.Intn(256))
	s := 0
	for icdf[s] > r {
		s++
	}
	return s
}

// randomIndices generates side information an encoder could produce for
// the given state and coding mode.
func randomIndices(rng *rand.Rand, st *ChannelState, vadOrLBRR bool, cond CodingMode) SideInfoIndices {
	var idx SideInfoIndices
	ix := sample(rng, silk_type_offset_no_VAD_iCDF)
	if vadOrLBRR {
		ix = sample(rng, silk_type_offset_VAD_iCDF) + 2
	}
	idx.SignalType = int8(ix >> 1)
	idx.QuantOffsetType = int8(ix & 1)

	if cond == CodeConditionally {
		idx.GainsIndices[0] = int8(sample(rng, silk_delta_gain_iCDF))
	} else {
		idx.GainsIndices[0] = int8(sample(rng, silk_gain_iCDF[idx.SignalType])<<3 | sample(rng, silk_uniform8_iCDF))
	}
	for i := 1; i < st.NbSubfr; i++ {
		idx.GainsIndices[i] = int8(sample(rng, silk_delta_gain_iCDF))
	}

	cb := st.NLSFCB
	idx.NLSFIndices[0] = int8(sample(rng, cb.CB1ICDF[int(idx.SignalType>>1)*cb.NVectors:]))
	ecIx, _ := nlsfUnpack(cb, int(idx.NLSFIndices[0]))
	for i := 0; i < cb.Order; i++ {
		v := sample(rng, cb.ECICDF[ecIx[i]:])
		if v == 0 {
			v -= sample(rng, silk_NLSF_EXT_iCDF)
		} else if v == 2*nlsfQuantMaxAmplitude {
			v += sample(rng, silk_NLSF_EXT_iCDF)
		}
		idx.NLSFIndices[i+1] = int8(v - nlsfQuantMaxAmplitude)
	}

	idx.NLSFInterpCoefQ2 = 4
	if st.NbSubfr == maxNbSubfr {
		idx.NLSFInterpCoefQ2 = int8(sample(rng, silk_NLSF_interpolation_factor_iCDF))
	}

	if idx.SignalType == TypeVoiced {
		if cond == CodeConditionally && st.ECPrevSignalType == TypeVoiced && rng.Intn(2) == 0 {
			idx.LagIndex = int16(st.ECPrevLagIndex + rng.Intn(20) - 8)
		} else {
			idx.LagIndex = int16(sample(rng, silk_pitch_lag_iCDF)*(st.FsKHz>>1) + sample(rng, st.pitchLagLowBitsICDF))
		}
		idx.ContourIndex = int8(sample(rng, st.pitchContourICDF))
		idx.PERIndex = int8(sample(rng, silk_LTP_per_index_iCDF))
		for k := 0; k < st.NbSubfr; k++ {
			idx.LTPIndex[k] = int8(sample(rng, silk_LTP_gain_iCDF_ptrs[idx.PERIndex]))
		}
		if cond == CodeIndependently {
			idx.LTPScaleIndex = int8(sample(rng, silk_LTPscale_iCDF))
		}
	}
	idx.Seed = int8(sample(rng, silk_uniform4_iCDF))
	return idx
}

func mustChannelState(t testing.TB, fsKHz, nbSubfr int) *ChannelState {
	t.Helper()
	st := NewChannelState()
	if err := st.SetSampleRate(fsKHz, nbSubfr); err != nil {
		t.Fatalf("SetSampleRate(%d, %d): %v", fsKHz, nbSubfr, err)
	}
	return st
}
