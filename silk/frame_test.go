package silk

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDecodeFrameUpdatesState(t *testing.T) {
	st := mustChannelState(t, 8, 2)
	st.FrameLost()

	d := newScriptedDecoder(t,
		[]int{2},      // voiced, offset 0
		[]int{3, 1},   // gain MSB, LSB
		[]int{4},      // gain delta
		[]int{5},      // NLSF stage 1
		repeat(4, 10), // residuals
		[]int{5, 3},   // lag high, lag low
		[]int{2},      // contour
		[]int{1},      // periodicity
		[]int{7, 15},  // LTP indices
		[]int{2},      // LTP scale
		[]int{0},      // seed
	)
	var tr FrameTrace
	fp, err := st.DecodeFrame(d, true, CodeIndependently, &tr)
	if err != nil {
		t.Fatal(err)
	}
	d.done()

	if fp.Control.PitchL != [4]int{39, 40} {
		t.Errorf("pitch lags %v", fp.Control.PitchL)
	}
	if st.LossCnt() != 0 || st.FirstFrameAfterReset {
		t.Errorf("loss count %d, first frame %v after a good frame", st.LossCnt(), st.FirstFrameAfterReset)
	}
	if st.PrevSignalType != TypeVoiced || st.LagPrev != 40 {
		t.Errorf("PrevSignalType %d, LagPrev %d, want 2, 40", st.PrevSignalType, st.LagPrev)
	}
	if st.LastGainIndex != 25 {
		t.Errorf("LastGainIndex = %d, want 25", st.LastGainIndex)
	}

	if tr.LossCnt != 1 || !tr.FirstFrameAfterReset || tr.PrevLastGainIndex != 10 {
		t.Errorf("trace entry state: loss %d first %v gain %d", tr.LossCnt, tr.FirstFrameAfterReset, tr.PrevLastGainIndex)
	}
	if tr.CodingMode != CodeIndependently || tr.Interpolate || tr.LastGainIndex != 25 {
		t.Errorf("trace: mode %v interp %v gain %d", tr.CodingMode, tr.Interpolate, tr.LastGainIndex)
	}
	if len(tr.PrevNLSFQ15) != 10 || len(tr.NLSFQ15) != 10 {
		t.Fatalf("trace NLSF lengths %d, %d", len(tr.PrevNLSFQ15), len(tr.NLSFQ15))
	}
	for i, v := range tr.NLSFQ15 {
		if v != st.PrevNLSFQ15[i] {
			t.Errorf("trace NLSF[%d] = %d, want %d", i, v, st.PrevNLSFQ15[i])
		}
	}
	if tr.Indices != fp.Indices {
		t.Error("trace indices differ from the result")
	}
}

func TestDecodeFrameUnvoicedLagPrev(t *testing.T) {
	st := mustChannelState(t, 16, 2)
	d := newScriptedDecoder(t,
		[]int{1},      // unvoiced, offset 1
		[]int{0, 0},   // gain MSB, LSB
		[]int{4},      // gain delta
		[]int{0},      // NLSF stage 1
		repeat(4, 16), // residuals
		[]int{2},      // seed
	)
	fp, err := st.DecodeFrame(d, true, CodeIndependently, nil)
	if err != nil {
		t.Fatal(err)
	}
	d.done()

	if fp.Indices.SignalType != TypeUnvoiced || st.PrevSignalType != TypeUnvoiced {
		t.Errorf("signal type %d, state %d", fp.Indices.SignalType, st.PrevSignalType)
	}
	if st.LagPrev != 0 {
		t.Errorf("LagPrev = %d after an unvoiced frame, want 0", st.LagPrev)
	}
}

func TestDecodeFrameSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	st := mustChannelState(t, 16, 4)
	enc := mustChannelState(t, 16, 4)
	var tr FrameTrace
	for i := 0; i < 30; i++ {
		cond := ConditionalCoding(i%3, true, false)
		idx := randomIndices(rng, enc, true, cond)
		rec := &recordingEncoder{}
		EncodeIndices(rec, enc, &idx, true, cond)

		prevNLSF := st.PrevNLSFQ15
		fp, err := st.DecodeFrame(rec.decoder(t), true, cond, &tr)
		if err != nil {
			t.Fatal(err)
		}
		if i == 0 && tr.Interpolate {
			t.Error("first frame interpolated")
		}
		if i > 0 && tr.Interpolate != (fp.Indices.NLSFInterpCoefQ2 < 4) {
			t.Errorf("frame %d: trace interpolation %v, factor %d", i, tr.Interpolate, fp.Indices.NLSFInterpCoefQ2)
		}
		for k := 0; k < 16; k++ {
			if tr.PrevNLSFQ15[k] != prevNLSF[k] {
				t.Fatalf("frame %d: trace previous NLSF differs", i)
			}
		}
	}
}

func TestConditionalCoding(t *testing.T) {
	tests := []struct {
		frame       int
		prevCoded   bool
		prevMidOnly bool
		want        CodingMode
	}{
		{0, true, false, CodeIndependently},
		{0, false, false, CodeIndependently},
		{1, true, false, CodeConditionally},
		{1, false, false, CodeIndependently},
		{2, true, false, CodeConditionally},
		{2, false, false, CodeIndependently},
		// Side channel after a frame that coded only the mid channel.
		{0, true, true, CodeIndependently},
		{1, true, true, CodeIndependentlyNoLTPScaling},
		{2, true, true, CodeIndependentlyNoLTPScaling},
	}
	for _, tc := range tests {
		if got := ConditionalCoding(tc.frame, tc.prevCoded, tc.prevMidOnly); got != tc.want {
			t.Errorf("ConditionalCoding(%d, %v, %v) = %v, want %v", tc.frame, tc.prevCoded, tc.prevMidOnly, got, tc.want)
		}
	}
}

func TestDecodeFrameNotConfigured(t *testing.T) {
	for _, name := range []string{"new", "reset"} {
		st := NewChannelState()
		if name == "reset" {
			if err := st.SetSampleRate(16, 4); err != nil {
				t.Fatal(err)
			}
			st.Reset()
		}
		d := newScriptedDecoder(t)
		var tr FrameTrace
		fp, err := st.DecodeFrame(d, true, CodeIndependently, &tr)
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("%s: got error %v, want %v", name, err, ErrNotConfigured)
		}
		if fp != (FrameParams{}) {
			t.Errorf("%s: got %+v, want zero parameters", name, fp)
		}
		if len(d.tables) != 0 {
			t.Errorf("%s: read %d symbols", name, len(d.tables))
		}
		if !st.FirstFrameAfterReset {
			t.Errorf("%s: state advanced", name)
		}
	}
}

func TestCodingModeString(t *testing.T) {
	for m, want := range map[CodingMode]string{
		CodeIndependently:             "independent",
		CodeIndependentlyNoLTPScaling: "independent-no-ltp-scaling",
		CodeConditionally:             "conditional",
		CodingMode(7):                 "unknown",
	} {
		if got := m.String(); got != want {
			t.Errorf("%d: %q, want %q", int(m), got, want)
		}
	}
}

// recordingEncoder is a SymbolEncoder that keeps the coded symbols so they
// can be replayed through a scriptedDecoder.
type recordingEncoder struct {
	syms []int
}

func (e *recordingEncoder) EncodeICDF(s int, icdf []uint8, ftb uint) {
	e.syms = append(e.syms, s)
}

func (e *recordingEncoder) EncodeBit(val int, logp uint) {
	e.syms = append(e.syms, val)
}

func (e *recordingEncoder) decoder(t *testing.T) *scriptedDecoder {
	return newScriptedDecoder(t, e.syms)
}
