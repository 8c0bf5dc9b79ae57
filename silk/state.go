package silk

import "github.com/jseproject/jse-spi-sub007/plc"

// ChannelState is the persistent decoder state of one SILK channel. It is
// owned by a single decode session; stereo streams use one per channel.
//
// The zero value is usable after Reset and SetSampleRate.
type ChannelState struct {
	// PrevNLSFQ15 is the previous frame's NLSF vector, used for interpolation.
	PrevNLSFQ15 [maxLPCOrder]int16
	// LastGainIndex is the last subframe's gain index of the previous frame.
	LastGainIndex int8
	// ECPrevLagIndex and ECPrevSignalType drive the pitch lag delta coding.
	ECPrevLagIndex   int
	ECPrevSignalType int
	// FirstFrameAfterReset disables NLSF interpolation for one frame.
	FirstFrameAfterReset bool
	// Loss tracks the run of consecutive lost frames for concealment. A
	// non-zero count also enables bandwidth expansion of the next frame's
	// LPC coefficients.
	Loss plc.State
	// PrevSignalType and LagPrev describe the last good frame for concealment.
	PrevSignalType int
	LagPrev        int

	FsKHz       int
	NbSubfr     int
	LPCOrder    int
	FrameLength int
	SubfrLength int

	// NLSFCB is the codebook selected for the current rate.
	NLSFCB *NLSFCodebook

	pitchLagLowBitsICDF []uint8
	pitchContourICDF    []uint8
}

// NewChannelState returns a channel state in its reset condition. The
// sample rate must be configured with SetSampleRate before decoding.
func NewChannelState() *ChannelState {
	st := &ChannelState{}
	st.Reset()
	return st
}

// Reset returns the state to its freshly created condition: every field
// zeroed and the next frame marked as the first after a reset. The rate
// must be configured again with SetSampleRate.
func (st *ChannelState) Reset() {
	*st = ChannelState{}
	st.Loss.Reset()
	st.FirstFrameAfterReset = true
}

// SetSampleRate configures the internal sample rate (8, 12 or 16 kHz) and
// the number of 5 ms subframes per frame (2 or 4). A rate change selects
// the NLSF codebook and pitch tables for the new rate and restarts the
// cross-frame prediction; a frame length change alone only reselects the
// pitch contour table.
func (st *ChannelState) SetSampleRate(fsKHz, nbSubfr int) error {
	bw, err := BandwidthFromRate(fsKHz)
	if err != nil {
		return err
	}
	if nbSubfr != 2 && nbSubfr != maxNbSubfr {
		return ErrInvalidSubframes
	}

	st.NbSubfr = nbSubfr
	st.SubfrLength = subFrameLengthMs * fsKHz
	frameLength := nbSubfr * st.SubfrLength
	if st.FsKHz == fsKHz && st.FrameLength == frameLength {
		return nil
	}

	if fsKHz == 8 {
		if nbSubfr == maxNbSubfr {
			st.pitchContourICDF = silk_pitch_contour_NB_iCDF
		} else {
			st.pitchContourICDF = silk_pitch_contour_10_ms_NB_iCDF
		}
	} else {
		if nbSubfr == maxNbSubfr {
			st.pitchContourICDF = silk_pitch_contour_iCDF
		} else {
			st.pitchContourICDF = silk_pitch_contour_10_ms_iCDF
		}
	}

	if st.FsKHz != fsKHz {
		cfg := bw.Config()
		st.LPCOrder = cfg.LPCOrder
		st.NLSFCB = cfg.NLSFCB
		switch fsKHz {
		case 16:
			st.pitchLagLowBitsICDF = silk_uniform8_iCDF
		case 12:
			st.pitchLagLowBitsICDF = silk_uniform6_iCDF
		case 8:
			st.pitchLagLowBitsICDF = silk_uniform4_iCDF
		}
		st.FirstFrameAfterReset = true
		st.LagPrev = 100
		st.LastGainIndex = 10
		st.PrevSignalType = TypeNoVoiceActivity
	}

	st.FsKHz = fsKHz
	st.FrameLength = frameLength
	return nil
}

// FrameLost records a frame that could not be decoded and returns the
// concealment gain for it. The next decoded frame applies bandwidth
// expansion to its LPC coefficients and ends the loss run.
func (st *ChannelState) FrameLost() float64 {
	return st.Loss.RecordLoss()
}

// LossCnt returns the number of consecutive lost frames.
func (st *ChannelState) LossCnt() int {
	return st.Loss.LostCount()
}

// configured reports whether SetSampleRate has succeeded since the last
// reset.
func (st *ChannelState) configured() bool {
	return st.NLSFCB != nil && st.NbSubfr != 0
}

// Bandwidth returns the audio bandwidth of the configured sample rate.
func (st *ChannelState) Bandwidth() Bandwidth {
	bw, _ := BandwidthFromRate(st.FsKHz)
	return bw
}
