package silk

// DecodeFrame decodes the side information of one frame and reconstructs
// its parameters, then advances the channel state to the next frame.
// trace may be nil. It returns ErrNotConfigured, without reading from sd,
// if no sample rate has been set since the state was created or reset.
func (st *ChannelState) DecodeFrame(sd SymbolDecoder, vadOrLBRR bool, cond CodingMode, trace *FrameTrace) (FrameParams, error) {
	var fp FrameParams
	if !st.configured() {
		return fp, ErrNotConfigured
	}
	if trace != nil {
		trace.begin(st, cond)
	}

	fp.Indices = DecodeIndices(sd, st, vadOrLBRR, cond)
	fp.Control = ReconstructParameters(st, &fp.Indices, cond)

	if trace != nil {
		trace.end(st, &fp.Indices)
	}

	st.Loss.Reset()
	st.PrevSignalType = int(fp.Indices.SignalType)
	st.FirstFrameAfterReset = false
	st.LagPrev = fp.Control.PitchL[st.NbSubfr-1]
	return fp, nil
}

// ConditionalCoding returns the coding mode of frame frameIndex in a packet.
// The first frame is coded independently.
//
// For LBRR frames, prevCoded says whether the previous frame of the packet
// carried LBRR data; a later frame is coded conditionally only then.
// Regular frames pass true.
//
// prevMidOnly is set for a side channel frame when the previous frame of the
// packet decoded only the mid channel. Such a frame has no predecessor in
// the side channel and is coded independently without LTP scaling. Mid,
// mono and LBRR frames pass false.
func ConditionalCoding(frameIndex int, prevCoded, prevMidOnly bool) CodingMode {
	switch {
	case frameIndex == 0 || !prevCoded:
		return CodeIndependently
	case prevMidOnly:
		return CodeIndependentlyNoLTPScaling
	default:
		return CodeConditionally
	}
}
