package silk

// FrameTrace captures intermediate values of one frame decode for
// debugging. When non-nil, DecodeFrame populates it.
type FrameTrace struct {
	// State on entry.
	CodingMode           CodingMode
	FirstFrameAfterReset bool
	LossCnt              int
	PrevLastGainIndex    int8
	PrevNLSFQ15          []int16

	// Decoded values.
	Indices       SideInfoIndices
	NLSFQ15       []int16
	Interpolate   bool
	LastGainIndex int8
}

func (t *FrameTrace) begin(st *ChannelState, cond CodingMode) {
	t.CodingMode = cond
	t.FirstFrameAfterReset = st.FirstFrameAfterReset
	t.LossCnt = st.LossCnt()
	t.PrevLastGainIndex = st.LastGainIndex
	t.PrevNLSFQ15 = append(t.PrevNLSFQ15[:0], st.PrevNLSFQ15[:st.LPCOrder]...)
}

func (t *FrameTrace) end(st *ChannelState, idx *SideInfoIndices) {
	t.Indices = *idx
	t.NLSFQ15 = append(t.NLSFQ15[:0], st.PrevNLSFQ15[:st.LPCOrder]...)
	t.Interpolate = idx.NLSFInterpCoefQ2 < 4
	t.LastGainIndex = st.LastGainIndex
}
