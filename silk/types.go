package silk

// SymbolDecoder is the entropy decoder the side information is read from.
// *rangecoding.Decoder implements it.
type SymbolDecoder interface {
	// DecodeICDF decodes one symbol against an inverse CDF table with ftb
	// bits of precision. The table ends in 0; the result is in [0, len(icdf)).
	DecodeICDF(icdf []uint8, ftb uint) int
	// DecodeBit decodes one bit that is 1 with probability 1/2^logp.
	DecodeBit(logp uint) int
}

// SymbolEncoder is the inverse of SymbolDecoder.
// *rangecoding.Encoder implements it.
type SymbolEncoder interface {
	EncodeICDF(s int, icdf []uint8, ftb uint)
	EncodeBit(val int, logp uint)
}

// CodingMode says whether a frame is coded independently of the previous
// frame in the packet.
type CodingMode int

const (
	// CodeIndependently codes the first gain absolutely and sends the LTP scale.
	CodeIndependently CodingMode = iota
	// CodeIndependentlyNoLTPScaling is independent coding without an LTP
	// scale index, as used by the encoder for some LBRR frames.
	CodeIndependentlyNoLTPScaling
	// CodeConditionally delta-codes the first gain and, for voiced frames
	// following voiced frames, the pitch lag.
	CodeConditionally
)

// String returns the string representation of the coding mode.
func (m CodingMode) String() string {
	switch m {
	case CodeIndependently:
		return "independent"
	case CodeIndependentlyNoLTPScaling:
		return "independent-no-ltp-scaling"
	case CodeConditionally:
		return "conditional"
	default:
		return "unknown"
	}
}

// SideInfoIndices holds the quantization indices of one frame, exactly as
// read from the bitstream.
type SideInfoIndices struct {
	GainsIndices     [maxNbSubfr]int8
	LTPIndex         [maxNbSubfr]int8
	NLSFIndices      [maxLPCOrder + 1]int8 // stage-1 index, then one residual per coefficient
	LagIndex         int16
	ContourIndex     int8
	SignalType       int8
	QuantOffsetType  int8
	NLSFInterpCoefQ2 int8
	PERIndex         int8
	LTPScaleIndex    int8
	Seed             int8
}

// DecoderControl holds the reconstructed parameters of one frame.
type DecoderControl struct {
	PitchL      [maxNbSubfr]int
	GainsQ16    [maxNbSubfr]int32
	PredCoefQ12 [2][maxLPCOrder]int16 // first and second half of the frame
	LTPCoefQ14  [ltpOrder * maxNbSubfr]int16
	LTPScaleQ14 int32
}

// FrameParams is the result of decoding one frame: the raw indices (the
// synthesis stage needs the seed and quantization offset type) and the
// reconstructed parameters.
type FrameParams struct {
	Indices SideInfoIndices
	Control DecoderControl
}
