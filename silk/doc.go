// Package silk decodes the side information of SILK frames (RFC 6716
// Section 4.2) and reconstructs the parameters that drive LPC synthesis.
//
// The pipeline for one frame is:
//
//	DecodeIndices         entropy-coded fields -> SideInfoIndices
//	ReconstructParameters SideInfoIndices      -> DecoderControl
//	                      (gains Q16, LPC Q12, pitch lags, LTP taps Q14)
//
// ChannelState carries everything that crosses frame boundaries: the
// previous NLSF vector, the last gain index, the previous lag and signal
// type for delta coding, and the loss counter. ChannelState.DecodeFrame
// runs the whole pipeline and applies the end-of-frame updates.
//
// The package reads the bitstream through the SymbolDecoder interface;
// *rangecoding.Decoder satisfies it. Codebooks and tables are immutable
// package-level data and may be shared by any number of channels.
//
// All arithmetic is bit-exact integer arithmetic following libopus.
package silk
