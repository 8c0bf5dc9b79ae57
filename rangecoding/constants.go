// Package rangecoding implements the range coder used by the SILK layer of
// Opus (RFC 6716 Section 4.1).
//
// Only the operations that SILK side information needs are provided:
// symbols coded against 8-bit inverse CDF tables and single bits with a
// power-of-two probability. Raw end-of-buffer bits and uniform integers
// belong to the transform layer and are not implemented here.
package rangecoding

// Coder geometry, RFC 6716 Section 4.1 and libopus celt/mfrngcod.h.
const (
	symBits   = 8
	codeBits  = 32
	symMax    = 1<<symBits - 1
	codeTop   = 1 << (codeBits - 1)
	codeBot   = codeTop >> symBits
	codeShift = codeBits - symBits - 1
	codeExtra = (codeBits-2)%symBits + 1
)
