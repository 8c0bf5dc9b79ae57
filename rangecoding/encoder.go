package rangecoding

import "errors"

// ErrBufferFull is reported by Encoder.Err when the output did not fit.
var ErrBufferFull = errors.New("rangecoding: output buffer full")

// Encoder writes symbols to a fixed buffer, following libopus entenc.c. It
// is the inverse of Decoder. Call Init before use.
type Encoder struct {
	buf      []byte
	pos      int
	nbits    int    // bits written, for Tell
	rng      uint32 // width of the current interval
	low      uint32 // bottom of the current interval
	carry    int    // byte held back until its carry is known, -1 for none
	pending  int    // 0xFF bytes held back behind carry
	overflow bool
}

// Init starts encoding into buf, which bounds the output size.
func (e *Encoder) Init(buf []byte) {
	*e = Encoder{
		buf:   buf,
		nbits: codeBits + 1,
		rng:   codeTop,
		carry: -1,
	}
}

func (e *Encoder) put(b int) {
	if e.pos >= len(e.buf) {
		e.overflow = true
		return
	}
	e.buf[e.pos] = byte(b)
	e.pos++
}

// emit queues one output symbol. A symbol of 0xFF may still absorb a carry
// from below, so runs of them wait in pending.
func (e *Encoder) emit(c int) {
	if c == symMax {
		e.pending++
		return
	}
	cy := c >> symBits
	if e.carry >= 0 {
		e.put(e.carry + cy)
	}
	for ; e.pending > 0; e.pending-- {
		e.put((symMax + cy) & symMax)
	}
	e.carry = c & symMax
}

func (e *Encoder) renorm() {
	for e.rng <= codeBot {
		e.emit(int(e.low >> codeShift))
		e.low = (e.low << symBits) & (codeTop - 1)
		e.rng <<= symBits
		e.nbits += symBits
	}
}

// EncodeICDF encodes symbol s, in [0, len(icdf)), against an inverse CDF
// table with ftb bits of precision. The symbol must have non-zero
// probability.
func (e *Encoder) EncodeICDF(s int, icdf []uint8, ftb uint) {
	r := e.rng >> ftb
	if s > 0 {
		e.low += e.rng - r*uint32(icdf[s-1])
		e.rng = r * uint32(icdf[s-1]-icdf[s])
	} else {
		e.rng -= r * uint32(icdf[0])
	}
	e.renorm()
}

// EncodeBit encodes one bit that is 1 with probability 1/2^logp.
func (e *Encoder) EncodeBit(val int, logp uint) {
	s := e.rng >> logp
	if val != 0 {
		e.low += e.rng - s
		e.rng = s
	} else {
		e.rng -= s
	}
	e.renorm()
}

// Done flushes the encoder and returns the coded bytes, a prefix of the
// buffer given to Init. The rest of the buffer is zeroed, matching what the
// decoder reads past the end of its input.
func (e *Encoder) Done() []byte {
	// Emit the fewest bits that still identify a value inside the interval.
	n := codeBits - ilog(e.rng)
	mask := uint32(codeTop-1) >> uint(n)
	end := (e.low + mask) &^ mask
	if end|mask >= e.low+e.rng {
		n++
		mask >>= 1
		end = (e.low + mask) &^ mask
	}
	for ; n > 0; n -= symBits {
		e.emit(int(end >> codeShift))
		end = (end << symBits) & (codeTop - 1)
	}
	if e.carry >= 0 || e.pending > 0 {
		e.emit(0)
	}
	clear(e.buf[e.pos:])
	return e.buf[:e.pos]
}

// Tell returns the number of bits written so far, rounded up.
func (e *Encoder) Tell() int {
	return tell(e.nbits, e.rng)
}

// TellFrac returns the number of bits written in 1/8 bit units.
func (e *Encoder) TellFrac() int {
	return tellFrac(e.nbits, e.rng)
}

// Err returns ErrBufferFull if the output was truncated.
func (e *Encoder) Err() error {
	if e.overflow {
		return ErrBufferFull
	}
	return nil
}
