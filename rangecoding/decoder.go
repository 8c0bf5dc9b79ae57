package rangecoding

// Decoder reads symbols from a range coded buffer, following libopus
// entdec.c. Call Init before use; a Decoder may be reused for another
// buffer by calling Init again.
type Decoder struct {
	buf   []byte
	pos   int
	nbits int    // bits consumed, for Tell
	rng   uint32 // width of the current interval, > codeBot between calls
	dif   uint32 // distance from the coded value to the top of the interval
	rem   int    // last byte read, half of it not yet consumed
}

// Init starts decoding buf. The decoder keeps a reference to buf; it must
// not be modified while decoding.
func (d *Decoder) Init(buf []byte) {
	*d = Decoder{buf: buf}
	d.nbits = codeBits + 1 - ((codeBits-codeExtra)/symBits)*symBits
	d.rng = 1 << codeExtra
	d.rem = d.next()
	d.dif = d.rng - 1 - uint32(d.rem>>(symBits-codeExtra))
	d.renorm()
}

// next returns the next input byte. Reading past the end yields zeros.
func (d *Decoder) next() int {
	if d.pos >= len(d.buf) {
		return 0
	}
	b := d.buf[d.pos]
	d.pos++
	return int(b)
}

func (d *Decoder) renorm() {
	for d.rng <= codeBot {
		d.nbits += symBits
		d.rng <<= symBits
		prev := d.rem
		d.rem = d.next()
		sym := (prev<<symBits | d.rem) >> (symBits - codeExtra)
		d.dif = (d.dif<<symBits + uint32(symMax&^sym)) & (codeTop - 1)
	}
}

// DecodeICDF decodes one symbol against an inverse CDF table: decreasing
// values ending in 0, with ftb bits of precision (8 for every SILK table).
// The result is in [0, len(icdf)).
func (d *Decoder) DecodeICDF(icdf []uint8, ftb uint) int {
	r := d.rng >> ftb
	hi := d.rng
	for s, v := range icdf {
		lo := r * uint32(v)
		if d.dif >= lo {
			d.dif -= lo
			d.rng = hi - lo
			d.renorm()
			return s
		}
		hi = lo
	}
	// Unreachable for a table that ends in 0.
	return len(icdf) - 1
}

// DecodeBit decodes one bit that is 1 with probability 1/2^logp.
func (d *Decoder) DecodeBit(logp uint) int {
	s := d.rng >> logp
	bit := 0
	if d.dif < s {
		bit = 1
		d.rng = s
	} else {
		d.dif -= s
		d.rng -= s
	}
	d.renorm()
	return bit
}

// Tell returns the number of bits consumed so far, rounded up.
func (d *Decoder) Tell() int {
	return tell(d.nbits, d.rng)
}

// TellFrac returns the number of bits consumed in 1/8 bit units.
func (d *Decoder) TellFrac() int {
	return tellFrac(d.nbits, d.rng)
}

// BytesUsed returns the number of input bytes read so far.
func (d *Decoder) BytesUsed() int {
	return d.pos
}

// State returns the interval width and the internal difference register.
func (d *Decoder) State() (rng, dif uint32) {
	return d.rng, d.dif
}
