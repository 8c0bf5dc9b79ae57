package plc

const (
	ltpOrder    = 5
	maxLPCOrder = 16

	// Limits on the LTP gain used to start concealment, Q14.
	vPitchGainStartMinQ14 = 11469 // 0.7
	vPitchGainStartMaxQ14 = 15565 // 0.95

	maxPitchLagMs = 18
)

// SILKSnapshot holds the parameters of the last good SILK frame that
// concealment continues from.
type SILKSnapshot struct {
	// PitchLQ8 is the pitch lag in Q8 samples.
	PitchLQ8 int32
	// LTPCoefQ14 is a single-pulse LTP filter carrying the limited gain of
	// the strongest recent subframe in its middle tap.
	LTPCoefQ14 [ltpOrder]int16
	// PrevLPCQ12 is the LPC filter of the second half of the frame.
	PrevLPCQ12      [maxLPCOrder]int16
	LPCOrder        int
	PrevLTPScaleQ14 int32
	// PrevGainQ16 holds the gains of the last two subframes.
	PrevGainQ16 [2]int32
	SubfrLength int
	NbSubfr     int
}

// NewSILKSnapshot returns a snapshot for a fresh stream at fsKHz.
func NewSILKSnapshot(fsKHz int) *SILKSnapshot {
	s := &SILKSnapshot{}
	s.Reset(fsKHz)
	return s
}

// Reset clears the snapshot. The pitch lag defaults to half a 20 ms frame
// at fsKHz and both gains to 1.0.
func (s *SILKSnapshot) Reset(fsKHz int) {
	*s = SILKSnapshot{}
	s.PitchLQ8 = int32(fsKHz*20) << 7
	s.PrevGainQ16 = [2]int32{1 << 16, 1 << 16}
	s.SubfrLength = 20
	s.NbSubfr = 2
}

// Update captures a good frame. pitchL, gainsQ16 and ltpCoefQ14 hold at
// least nbSubfr entries (ltpOrder per subframe for the taps); lpcQ12 is the
// second-half LPC filter.
func (s *SILKSnapshot) Update(signalType int, pitchL []int, ltpCoefQ14 []int16, ltpScaleQ14 int32,
	gainsQ16 []int32, lpcQ12 []int16, fsKHz, nbSubfr int) {
	subfrLength := 5 * fsKHz

	if signalType == 2 {
		// Strongest LTP filter among the subframes covering the last pitch period.
		var ltpGainQ14 int32
		for j := 0; j*subfrLength < pitchL[nbSubfr-1] && j < nbSubfr; j++ {
			sf := nbSubfr - 1 - j
			var g int32
			for i := 0; i < ltpOrder; i++ {
				g += int32(ltpCoefQ14[sf*ltpOrder+i])
			}
			if g > ltpGainQ14 {
				ltpGainQ14 = g
				s.PitchLQ8 = int32(pitchL[sf]) << 8
			}
		}

		s.LTPCoefQ14 = [ltpOrder]int16{}
		s.LTPCoefQ14[ltpOrder/2] = int16(ltpGainQ14)

		// Limit the gain.
		if ltpGainQ14 < vPitchGainStartMinQ14 {
			scaleQ10 := (vPitchGainStartMinQ14 << 10) / max(ltpGainQ14, 1)
			for i := range s.LTPCoefQ14 {
				s.LTPCoefQ14[i] = int16(smulbb(int32(s.LTPCoefQ14[i]), scaleQ10) >> 10)
			}
		} else if ltpGainQ14 > vPitchGainStartMaxQ14 {
			scaleQ14 := (vPitchGainStartMaxQ14 << 14) / max(ltpGainQ14, 1)
			for i := range s.LTPCoefQ14 {
				s.LTPCoefQ14[i] = int16(smulbb(int32(s.LTPCoefQ14[i]), scaleQ14) >> 14)
			}
		}
	} else {
		s.PitchLQ8 = int32(fsKHz*maxPitchLagMs) << 8
		s.LTPCoefQ14 = [ltpOrder]int16{}
	}

	s.LPCOrder = copy(s.PrevLPCQ12[:], lpcQ12)
	s.PrevLTPScaleQ14 = ltpScaleQ14
	copy(s.PrevGainQ16[:], gainsQ16[nbSubfr-2:nbSubfr])
	s.SubfrLength = subfrLength
	s.NbSubfr = nbSubfr
}

// LTPGainQ14 returns the sum of the snapshot's LTP taps.
func (s *SILKSnapshot) LTPGainQ14() int32 {
	var g int32
	for _, c := range s.LTPCoefQ14 {
		g += int32(c)
	}
	return g
}

// smulbb multiplies the low 16 bits of both operands.
func smulbb(a, b int32) int32 {
	return int32(int16(a)) * int32(int16(b))
}
