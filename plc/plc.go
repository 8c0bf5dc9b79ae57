// Package plc holds the state that SILK packet loss concealment reads:
// a consecutive loss counter with its fade factor, and a snapshot of the
// parameters of the last good frame.
//
// Waveform generation is left to the synthesis stage; this package only
// tracks what it needs.
//
// silk.ChannelState keeps its loss run in a State, so the counter that
// drives concealment is the one that triggers bandwidth expansion of the
// next good frame.
//
// Reference: RFC 6716 Section 4.2.8, libopus silk/PLC.c
package plc

const (
	// MaxConcealedFrames is the run of lost frames after which concealment
	// output is treated as silence, about 100 ms of 20 ms frames.
	MaxConcealedFrames = 5

	// FadePerFrame is the gain applied for each lost frame, about -6 dB.
	FadePerFrame = 0.5

	// silenceFloor is the gain below which concealment output is muted.
	silenceFloor = 0.001
)

// State counts the consecutive losses of one channel and derives the
// concealment gain from them. The zero value is not ready; use NewState.
type State struct {
	losses int
	gain   float64
}

// NewState returns a state with no losses at full gain.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset ends a loss run. Call it for every good frame.
func (s *State) Reset() {
	*s = State{gain: 1}
}

// RecordLoss extends the loss run by one frame and returns the gain for
// its concealment: FadePerFrame after the first loss, squared after the
// second, and 0 once it drops under the silence floor.
func (s *State) RecordLoss() float64 {
	s.losses++
	if s.gain *= FadePerFrame; s.gain < silenceFloor {
		s.gain = 0
	}
	return s.gain
}

// LostCount returns the length of the current loss run.
func (s *State) LostCount() int { return s.losses }

// FadeFactor returns the current concealment gain, 1 without losses.
func (s *State) FadeFactor() float64 { return s.gain }

// IsExhausted reports whether the loss run is long enough, or the gain low
// enough, that concealment should output silence.
func (s *State) IsExhausted() bool {
	return s.losses >= MaxConcealedFrames || s.gain <= silenceFloor
}
