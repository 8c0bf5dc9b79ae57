package silk

import "errors"

var (
	// ErrInvalidSampleRate indicates an internal sample rate other than 8, 12 or 16 kHz.
	ErrInvalidSampleRate = errors.New("silk: invalid internal sample rate")

	// ErrInvalidSubframes indicates a subframe count other than 2 (10 ms) or 4 (20 ms).
	ErrInvalidSubframes = errors.New("silk: invalid number of subframes")

	// ErrNotConfigured indicates decoding on a channel state whose sample
	// rate has not been set since it was created or reset.
	ErrNotConfigured = errors.New("silk: sample rate not configured")

	// ErrInvalidFrameCount indicates a packet with other than 1 to 3 SILK frames.
	ErrInvalidFrameCount = errors.New("silk: invalid number of frames per packet")
)
