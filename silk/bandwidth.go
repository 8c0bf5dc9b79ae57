package silk

// Bandwidth identifies one of the three SILK internal sample rates.
type Bandwidth uint8

const (
	BandwidthNarrowband Bandwidth = iota // 8 kHz
	BandwidthMediumband                  // 12 kHz
	BandwidthWideband                    // 16 kHz
)

var bandwidthNames = [...]string{"narrowband", "mediumband", "wideband"}

// BandwidthConfig collects the rate-dependent constants of the decoder.
type BandwidthConfig struct {
	FsKHz           int
	LPCOrder        int // 10 below 16 kHz, 16 at 16 kHz
	SubframeSamples int // samples per 5 ms subframe
	PitchLagMin     int // 2 ms
	PitchLagMax     int // 18 ms
	NLSFCB          *NLSFCodebook
}

var bandwidthConfigs = [...]BandwidthConfig{
	BandwidthNarrowband: {8, minLPCOrder, 40, 16, 144, NLSFCodebookNBMB},
	BandwidthMediumband: {12, minLPCOrder, 60, 24, 216, NLSFCodebookNBMB},
	BandwidthWideband:   {16, maxLPCOrder, 80, 32, 288, NLSFCodebookWB},
}

// Config returns the constants for bw. Out-of-range values get the
// wideband configuration.
func (bw Bandwidth) Config() BandwidthConfig {
	if int(bw) < len(bandwidthConfigs) {
		return bandwidthConfigs[bw]
	}
	return bandwidthConfigs[BandwidthWideband]
}

// BandwidthFromRate maps an internal sample rate in kHz to its bandwidth.
func BandwidthFromRate(fsKHz int) (Bandwidth, error) {
	for bw, cfg := range bandwidthConfigs {
		if cfg.FsKHz == fsKHz {
			return Bandwidth(bw), nil
		}
	}
	return 0, ErrInvalidSampleRate
}

func (bw Bandwidth) String() string {
	if int(bw) < len(bandwidthNames) {
		return bandwidthNames[bw]
	}
	return "unknown"
}
