package silk

const (
	maxNbSubfr        = 4
	subFrameLengthMs  = 5
	maxLPCOrder       = 16
	minLPCOrder       = 10
	ltpOrder          = 5
	maxFramesPerPkt   = 3
	maxLPCStabilizeIt = 16

	maxPredictionPowerGainInvQ30 = 107374 // 1/1e4 in Q30

	nLevelsQGain      = 64
	maxDeltaGainQuant = 36
	minDeltaGainQuant = -4
	minQGainDb        = 2
	maxQGainDb        = 88

	// Log-domain gain mapping derived from the quantizer range.
	gainOffsetQ7    = (minQGainDb*128)/6 + 16*128
	gainScaleQ16    = (1 << 16) * (nLevelsQGain - 1) / (((maxQGainDb - minQGainDb) * 128) / 6)
	gainInvScaleQ16 = (1 << 16) * (((maxQGainDb - minQGainDb) * 128) / 6) / (nLevelsQGain - 1)
	maxLogGainQ7    = 3967 // log2lin saturates above this

	nlsfQuantMaxAmplitude = 4
	nlsfQuantLevelAdjQ10  = 102 // 0.1 in Q10
	nlsf2aQA              = 16
	lsfCosTabSizeFix      = 128

	bweAfterLossQ16 = 63570 // 0.97 in Q16

	peMinLagMs = 2
	peMaxLagMs = 18

	stereoQuantSubSteps = 5
)

// Signal types as coded in the bitstream.
const (
	TypeNoVoiceActivity = 0
	TypeUnvoiced        = 1
	TypeVoiced          = 2
)
