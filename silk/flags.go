package silk

// PacketFlags holds the per-packet flags that precede the frames of one
// channel: a voice activity flag per frame and the LBRR flags.
type PacketFlags struct {
	VAD [maxFramesPerPkt]bool
	// LBRR is set when at least one frame carries low bit-rate redundancy.
	LBRR      bool
	LBRRFlags [maxFramesPerPkt]bool
}

// DecodeFlags reads the VAD and LBRR flags of a packet carrying
// framesPerPacket SILK frames (1 to 3).
func DecodeFlags(sd SymbolDecoder, framesPerPacket int) (PacketFlags, error) {
	var f PacketFlags
	if framesPerPacket < 1 || framesPerPacket > maxFramesPerPkt {
		return f, ErrInvalidFrameCount
	}
	for i := 0; i < framesPerPacket; i++ {
		f.VAD[i] = sd.DecodeBit(1) != 0
	}
	f.LBRR = sd.DecodeBit(1) != 0
	if !f.LBRR {
		return f, nil
	}
	if framesPerPacket == 1 {
		f.LBRRFlags[0] = true
		return f, nil
	}
	sym := sd.DecodeICDF(silk_LBRR_flags_iCDF_ptr[framesPerPacket-2], 8) + 1
	for i := 0; i < framesPerPacket; i++ {
		f.LBRRFlags[i] = (sym>>i)&1 != 0
	}
	return f, nil
}

// EncodeFlags writes the flags decoded by DecodeFlags. LBRR is derived from
// LBRRFlags.
func EncodeFlags(se SymbolEncoder, f *PacketFlags, framesPerPacket int) error {
	if framesPerPacket < 1 || framesPerPacket > maxFramesPerPkt {
		return ErrInvalidFrameCount
	}
	sym := 0
	for i := 0; i < framesPerPacket; i++ {
		if f.LBRRFlags[i] {
			sym |= 1 << i
		}
	}
	for i := 0; i < framesPerPacket; i++ {
		se.EncodeBit(boolToInt(f.VAD[i]), 1)
	}
	se.EncodeBit(boolToInt(sym != 0), 1)
	if sym != 0 && framesPerPacket > 1 {
		se.EncodeICDF(sym-1, silk_LBRR_flags_iCDF_ptr[framesPerPacket-2], 8)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
