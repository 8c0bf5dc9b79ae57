package silk

// silkLog2Lin approximates 2^(inLogQ7/128).
func silkLog2Lin(inLogQ7 int32) int32 {
	if inLogQ7 < 0 {
		return 0
	}
	if inLogQ7 >= 3967 {
		return silkInt32Max
	}

	out := int32(1) << uint(inLogQ7>>7)
	fracQ7 := inLogQ7 & 0x7f
	// Piece-wise parabolic approximation.
	interp := silkSMLAWB(fracQ7, silkSMULBB(fracQ7, 128-fracQ7), -174)
	if inLogQ7 < 2048 {
		out += (out * interp) >> 7
	} else {
		out += (out >> 7) * interp
	}
	return out
}

// silkLin2Log approximates 128*log2(inLin).
func silkLin2Log(inLin int32) int32 {
	lz, fracQ7 := silkCLZ_FRAC(inLin)
	return silkSMLAWB(fracQ7, fracQ7*(128-fracQ7), 179) + int32(31-lz)<<7
}
