package silk

import "math/bits"

// NLSFCodebook is a two-stage NLSF vector quantizer. Values are shared and
// must not be modified.
type NLSFCodebook struct {
	NVectors           int
	Order              int
	QuantStepSizeQ16   int32
	InvQuantStepSizeQ6 int32
	CB1NLSFQ8          []uint8 // NVectors rows of Order stage-1 values
	CB1WghtQ9          []int16 // residual weights, one per stage-1 value
	CB1ICDF            []uint8 // stage-1 index, unvoiced half then voiced half
	PredQ8             []uint8 // backward prediction, two sets of Order-1
	ECSel              []uint8 // packed entropy table and predictor selectors
	ECICDF             []uint8 // 8 residual tables of 2*nlsfQuantMaxAmplitude+1 entries
	DeltaMinQ15        []int16 // minimum spacing, Order+1 entries
}

// NLSFCodebookNBMB is used at 8 and 12 kHz.
var NLSFCodebookNBMB = &NLSFCodebook{
	NVectors:           32,
	Order:              10,
	QuantStepSizeQ16:   silkFixConst(0.18, 16),
	InvQuantStepSizeQ6: silkFixConst(1.0/0.18, 6),
	CB1NLSFQ8:          silk_NLSF_CB1_NB_MB_Q8[:],
	CB1WghtQ9:          nlsfWeightsQ9(silk_NLSF_CB1_NB_MB_Q8[:], 10),
	CB1ICDF:            silk_NLSF_CB1_iCDF_NB_MB[:],
	PredQ8:             silk_NLSF_PRED_NB_MB_Q8[:],
	ECSel:              silk_NLSF_CB2_SELECT_NB_MB[:],
	ECICDF:             silk_NLSF_CB2_iCDF_NB_MB[:],
	DeltaMinQ15:        silk_NLSF_DELTA_MIN_NB_MB_Q15[:],
}

// NLSFCodebookWB is used at 16 kHz.
var NLSFCodebookWB = &NLSFCodebook{
	NVectors:           32,
	Order:              16,
	QuantStepSizeQ16:   silkFixConst(0.15, 16),
	InvQuantStepSizeQ6: silkFixConst(1.0/0.15, 6),
	CB1NLSFQ8:          silk_NLSF_CB1_WB_Q8[:],
	CB1WghtQ9:          nlsfWeightsQ9(silk_NLSF_CB1_WB_Q8[:], 16),
	CB1ICDF:            silk_NLSF_CB1_iCDF_WB[:],
	PredQ8:             silk_NLSF_PRED_WB_Q8[:],
	ECSel:              silk_NLSF_CB2_SELECT_WB[:],
	ECICDF:             silk_NLSF_CB2_iCDF_WB[:],
	DeltaMinQ15:        silk_NLSF_DELTA_MIN_WB_Q15[:],
}

// nlsfWeightsQ9 derives the stage-2 residual weights of every stage-1
// vector (RFC 6716 Section 4.2.7.5.3). The weight is an approximation of
// sqrt(1/(c[k]-c[k-1]) + 1/(c[k+1]-c[k])) with c[-1] = 0 and c[order] = 256.
func nlsfWeightsQ9(cb1Q8 []uint8, order int) []int16 {
	w := make([]int16, len(cb1Q8))
	for base := 0; base+order <= len(cb1Q8); base += order {
		row := cb1Q8[base : base+order]
		for k := 0; k < order; k++ {
			prev := int32(0)
			if k > 0 {
				prev = int32(row[k-1])
			}
			next := int32(256)
			if k < order-1 {
				next = int32(row[k+1])
			}
			cur := int32(row[k])
			w2Q18 := (1024/(cur-prev) + 1024/(next-cur)) << 16

			i := bits.Len32(uint32(w2Q18))
			f := (w2Q18 >> uint(i-8)) & 127
			y := int32(46214)
			if i&1 != 0 {
				y = 32768
			}
			y >>= uint((32 - i) >> 1)
			w[base+k] = int16(y + ((213 * f * y) >> 16))
		}
	}
	return w
}
