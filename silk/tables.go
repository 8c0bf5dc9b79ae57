package silk

// Inverse CDF tables for the SILK side information, from libopus
// silk/tables_other.c, tables_gain.c, tables_LTP.c and tables_pitch_lag.c.
// Every table ends in 0 and is decoded with 8 bits of precision.

var silk_type_offset_VAD_iCDF = []uint8{232, 158, 10, 0}

var silk_type_offset_no_VAD_iCDF = []uint8{230, 0}

var silk_gain_iCDF = [3][]uint8{
	{224, 112, 44, 15, 3, 2, 1, 0},
	{254, 237, 192, 132, 70, 23, 4, 0},
	{255, 252, 226, 155, 61, 11, 2, 0},
}

var silk_delta_gain_iCDF = []uint8{
	250, 245, 234, 203, 71, 50, 42, 38,
	35, 33, 31, 29, 28, 27, 26, 25,
	24, 23, 22, 21, 20, 19, 18, 17,
	16, 15, 14, 13, 12, 11, 10, 9,
	8, 7, 6, 5, 4, 3, 2, 1,
	0,
}

var silk_uniform3_iCDF = []uint8{171, 85, 0}

var silk_uniform4_iCDF = []uint8{192, 128, 64, 0}

var silk_uniform5_iCDF = []uint8{205, 154, 102, 51, 0}

var silk_uniform6_iCDF = []uint8{213, 171, 128, 85, 43, 0}

var silk_uniform8_iCDF = []uint8{224, 192, 160, 128, 96, 64, 32, 0}

var silk_NLSF_EXT_iCDF = []uint8{100, 40, 16, 7, 3, 1, 0}

var silk_NLSF_interpolation_factor_iCDF = []uint8{243, 221, 192, 181, 0}

var silk_pitch_lag_iCDF = []uint8{
	253, 250, 244, 233, 212, 182, 150, 131,
	120, 110, 98, 85, 72, 60, 49, 40,
	32, 25, 19, 15, 13, 11, 9, 8,
	7, 6, 5, 4, 3, 2, 1, 0,
}

var silk_pitch_delta_iCDF = []uint8{
	210, 208, 206, 203, 199, 193, 183, 168,
	142, 104, 74, 52, 37, 27, 20, 14,
	10, 6, 4, 2, 0,
}

var silk_pitch_contour_iCDF = []uint8{
	223, 201, 183, 167, 152, 138, 124, 111,
	98, 88, 79, 70, 62, 56, 50, 44,
	39, 35, 31, 27, 24, 21, 18, 16,
	14, 12, 10, 8, 6, 4, 3, 2,
	1, 0,
}

var silk_pitch_contour_NB_iCDF = []uint8{188, 176, 155, 138, 119, 97, 67, 43, 26, 10, 0}

var silk_pitch_contour_10_ms_iCDF = []uint8{165, 119, 80, 61, 47, 35, 27, 20, 14, 9, 4, 0}

var silk_pitch_contour_10_ms_NB_iCDF = []uint8{113, 63, 0}

var silk_LTP_per_index_iCDF = []uint8{179, 99, 0}

var silk_LTP_gain_iCDF_0 = []uint8{71, 56, 43, 30, 21, 12, 6, 0}

var silk_LTP_gain_iCDF_1 = []uint8{
	199, 165, 144, 124, 109, 96, 84, 71,
	61, 51, 42, 32, 23, 15, 8, 0,
}

var silk_LTP_gain_iCDF_2 = []uint8{
	241, 225, 211, 199, 187, 175, 164, 153,
	142, 132, 123, 114, 105, 96, 88, 80,
	72, 64, 57, 50, 44, 38, 33, 29,
	24, 20, 16, 12, 9, 5, 2, 0,
}

// silk_LTP_gain_iCDF_ptrs is indexed by the periodicity index.
var silk_LTP_gain_iCDF_ptrs = [3][]uint8{
	silk_LTP_gain_iCDF_0,
	silk_LTP_gain_iCDF_1,
	silk_LTP_gain_iCDF_2,
}

var silk_LTPscale_iCDF = []uint8{128, 64, 0}

// silk_LTPScales_table_Q14 maps the LTP scale index to a Q14 factor.
var silk_LTPScales_table_Q14 = [3]int16{15565, 12288, 8192}

var silk_LBRR_flags_2_iCDF = []uint8{203, 150, 0}

var silk_LBRR_flags_3_iCDF = []uint8{215, 195, 166, 125, 110, 82, 0}

// silk_LBRR_flags_iCDF_ptr is indexed by frames per packet minus 2.
var silk_LBRR_flags_iCDF_ptr = [2][]uint8{
	silk_LBRR_flags_2_iCDF,
	silk_LBRR_flags_3_iCDF,
}

var silk_stereo_pred_joint_iCDF = []uint8{
	249, 247, 246, 245, 244, 234, 210, 202, 201, 200, 197, 174, 82,
	59, 56, 55, 54, 46, 22, 12, 11, 10, 9, 7, 0,
}

var silk_stereo_only_code_mid_iCDF = []uint8{64, 0}

// silk_stereo_pred_quant_Q13 holds the stereo predictor quantization levels.
var silk_stereo_pred_quant_Q13 = [16]int16{
	-13732, -10050, -8266, -7526, -6500, -5000, -2950, -820,
	820, 2950, 5000, 6500, 7526, 8266, 10050, 13732,
}
