package checkout

// routeLabels holds the curated finishes by score. The first route of each
// entry is the recommendation. Odd scores up to 40 and the bogey numbers are
// intentionally absent.
var routeLabels = map[int][][]string{
	170: {{"T20", "T20", "Bull"}},
	167: {{"T20", "T19", "Bull"}},
	164: {{"T20", "T18", "Bull"}},
	161: {{"T20", "T17", "Bull"}},
	160: {{"T20", "T20", "D20"}},
	158: {{"T20", "T20", "D19"}},
	157: {{"T20", "T19", "D20"}},
	156: {{"T20", "T20", "D18"}},
	155: {{"T20", "T19", "D19"}},
	154: {{"T20", "T18", "D20"}},
	153: {{"T20", "T19", "D18"}},
	152: {{"T20", "T20", "D16"}},
	151: {{"T20", "T17", "D20"}},
	150: {{"T20", "T18", "D18"}},
	149: {{"T20", "T19", "D16"}},
	148: {{"T20", "T16", "D20"}},
	147: {{"T20", "T17", "D18"}},
	146: {{"T20", "T18", "D16"}},
	145: {{"T20", "T15", "D20"}},
	144: {{"T20", "T20", "D12"}},
	143: {{"T20", "T17", "D16"}},
	142: {{"T20", "T14", "D20"}},
	141: {{"T20", "T19", "D12"}},
	140: {{"T20", "T20", "D10"}},
	139: {{"T20", "T13", "D20"}},
	138: {{"T20", "T18", "D12"}},
	137: {{"T20", "T19", "D10"}},
	136: {{"T20", "T20", "D8"}},
	135: {{"T20", "T15", "D15"}},
	134: {{"T20", "T14", "D16"}},
	133: {{"T20", "T19", "D8"}},
	132: {{"T20", "T16", "D12"}},
	131: {{"T20", "T13", "D16"}},
	130: {{"T20", "T18", "D8"}},
	129: {{"T19", "T16", "D12"}},
	128: {{"T18", "T14", "D16"}},
	127: {{"T20", "T17", "D8"}},
	126: {{"T19", "T19", "D6"}},
	125: {{"T18", "T13", "D16"}},
	124: {{"T20", "T14", "D11"}},
	123: {{"T19", "T16", "D9"}},
	122: {{"T18", "T18", "D7"}},
	121: {{"T20", "T11", "D14"}},
	120: {{"T20", "S20", "D20"}},
	119: {{"T19", "T12", "D13"}},
	118: {{"T20", "S18", "D20"}},
	117: {{"T20", "S17", "D20"}},
	116: {{"T20", "S16", "D20"}},
	115: {{"T20", "S15", "D20"}},
	114: {{"T20", "S14", "D20"}},
	113: {{"T20", "S13", "D20"}},
	112: {{"T20", "T12", "D8"}},
	111: {{"T20", "S19", "D16"}},
	110: {{"T20", "Bull"}},
	109: {{"T20", "S17", "D16"}},
	108: {{"T20", "S16", "D16"}},
	107: {{"T19", "Bull"}},
	106: {{"T20", "S14", "D16"}},
	105: {{"T20", "S13", "D16"}},
	104: {{"T18", "Bull"}},
	103: {{"T19", "S10", "D18"}},
	102: {{"T20", "S10", "D16"}},
	101: {{"T17", "Bull"}},
	100: {{"T20", "D20"}, {"S20", "T20", "D10"}},
	99: {{"T19", "S10", "D16"}},
	98: {{"T20", "D19"}},
	97: {{"T19", "D20"}},
	96: {{"T20", "D18"}},
	95: {{"T19", "D19"}},
	94: {{"T18", "D20"}},
	93: {{"T19", "D18"}},
	92: {{"T20", "D16"}},
	91: {{"T17", "D20"}},
	90: {{"T18", "D18"}},
	89: {{"T19", "D16"}},
	88: {{"T16", "D20"}},
	87: {{"T17", "D18"}},
	86: {{"T18", "D16"}},
	85: {{"T15", "D20"}},
	84: {{"T20", "D12"}},
	83: {{"T17", "D16"}},
	82: {{"T14", "D20"}},
	81: {{"T19", "D12"}, {"T15", "D18"}},
	80: {{"T20", "D10"}},
	79: {{"T19", "D11"}},
	78: {{"T18", "D12"}},
	77: {{"T19", "D10"}},
	76: {{"T20", "D8"}},
	75: {{"T15", "D15"}},
	74: {{"T14", "D16"}},
	73: {{"T19", "D8"}},
	72: {{"T16", "D12"}},
	71: {{"T13", "D16"}},
	70: {{"T18", "D8"}},
	69: {{"T19", "D6"}},
	68: {{"T20", "D4"}},
	67: {{"T17", "D8"}},
	66: {{"T10", "D18"}},
	65: {{"T11", "D16"}},
	64: {{"T16", "D8"}},
	63: {{"T13", "D12"}},
	62: {{"T10", "D16"}},
	61: {{"T15", "D8"}, {"T11", "D14"}},
	60: {{"S20", "D20"}},
	59: {{"S19", "D20"}},
	58: {{"S18", "D20"}},
	57: {{"S17", "D20"}},
	56: {{"T16", "D4"}},
	55: {{"S15", "D20"}},
	54: {{"S14", "D20"}},
	53: {{"S13", "D20"}},
	52: {{"S12", "D20"}},
	51: {{"S11", "D20"}},
	50: {{"Bull"}, {"S10", "D20"}},
	49: {{"S17", "D16"}},
	48: {{"S16", "D16"}},
	47: {{"S15", "D16"}},
	46: {{"S6", "D20"}},
	45: {{"S13", "D16"}},
	44: {{"S12", "D16"}},
	43: {{"S3", "D20"}},
	42: {{"S10", "D16"}},
	41: {{"S9", "D16"}},
	40: {{"D20"}},
	38: {{"D19"}},
	36: {{"D18"}},
	34: {{"D17"}},
	32: {{"D16"}},
	30: {{"D15"}},
	28: {{"D14"}},
	26: {{"D13"}},
	24: {{"D12"}},
	22: {{"D11"}},
	20: {{"D10"}},
	18: {{"D9"}},
	16: {{"D8"}},
	14: {{"D7"}},
	12: {{"D6"}},
	10: {{"D5"}},
	8: {{"D4"}},
	6: {{"D3"}},
	4: {{"D2"}},
	2: {{"D1"}},
}
