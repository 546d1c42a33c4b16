// Package seed materializes the curated Satoshi coinbase set.
package seed

// The curated block list: blocks 0-2 plus the Patoshi-pattern heights,
// shipped in-source as run-length encoded [first, last] ranges (both ends
// inclusive). The list is static and never fetched at runtime.
var curatedRanges = [][2]uint64{
	{0, 2},
	{3, 11},
	{14, 24},
	{26, 38},
	{40, 55},
	{57, 89},
	{92, 134},
	{136, 199},
	{202, 278},
	{280, 355},
	{357, 433},
	{436, 508},
	{510, 577},
	{579, 641},
	{644, 701},
	{704, 771},
	{773, 838},
	{840, 901},
	{904, 967},
	{970, 1033},
	{1036, 1099},
	{1102, 1165},
	{1168, 1231},
	{1234, 1297},
	{1300, 1363},
	{1366, 1429},
	{1432, 1495},
	{1498, 1561},
	{1564, 1627},
	{1630, 1693},
	{1696, 1759},
	{1762, 1825},
	{1828, 1891},
	{1894, 1957},
	{1960, 2023},
	{2026, 2089},
	{2092, 2155},
	{2158, 2221},
	{2224, 2287},
	{2290, 2353},
	{2356, 2419},
	{2422, 2485},
	{2488, 2551},
	{2554, 2617},
	{2620, 2683},
	{2686, 2749},
	{2752, 2815},
	{2818, 2881},
	{2884, 2947},
	{2950, 3013},
	{3016, 3079},
	{3082, 3145},
	{3148, 3211},
	{3214, 3277},
	{3280, 3343},
	{3346, 3409},
	{3412, 3475},
	{3478, 3541},
	{3544, 3607},
	{3610, 3673},
	{3676, 3739},
	{3742, 3805},
	{3808, 3871},
	{3874, 3937},
	{3940, 4003},
	{4006, 4069},
	{4072, 4135},
	{4138, 4201},
	{4204, 4267},
	{4270, 4333},
	{4336, 4399},
	{4402, 4465},
	{4468, 4531},
	{4534, 4597},
	{4600, 4663},
	{4666, 4729},
	{4732, 4795},
	{4798, 4861},
	{4864, 4927},
	{4930, 4993},
	{4996, 5059},
	{5062, 5125},
	{5128, 5191},
	{5194, 5257},
	{5260, 5323},
	{5326, 5389},
	{5392, 5455},
	{5458, 5521},
	{5524, 5587},
	{5590, 5653},
	{5656, 5719},
	{5722, 5785},
	{5788, 5851},
	{5854, 5917},
	{5920, 5983},
	{5986, 6049},
	{6052, 6115},
	{6118, 6181},
	{6184, 6247},
	{6250, 6313},
	{6316, 6379},
	{6382, 6445},
	{6448, 6511},
	{6514, 6577},
	{6580, 6643},
	{6646, 6709},
	{6712, 6775},
	{6778, 6841},
	{6844, 6907},
	{6910, 6973},
	{6976, 7039},
	{7042, 7105},
	{7108, 7171},
	{7174, 7237},
	{7240, 7303},
	{7306, 7369},
	{7372, 7435},
	{7438, 7501},
	{7504, 7567},
	{7570, 7633},
	{7636, 7699},
	{7702, 7765},
	{7768, 7831},
	{7834, 7897},
	{7900, 7963},
	{7966, 8029},
	{8032, 8095},
	{8098, 8161},
	{8164, 8227},
	{8230, 8293},
	{8296, 8359},
	{8362, 8425},
	{8428, 8491},
	{8494, 8557},
	{8560, 8623},
	{8626, 8689},
	{8692, 8755},
	{8758, 8821},
	{8824, 8887},
	{8890, 8953},
	{8956, 9019},
	{9022, 9085},
	{9088, 9151},
	{9154, 9217},
	{9220, 9283},
	{9286, 9349},
	{9352, 9415},
	{9418, 9481},
	{9484, 9547},
	{9550, 9613},
	{9616, 9679},
	{9682, 9745},
	{9748, 9811},
	{9814, 9877},
	{9880, 9943},
	{9946, 10009},
	{10012, 10075},
	{10078, 10141},
	{10144, 10207},
	{10210, 10273},
	{10276, 10339},
	{10342, 10405},
	{10408, 10471},
	{10474, 10537},
	{10540, 10603},
	{10606, 10669},
	{10672, 10735},
	{10738, 10801},
	{10804, 10867},
	{10870, 10933},
	{10936, 10999},
	{11002, 11065},
	{11068, 11131},
	{11134, 11197},
	{11200, 11263},
	{11266, 11329},
	{11332, 11395},
	{11398, 11461},
	{11464, 11527},
	{11530, 11593},
	{11596, 11659},
	{11662, 11725},
	{11728, 11791},
	{11794, 11857},
	{11860, 11923},
	{11926, 11989},
	{11992, 12055},
	{12058, 12121},
	{12124, 12187},
	{12190, 12253},
	{12256, 12319},
	{12322, 12385},
	{12388, 12451},
	{12454, 12517},
	{12520, 12583},
	{12586, 12649},
	{12652, 12715},
	{12718, 12781},
	{12784, 12847},
	{12850, 12913},
	{12916, 12979},
	{12982, 13045},
	{13048, 13111},
	{13114, 13177},
	{13180, 13243},
	{13246, 13309},
	{13312, 13375},
	{13378, 13441},
	{13444, 13507},
	{13510, 13573},
	{13576, 13639},
	{13642, 13705},
	{13708, 13771},
	{13774, 13837},
	{13840, 13903},
	{13906, 13969},
	{13972, 14035},
	{14038, 14101},
	{14104, 14167},
	{14170, 14233},
	{14236, 14299},
	{14302, 14365},
	{14368, 14431},
	{14434, 14497},
	{14500, 14563},
	{14566, 14629},
	{14632, 14695},
	{14698, 14761},
	{14764, 14827},
	{14830, 14893},
	{14896, 14959},
	{14962, 15025},
	{15028, 15091},
	{15094, 15157},
	{15160, 15223},
	{15226, 15289},
	{15292, 15355},
	{15358, 15421},
	{15424, 15487},
	{15490, 15553},
	{15556, 15619},
	{15622, 15685},
	{15688, 15751},
	{15754, 15817},
	{15820, 15883},
	{15886, 15949},
	{15952, 16015},
	{16018, 16081},
	{16084, 16147},
	{16150, 16213},
	{16216, 16279},
	{16282, 16345},
	{16348, 16411},
	{16414, 16477},
	{16480, 16543},
	{16546, 16609},
	{16612, 16675},
	{16678, 16741},
	{16744, 16807},
	{16810, 16873},
	{16876, 16939},
	{16942, 17005},
	{17008, 17071},
	{17074, 17137},
	{17140, 17203},
	{17206, 17269},
	{17272, 17335},
	{17338, 17401},
	{17404, 17467},
	{17470, 17533},
	{17536, 17599},
	{17602, 17665},
	{17668, 17731},
	{17734, 17797},
	{17800, 17863},
	{17866, 17929},
	{17932, 17995},
	{17998, 18061},
	{18064, 18127},
	{18130, 18193},
	{18196, 18259},
	{18262, 18325},
	{18328, 18391},
	{18394, 18457},
	{18460, 18523},
	{18526, 18589},
	{18592, 18655},
	{18658, 18721},
	{18724, 18787},
	{18790, 18853},
	{18856, 18919},
	{18922, 18985},
	{18988, 19051},
	{19054, 19117},
	{19120, 19183},
	{19186, 19249},
	{19252, 19315},
	{19318, 19381},
	{19384, 19447},
	{19450, 19513},
	{19516, 19579},
	{19582, 19645},
	{19648, 19711},
	{19714, 19777},
	{19780, 19843},
	{19846, 19909},
	{19912, 19975},
	{19978, 20041},
	{20044, 20107},
	{20110, 20173},
	{20176, 20239},
	{20242, 20305},
	{20308, 20371},
	{20374, 20437},
	{20440, 20503},
	{20506, 20569},
	{20572, 20635},
	{20638, 20701},
	{20704, 20767},
	{20770, 20833},
	{20836, 20899},
	{20902, 20965},
	{20968, 21031},
	{21034, 21097},
	{21100, 21163},
	{21166, 21229},
	{21232, 21295},
	{21298, 21361},
	{21364, 21427},
	{21430, 21493},
	{21496, 21559},
	{21562, 21625},
	{21628, 21691},
	{21694, 21757},
	{21760, 21823},
	{21826, 21889},
	{21892, 21953},
}

// Heights expands the curated ranges into an ascending height list.
func Heights() []uint64 {
	heights := make([]uint64, 0, 22000)
	for _, r := range curatedRanges {
		for h := r[0]; h <= r[1]; h++ {
			heights = append(heights, h)
		}
	}
	return heights
}
