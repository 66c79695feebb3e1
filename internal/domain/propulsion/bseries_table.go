package propulsion

// coefficientSet is one of the two Wageningen B-series polynomials (KT or
// KQ): each term is C[i] * J^s[i] * (P/D)^t[i] * (A_E/A_0)^u[i] * Z^v[i].
// Carried as package-level static data, analogous to how the pack keeps
// large static configuration tables at package scope rather than loading
// them at runtime.
type coefficientSet struct {
	c []float64
	s []int
	t []int
	u []int
	v []int
}

// ktCoefficients is the 39-term open-water thrust polynomial.
var ktCoefficients = coefficientSet{
	c: []float64{
		0.008805, -0.204554, 0.166351, 0.158114,
		-0.147581, -0.481497, 0.415437, 0.0144043,
		-0.0530054, 0.0143481, 0.0606826, -0.0125894,
		0.0109689, -0.133698, 0.0063841, -0.0013272,
		0.168496, -0.0507214, 0.0854559, -0.0504475,
		0.010465, -0.0064827, -0.0084173, 0.0168424,
		-0.001023, -0.0317791, 0.018604, -0.004108,
		-0.0006068, -0.0049819, 0.0025983, -0.0005605,
		-0.0016365, -0.0003288, 0.0001165, 0.0006909,
		0.0042175, 0.00005652, -0.0014656,
	},
	s: []int{0, 1, 0, 0, 2, 1, 0, 0, 2, 0, 1, 0, 1, 0, 0, 2, 3, 0,
		2, 3, 1, 2, 0, 1, 3, 0, 1, 0, 0, 1, 2, 3, 1, 1, 2, 0,
		0, 3, 0},
	t: []int{0, 0, 1, 2, 0, 1, 2, 0, 0, 1, 1, 0, 0, 3, 6, 6, 0, 0,
		0, 0, 6, 6, 3, 3, 3, 3, 0, 2, 0, 0, 0, 0, 2, 6, 6, 0,
		3, 6, 3},
	u: []int{0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 1, 2,
		2, 2, 2, 2, 0, 0, 0, 1, 2, 2, 0, 0, 0, 0, 0, 0, 0, 1,
		1, 1, 2},
	v: []int{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2},
}

// kqCoefficients is the 47-term open-water torque polynomial.
var kqCoefficients = coefficientSet{
	c: []float64{
		0.0037937, 0.0088652, -0.032241, 0.0034478,
		-0.0408811, -0.108009, -0.0885381, 0.188561,
		-0.0037087, 0.005137, 0.0209449, 0.0047432,
		-0.0072341, 0.0043839, -0.0269403, 0.0558082,
		0.0161886, 0.0031809, 0.015896, 0.0471729,
		0.0196283, -0.0502782, -0.030055, 0.0417122,
		-0.0397722, -0.0035002, -0.0106854, 0.001109,
		-0.0003139, 0.0035985, -0.0014212, -0.0038364,
		0.0126803, -0.0031828, 0.0033427, -0.0018349,
		0.0001125, -0.00002972, 0.0002696, 0.0008327,
		0.0015533, 0.0003027, -0.0001843, -0.0004254,
		0.00008692, -0.0004659, 0.00005542,
	},
	s: []int{0, 2, 1, 0, 0, 1, 2, 0, 1, 0, 1, 2, 2, 1, 0, 3, 0, 1,
		0, 1, 3, 0, 3, 2, 0, 0, 3, 3, 0, 3, 0, 1, 0, 2, 0, 1,
		3, 3, 1, 2, 0, 0, 0, 0, 3, 0, 1},
	t: []int{0, 0, 1, 2, 1, 1, 1, 2, 0, 1, 1, 1, 0, 1, 2, 0, 3, 3,
		0, 0, 0, 1, 1, 2, 3, 6, 0, 3, 6, 0, 6, 0, 2, 3, 6, 1,
		2, 6, 0, 0, 2, 6, 0, 3, 3, 6, 6},
	u: []int{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2, 2, 2, 0, 0, 0, 1, 1, 2, 2, 2, 2, 0,
		0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 2},
	v: []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2,
		2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
}
