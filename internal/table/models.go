package table

// Reference calibration tables for supported anemometer models.
//
// The data reproduces the manufacturer's wind tunnel characterization of
// the Davis Vantage Pro 2 cup anemometer: correction magnitudes at 0, 90
// and 180 degrees for calibration sites every 5 speed units from 20 to
// 150. Both encodings of the same characterization ship here, a plain
// table at scale 1 and a compact integer-tenths table at scale 10 whose
// thresholds fit an unsigned byte.

// Model names, also used for lookup by the public API and the CLIs.
const (
	VantagePro2Name        = "vantage-pro2"
	VantagePro2CompactName = "vantage-pro2-compact"
)

// Storage scales of the reference encodings.
const (
	vantagePro2Scale        = 1
	vantagePro2CompactScale = 10
)

var vantagePro2Rows = []Row{
	{0, 0.0, 0.0, 0.0}, // zero sentinel
	{20, 3.3, -2.3, -3.6},
	{25, 3.5, -2.7, -4.6},
	{30, 3.8, -2.9, -4.8},
	{35, 4.2, -3.4, -5.3},
	{40, 4.5, -4.1, -5.7},
	{45, 4.7, -3.8, -4.5},
	{50, 5.0, -4.5, -4.9},
	{55, 5.3, -4.8, -5.2},
	{60, 5.7, -5.3, -5.9},
	{65, 5.8, -6.0, -6.0},
	{70, 6.2, -5.6, -6.1},
	{75, 6.4, -6.0, -6.8},
	{80, 6.8, -6.4, -6.9},
	{85, 7.1, -7.4, -6.8},
	{90, 7.4, -8.0, -6.8},
	{95, 7.5, -8.1, -7.5},
	{100, 7.7, -7.9, -7.2},
	{105, 8.2, -8.1, -7.7},
	{110, 8.5, -8.5, -7.7},
	{115, 8.9, -8.8, -8.5},
	{120, 9.5, -9.4, -9.0},
	{125, 10.0, -9.6, -9.8},
	{130, 9.8, -9.8, -10.3},
	{135, 9.8, -10.0, -11.0},
	{140, 9.3, -10.2, -11.3},
	{145, 9.5, -10.9, -10.5},
	{150, 9.8, -12.1, -12.0},
	{999, 9.8, -12.1, -12.0}, // clamp sentinel at max float-indexed speed
}

var vantagePro2CompactRows = []Row{
	{0, 0, 0, 0}, // zero sentinel
	{20, 33, -23, -36},
	{25, 35, -27, -46},
	{30, 38, -29, -48},
	{35, 42, -34, -53},
	{40, 45, -41, -57},
	{45, 47, -38, -45},
	{50, 50, -45, -49},
	{55, 53, -48, -52},
	{60, 57, -53, -59},
	{65, 58, -60, -60},
	{70, 62, -56, -61},
	{75, 64, -60, -68},
	{80, 68, -64, -69},
	{85, 71, -74, -68},
	{90, 74, -80, -68},
	{95, 75, -81, -75},
	{100, 77, -79, -72},
	{105, 82, -81, -77},
	{110, 85, -85, -77},
	{115, 89, -88, -85},
	{120, 95, -94, -90},
	{125, 100, -96, -98},
	{130, 98, -98, -103},
	{135, 98, -100, -110},
	{140, 93, -102, -113},
	{145, 95, -109, -105},
	{150, 98, -121, -120},
	{255, 98, -121, -120}, // clamp sentinel at max byte-indexed speed
}

// VantagePro2 returns a freshly compiled copy of the Davis Vantage Pro 2
// reference table (scale 1, clamp sentinel at 999).
func VantagePro2() *Table {
	return mustCompile(VantagePro2Name, vantagePro2Scale, vantagePro2Rows)
}

// VantagePro2Compact returns a freshly compiled copy of the integer-tenths
// encoding of the Vantage Pro 2 table (scale 10, clamp sentinel at 255),
// as used on byte-indexed data loggers.
func VantagePro2Compact() *Table {
	return mustCompile(VantagePro2CompactName, vantagePro2CompactScale, vantagePro2CompactRows)
}

// ByName returns the compiled reference table for a model name, or false
// if the name is unknown.
func ByName(name string) (*Table, bool) {
	switch name {
	case VantagePro2Name:
		return VantagePro2(), true
	case VantagePro2CompactName:
		return VantagePro2Compact(), true
	default:
		return nil, false
	}
}

// ModelNames lists the built-in reference models.
func ModelNames() []string {
	return []string{VantagePro2Name, VantagePro2CompactName}
}

// mustCompile builds a reference table. Reference data is fixed at compile
// time and covered by tests, so a failure here is a programming error.
func mustCompile(name string, scale float64, rows []Row) *Table {
	t, err := Build(name, scale, rows)
	if err != nil {
		panic("table: reference model " + name + ": " + err.Error())
	}
	return t
}
