package windcorrection

// Built-in calibration model names, accepted by ModelTable and NewModel.
const (
	// ModelVantagePro2 is the Davis Vantage Pro 2 characterization with
	// corrections stored as plain decimals (scale 1).
	ModelVantagePro2 = "vantage-pro2"

	// ModelVantagePro2Compact is the same characterization with
	// corrections stored as integer tenths (scale 10), the form used by
	// byte-oriented logger firmware.
	ModelVantagePro2Compact = "vantage-pro2-compact"
)

// Table file defaults, applied when a loaded file omits the field.
const (
	defaultTableScale    = 1.0   // corrections stored as plain decimals
	defaultSentinelSpeed = 999.0 // clamp sentinel for float-indexed tables
)

// Table file limits
const (
	maxTableFileBytes  = 1 << 20 // refuse files over 1 MiB
	tableFileExtension = ".json"
)
