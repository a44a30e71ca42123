package windcorrection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tableFile is the on-disk JSON form of a calibration table. Files list
// only the real calibration sites; the zero and clamp sentinels are added
// on load.
type tableFile struct {
	Name     string          `json:"name"`
	Scale    float64         `json:"scale"`
	MaxSpeed float64         `json:"max_speed"`
	Sites    []tableFileSite `json:"sites"`
}

type tableFileSite struct {
	Speed float64 `json:"speed"`
	At0   float64 `json:"at_0"`
	At90  float64 `json:"at_90"`
	At180 float64 `json:"at_180"`
}

// LoadTable reads a calibration table from a JSON file and shapes it with
// the standard sentinels. Omitted fields take defaults: scale 1, maximum
// speed 999, and the file's base name as the table name.
//
// The returned table has passed full validation and can be placed into a
// Config directly.
func LoadTable(path string) (CalibrationTable, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != tableFileExtension {
		return CalibrationTable{}, fmt.Errorf("%w: unsupported table file extension %q", ErrInvalidTable, ext)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return CalibrationTable{}, fmt.Errorf("reading table file: %w", err)
	}
	if fi.Size() > maxTableFileBytes {
		return CalibrationTable{}, fmt.Errorf("%w: table file %s exceeds %d bytes", ErrInvalidTable, path, maxTableFileBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return CalibrationTable{}, fmt.Errorf("reading table file: %w", err)
	}

	return parseTable(data, tableNameFromPath(path))
}

// parseTable decodes the JSON form, applies defaults and builds the
// sentinel-shaped table.
func parseTable(data []byte, fallbackName string) (CalibrationTable, error) {
	var tf tableFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return CalibrationTable{}, fmt.Errorf("%w: parsing table file: %v", ErrInvalidTable, err)
	}

	name := tf.Name
	if name == "" {
		name = fallbackName
	}

	scale := tf.Scale
	if scale == 0 {
		scale = defaultTableScale
	}

	maxSpeed := tf.MaxSpeed
	if maxSpeed == 0 {
		maxSpeed = defaultSentinelSpeed
	}

	sites := make([]CalibrationRow, len(tf.Sites))
	for i, s := range tf.Sites {
		sites[i] = CalibrationRow{Speed: s.Speed, At0: s.At0, At90: s.At90, At180: s.At180}
	}

	return TableFromSites(name, scale, maxSpeed, sites)
}

// tableNameFromPath derives a table name from the file's base name with
// the extension removed.
func tableNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
