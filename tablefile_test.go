package windcorrection

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadTable verifies loading a fully specified table file.
func TestLoadTable(t *testing.T) {
	content := `{
		"name": "harbor-mast",
		"scale": 1,
		"max_speed": 999,
		"sites": [
			{"speed": 20, "at_0": 3.3, "at_90": -2.3, "at_180": -3.6},
			{"speed": 25, "at_0": 3.5, "at_90": -2.7, "at_180": -4.6}
		]
	}`

	path := filepath.Join(t.TempDir(), "harbor.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write table file: %v", err)
	}

	tbl, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if tbl.Name != "harbor-mast" {
		t.Errorf("Name = %q, want %q", tbl.Name, "harbor-mast")
	}
	if len(tbl.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4 (2 sites + 2 sentinels)", len(tbl.Rows))
	}

	c := mustCorrector(t, tbl)
	got, err := c.Correct(20, 0)
	if err != nil {
		t.Fatalf("Correct failed: %v", err)
	}
	if math.Abs(got-23.3) > spotTolerance {
		t.Errorf("Correct(20, 0) = %v, want 23.3", got)
	}
}

// TestLoadTable_Defaults verifies field defaults and the filename-derived
// table name.
func TestLoadTable_Defaults(t *testing.T) {
	content := `{
		"sites": [
			{"speed": 20, "at_0": 3.3, "at_90": -2.3, "at_180": -3.6}
		]
	}`

	path := filepath.Join(t.TempDir(), "ridge-station.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write table file: %v", err)
	}

	tbl, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if tbl.Name != "ridge-station" {
		t.Errorf("Name = %q, want filename stem %q", tbl.Name, "ridge-station")
	}
	if tbl.Scale != defaultTableScale {
		t.Errorf("Scale = %v, want default %v", tbl.Scale, defaultTableScale)
	}
	if sentinel := tbl.Rows[len(tbl.Rows)-1].Speed; sentinel != defaultSentinelSpeed {
		t.Errorf("Sentinel speed = %v, want default %v", sentinel, defaultSentinelSpeed)
	}
}

// TestLoadTable_Errors verifies rejection of unusable files.
func TestLoadTable_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	writeFile := func(name, content string) string {
		t.Helper()
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		return path
	}

	t.Run("WrongExtension", func(t *testing.T) {
		path := writeFile("table.yaml", "{}")
		if _, err := LoadTable(path); !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("LoadTable error = %v, want ErrInvalidTable", err)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(tmpDir, "absent.json"))
		if err == nil {
			t.Fatal("LoadTable on missing file succeeded")
		}
		if errors.Is(err, ErrInvalidTable) {
			t.Fatalf("LoadTable on missing file = %v, want plain I/O error", err)
		}
	})

	t.Run("BadJSON", func(t *testing.T) {
		path := writeFile("broken.json", "{not json")
		if _, err := LoadTable(path); !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("LoadTable error = %v, want ErrInvalidTable", err)
		}
	})

	t.Run("NoSites", func(t *testing.T) {
		path := writeFile("empty.json", `{"name": "empty", "sites": []}`)
		if _, err := LoadTable(path); !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("LoadTable error = %v, want ErrInvalidTable", err)
		}
	})

	t.Run("Oversized", func(t *testing.T) {
		path := writeFile("huge.json", strings.Repeat(" ", maxTableFileBytes+1))
		if _, err := LoadTable(path); !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("LoadTable error = %v, want ErrInvalidTable", err)
		}
	})
}
