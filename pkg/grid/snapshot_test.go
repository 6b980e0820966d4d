package grid

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
)

func testSnapshot() Snapshot {
	return Snapshot{
		ID:   "3b44cf1e-08a7-4b7e-96d1-5f0a9c2d7e88",
		Rows: 2,
		Cols: 2,
		Cells: []Cell{
			{Row: 0, Col: 0, Dominant: Color{1, 0, 0}, AvgRed: 0.9, Brightness: 0.3, Contrast: 0.5},
			{Row: 0, Col: 1, Dominant: Color{0, 1, 0}, AvgGreen: 0.9, Brightness: 0.6, Contrast: 0.2},
			{Row: 1, Col: 0, Dominant: Color{0, 0, 1}, AvgBlue: 0.9, Brightness: 0.1, Contrast: 0.8},
		},
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	s := testSnapshot()
	path := filepath.Join(t.TempDir(), "frame.json")

	if err := WriteSnapshotFile(s, path); err != nil {
		t.Fatalf("WriteSnapshotFile() error = %v", err)
	}

	got, err := ReadSnapshotFile(path)
	if err != nil {
		t.Fatalf("ReadSnapshotFile() error = %v", err)
	}

	if !reflect.DeepEqual(got, s) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, s)
	}
}

func TestSnapshotColorWireFormat(t *testing.T) {
	data, err := MarshalSnapshot(testSnapshot())
	if err != nil {
		t.Fatalf("MarshalSnapshot() error = %v", err)
	}

	// Dominant colors serialize as (r, g, b) tuples, not objects, to stay
	// compatible with the capture pipeline's snapshot files.
	if !strings.Contains(string(data), `"dominant_color": [`) {
		t.Errorf("dominant_color not serialized as array:\n%s", data)
	}
}

func TestReadSnapshotRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
		code errors.Code
	}{
		{
			name: "malformed json",
			json: `{"rows": 2,`,
			code: errors.ErrCodeInvalidSnapshot,
		},
		{
			name: "zero rows",
			json: `{"rows": 0, "cols": 2, "cells": []}`,
			code: errors.ErrCodeInvalidGrid,
		},
		{
			name: "cell outside grid",
			json: `{"rows": 1, "cols": 1, "cells": [{"row": 3, "col": 0, "dominant_color": [0, 0, 0]}]}`,
			code: errors.ErrCodeInvalidCell,
		},
		{
			name: "channel out of range",
			json: `{"rows": 1, "cols": 1, "cells": [{"row": 0, "col": 0, "dominant_color": [2, 0, 0]}]}`,
			code: errors.ErrCodeInvalidCell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSnapshot(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("ReadSnapshot() = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadSnapshot() code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestReadSnapshotFileMissing(t *testing.T) {
	_, err := ReadSnapshotFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadSnapshotFile() code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
