package grid

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
)

// =============================================================================
// Snapshot Serialization API
// =============================================================================

// Snapshot is one grid analysis frame as exchanged with capture tools.
//
// The format is human-readable and designed for round-trip fidelity:
// capture → save → render produces the same frame as a live feed.
type Snapshot struct {
	// ID identifies the capture or synthesis run that produced the
	// snapshot. Optional; older files omit it.
	ID    string `json:"id,omitempty"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Cells []Cell `json:"cells"`
}

// Config returns the grid configuration the snapshot was captured with.
func (s Snapshot) Config() Config {
	return Config{Rows: s.Rows, Cols: s.Cols}
}

// Validate checks the grid dimensions and every cell.
func (s Snapshot) Validate() error {
	cfg := s.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, cl := range s.Cells {
		if err := cl.Validate(cfg); err != nil {
			return err
		}
	}
	return nil
}

// MarshalSnapshot converts a snapshot to JSON bytes.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeSnapshotTo(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSnapshotFile writes a snapshot to a JSON file.
// The file is created with 0644 permissions.
func WriteSnapshotFile(s Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return writeSnapshotTo(s, f)
}

// WriteSnapshot writes a snapshot as JSON to an io.Writer.
// Use MarshalSnapshot for in-memory serialization or WriteSnapshotFile
// for files.
func WriteSnapshot(s Snapshot, w io.Writer) error {
	return writeSnapshotTo(s, w)
}

// ReadSnapshotFile reads a JSON file and returns the decoded snapshot.
// Returns validation errors for malformed snapshots.
func ReadSnapshotFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return readSnapshotFrom(f)
}

// ReadSnapshot decodes a JSON snapshot from an io.Reader.
// Use ReadSnapshotFile for files or pass bytes.NewReader for in-memory
// data.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	return readSnapshotFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeSnapshotTo(s Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "encode snapshot")
	}
	return nil
}

func readSnapshotFrom(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeInvalidSnapshot, err, "decode snapshot")
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
