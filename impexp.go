package stockbook

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// This file handles the import/export file format: a single human readable
// JSON document carrying the three collections.

// Import reads a snapshot from 'r' in the import/export format.
//
// The document is a JSON object with optional "laptops", "purchases", and
// "sales" arrays. Absent keys default to empty collections and unknown
// fields are ignored. The result replaces the ledger wholesale.
func Import(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("cannot parse import file: %w", err)
	}
	s.normalize()
	return &s, nil
}

// Export writes the snapshot to 'w' in the import/export format, adding an
// "exportDate" ISO-8601 timestamp. The output is indented for readability.
func Export(w io.Writer, s *Snapshot, now time.Time) error {
	doc := struct {
		*Snapshot
		ExportDate time.Time `json:"exportDate"`
	}{Snapshot: s, ExportDate: now}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export file: %w", err)
	}
	return nil
}
