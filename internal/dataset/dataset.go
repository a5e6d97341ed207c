// Package dataset loads table records from JSON files and exports
// selections back to disk.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/henri123lemoine/tabula/internal/debug"
	"github.com/henri123lemoine/tabula/internal/table"
)

// lockPath returns the sidecar lock file guarding path.
func lockPath(path string) string {
	return path + ".lock"
}

// Load reads a JSON array of objects from path. Numbers are kept as
// json.Number so integer and float fields still sort numerically.
func Load(path string) ([]table.Record, error) {
	defer debug.Timed("dataset: load " + path)()

	// Acquire shared (read) lock - blocks if an export holds the exclusive lock
	fileLock := flock.New(lockPath(path))
	if err := fileLock.RLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Decode parses a JSON array of objects into records.
func Decode(data []byte) ([]table.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := make([]table.Record, len(raw))
	for i, obj := range raw {
		records[i] = table.Record(obj)
	}
	return records, nil
}

// Encode renders records as an indented JSON array. nil encodes as [].
func Encode(records []table.Record) ([]byte, error) {
	if records == nil {
		records = []table.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return append(data, '\n'), nil
}

// Export writes records to path as indented JSON.
func Export(path string, records []table.Record) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Acquire exclusive lock - blocks until readers are done
	fileLock := flock.New(lockPath(path))
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	debug.Log("dataset: exported %d records to %s", len(records), path)
	return nil
}
