// Package persistence saves per-run metadata records and an append-only
// activity log under the metadata output directory.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const logFileName = "activity.log"

// Record is one saved metadata entry: parsed data plus the raw model output
// it was derived from.
type Record struct {
	ID           string          `json:"id"`
	DocumentName string          `json:"document_name"`
	Timestamp    string          `json:"timestamp"`
	Metadata     json.RawMessage `json:"parsed_metadata"`
	RawOutput    string          `json:"raw_output,omitempty"`
}

// Store writes metadata records and log lines under a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// SaveMetadata writes a metadata record for a document run and returns the
// record path. Each record gets a unique id so concurrent runs never collide.
func (s *Store) SaveMetadata(docName string, metadata any, rawOutput string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create metadata directory: %w", err)
	}

	payload, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}

	record := Record{
		ID:           uuid.NewString(),
		DocumentName: docName,
		Timestamp:    s.now().Format("2006-01-02_15-04-05"),
		Metadata:     payload,
		RawOutput:    rawOutput,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}

	safeName := strings.ReplaceAll(docName, " ", "_")
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s_%s.json", safeName, record.Timestamp, record.ID[:8]))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write metadata record: %w", err)
	}

	_ = s.LogAction(fmt.Sprintf("Metadata saved for %q -> %s", docName, filepath.Base(path)))
	return path, nil
}

// LoadMetadata reads a metadata record from disk.
func (s *Store) LoadMetadata(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata record: %w", err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse metadata record: %w", err)
	}
	return &record, nil
}

// LogAction appends a timestamped line to the activity log.
func (s *Store) LogAction(message string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(s.dir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "[%s] %s\n", s.now().Format(time.RFC3339), message); err != nil {
		return fmt.Errorf("failed to append to activity log: %w", err)
	}
	return nil
}
