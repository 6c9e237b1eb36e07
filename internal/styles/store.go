package styles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/priyansh/legal-doc-agent/internal/docx"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Store reads and writes per-category style files under a single directory.
// Files are named <category>_style.json with the category lowercased.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the style file path for a category.
func (s *Store) Path(category types.DocumentCategory) string {
	return filepath.Join(s.dir, category.StyleFileName())
}

// Load reads the style file for a category.
func (s *Store) Load(category types.DocumentCategory) (Profile, error) {
	data, err := os.ReadFile(s.Path(category))
	if err != nil {
		return nil, err
	}
	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("invalid style file %s: %w", s.Path(category), err)
	}
	return profile, nil
}

// Save writes the style file for a category, creating the directory if
// needed.
func (s *Store) Save(category types.DocumentCategory, profile Profile) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create style directory: %w", err)
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode style profile: %w", err)
	}
	if err := os.WriteFile(s.Path(category), data, 0o644); err != nil {
		return fmt.Errorf("failed to write style file: %w", err)
	}
	return nil
}

// Extract scans a template and saves its profile as the category style file.
func (s *Store) Extract(templatePath string, category types.DocumentCategory) (Profile, error) {
	ref, err := docx.Open(templatePath)
	if err != nil {
		return nil, err
	}
	profile := Scan(ref)
	if err := s.Save(category, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
