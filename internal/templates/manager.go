// Package templates manages base and user-registered document templates:
// discovery, working copies, and registration with style extraction.
package templates

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

// Manager locates templates across the user and base template directories.
// The user directory takes precedence when both hold a template of the same
// name.
type Manager struct {
	userDir    string
	baseDir    string
	workingDir string
	styleStore *styles.Store
}

// NewManager creates a template manager.
func NewManager(userDir, baseDir, workingDir string, styleStore *styles.Store) *Manager {
	return &Manager{
		userDir:    userDir,
		baseDir:    baseDir,
		workingDir: workingDir,
		styleStore: styleStore,
	}
}

// List returns the deduplicated, sorted names of all available templates.
func (m *Manager) List() ([]string, error) {
	seen := make(map[string]struct{})
	var names []string
	for _, dir := range []string{m.baseDir, m.userDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to list templates in %s: %w", dir, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".docx") {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Find locates a template by name, case-insensitively, searching the user
// directory before the base directory. Returns the absolute path or an empty
// string when not found.
func (m *Manager) Find(name string) string {
	target := strings.ToLower(name)
	if !strings.HasSuffix(target, ".docx") {
		target += ".docx"
	}
	for _, dir := range []string{m.userDir, m.baseDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if strings.ToLower(entry.Name()) == target {
				return filepath.Join(dir, entry.Name())
			}
		}
	}
	return ""
}

// PrepareWorkingCopy copies a template into the working directory so the
// original is never modified. Returns the working copy path.
func (m *Manager) PrepareWorkingCopy(name string) (string, error) {
	source := m.Find(name)
	if source == "" {
		return "", fmt.Errorf("template %q not found", name)
	}

	if err := os.MkdirAll(m.workingDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create working directory: %w", err)
	}

	base := strings.TrimSuffix(strings.ToLower(filepath.Base(source)), ".docx")
	dest := filepath.Join(m.workingDir, base+"_working.docx")
	if err := copyFile(source, dest); err != nil {
		return "", fmt.Errorf("failed to prepare working copy: %w", err)
	}
	return dest, nil
}

// Register copies a template into the user template directory under the
// category's name and extracts its styles into the style store.
func (m *Manager) Register(templatePath string, category types.DocumentCategory) (string, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return "", fmt.Errorf("template path does not exist: %w", err)
	}

	if err := os.MkdirAll(m.userDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create template directory: %w", err)
	}

	dest := filepath.Join(m.userDir, strings.ToLower(string(category))+".docx")
	if err := copyFile(templatePath, dest); err != nil {
		return "", fmt.Errorf("failed to register template: %w", err)
	}

	if _, err := m.styleStore.Extract(dest, category); err != nil {
		return "", fmt.Errorf("failed to extract styles from registered template: %w", err)
	}
	return dest, nil
}

func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
