package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docforge/docforge/internal/domain"
)

// Store is the file-based implementation of domain.DocumentStore.
type Store struct{}

// New creates a file-based document store.
func New() *Store {
	return &Store{}
}

// ReadTemplate reads UTF-8 template text from path.
// Returns domain.ErrTemplateNotFound when the path does not exist.
func (s *Store) ReadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// WriteDocument writes generated document text to path, creating
// intermediate directories and overwriting any existing file.
func (s *Store) WriteDocument(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing document %s: %w", path, err)
	}
	return nil
}

// WriteReport serializes a validation report as indented JSON to path,
// creating parent directories as needed.
func (s *Store) WriteReport(path string, report *domain.ValidationReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
