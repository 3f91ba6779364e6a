package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/models"
)

const defaultFilePath = "./data/app-data.json"

// FileStore keeps the document in a local JSON file, the development mode.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store.
func NewFileStore(path string) *FileStore {
	if strings.TrimSpace(path) == "" {
		path = defaultFilePath
	}
	return &FileStore{path: path}
}

// ReadAll loads the document; a missing or unparsable file falls back to the
// initial data.
func (s *FileStore) ReadAll(ctx context.Context) (*models.Document, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warnw("store_file_read_failed", "path", s.path, "error", err)
		}
		return InitialDocument(), nil
	}
	var doc models.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		logger.Warnw("store_file_decode_failed", "path", s.path, "error", err)
		return InitialDocument(), nil
	}
	return &doc, nil
}

// WriteAll replaces the whole document on disk.
func (s *FileStore) WriteAll(ctx context.Context, doc *models.Document) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, payload, 0o644)
}
