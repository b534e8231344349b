package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore is a DocumentStore writing documents to a local directory
// tree. Keys are slash-separated relative paths.
type FileStore struct {
	root string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir}
}

func (s *FileStore) Put(ctx context.Context, key string, document any) error {
	b, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (s *FileStore) Get(ctx context.Context, key string, document any) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document %q: %w", key, ErrNotFound)
		}
		return err
	}
	return json.Unmarshal(b, document)
}
