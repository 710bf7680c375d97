package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps objects on the local filesystem under a root directory.
// The reference is the path relative to the root.
type LocalStore struct {
	root      string
	urlPrefix string
}

// NewLocalStore builds a store rooted at root; served URLs are prefixed with
// urlPrefix (e.g. "/media").
func NewLocalStore(root, urlPrefix string) *LocalStore {
	return &LocalStore{root: root, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

func (s *LocalStore) Store(_ context.Context, data []byte, meta Metadata) (string, error) {
	name := meta.Filename
	if name == "" {
		name = "upload"
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	rel := filepath.Join(meta.Folder, fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], ext))

	full := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

func (s *LocalStore) Fetch(_ context.Context, ref string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(ref)))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *LocalStore) URL(ref string) string {
	return s.urlPrefix + "/" + ref
}
