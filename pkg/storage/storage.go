package storage

import (
	"context"
	"errors"
	"os"
)

// ErrNotFound is returned by Fetch when the reference resolves to nothing.
var ErrNotFound = errors.New("storage: object not found")

// Metadata describes an object being stored.
type Metadata struct {
	Folder      string // logical folder, e.g. "portfolio/projects"
	Filename    string // original filename, used to derive the object name
	ContentType string
}

// Store is the blob store capability. Implementations persist binary content
// and hand back an opaque reference that the content store keeps in its
// file-bearing columns. The reference round-trips through Fetch and URL.
type Store interface {
	Store(ctx context.Context, data []byte, meta Metadata) (ref string, err error)
	Fetch(ctx context.Context, ref string) ([]byte, error)
	URL(ref string) string
}

// FromEnv selects a backend from STORAGE_BACKEND: "cloudinary" requires
// CLOUDINARY_URL, anything else falls back to local disk under MEDIA_ROOT.
func FromEnv() (Store, error) {
	switch os.Getenv("STORAGE_BACKEND") {
	case "cloudinary":
		return NewCloudinaryStore(os.Getenv("CLOUDINARY_URL"))
	default:
		root := os.Getenv("MEDIA_ROOT")
		if root == "" {
			root = "./media"
		}
		return NewLocalStore(root, "/media"), nil
	}
}
