package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore keeps objects in Cloudinary. The reference it returns is the
// secure delivery URL, so Fetch and URL need no extra lookups.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	client *http.Client
}

// NewCloudinaryStore builds a store from a cloudinary:// URL.
func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("storage: CLOUDINARY_URL is not set")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("storage: cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStore{
		cld:    cld,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *CloudinaryStore) Store(ctx context.Context, data []byte, meta Metadata) (string, error) {
	base := strings.TrimSuffix(meta.Filename, path.Ext(meta.Filename))
	if base == "" {
		base = "upload"
	}
	// Suffix with a random token so re-uploads never overwrite each other.
	publicID := fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])

	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       meta.Folder,
		PublicID:     publicID,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("storage: cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("storage: cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStore) Fetch(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage: cloudinary fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storage: cloudinary fetch: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (s *CloudinaryStore) URL(ref string) string {
	return ref
}
