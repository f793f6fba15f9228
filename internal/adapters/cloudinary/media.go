package cloudinary

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/trendloom/backoffice/internal/adapters/config"
	"github.com/trendloom/backoffice/internal/core/port"
)

type MediaStore struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewMediaStore(cfg config.CloudinaryConfig) (port.MediaStorePort, error) {
	client, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary client: %w", err)
	}
	client.Config.URL.Secure = true

	return &MediaStore{
		client: client,
		folder: cfg.UploadFolder,
	}, nil
}

// publicID derives a collision-free asset name. The original filename is
// kept as a prefix so assets stay recognizable in the media library.
func publicID(filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	if base == "" || base == "." {
		base = "image"
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString())
}

func (s *MediaStore) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID(filename),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", resp.Error.Message)
	}

	return resp.SecureURL, nil
}
