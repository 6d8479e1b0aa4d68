// Package cloudinary wraps the Cloudinary SDK as the application's blob
// store: it accepts raw image bytes and returns a stable retrieval URL.
package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/MartaCamacho/fit-project-server/internal/config"
)

// Upload errors.
var (
	// ErrUploadFailed is returned when the upload backend rejects the
	// request or the transport fails.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrUnsupportedFormat is returned for anything that is not a JPEG or
	// PNG raster image, matching the formats the upload storage accepts.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrEmptyImage is returned when no image bytes were supplied.
	ErrEmptyImage = errors.New("image cannot be empty")
)

// Uploader uploads images to Cloudinary and returns their secure URLs.
type Uploader struct {
	client *cloudinary.Cloudinary
	folder string
}

// New creates an Uploader from the given credentials.
func New(cfg config.CloudinaryConfig) (*Uploader, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &Uploader{
		client: client,
		folder: cfg.Folder,
	}, nil
}

// Upload sends the image to Cloudinary and returns its secure retrieval URL.
// The name is used as the base of the remote public ID; a random suffix keeps
// distinct uploads with the same filename from overwriting each other.
func (u *Uploader) Upload(ctx context.Context, image []byte, name string) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyImage
	}

	if err := checkFormat(image); err != nil {
		return "", err
	}

	publicID := publicIDFor(name)

	resp, err := u.client.Upload.Upload(ctx, bytes.NewReader(image), uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       publicID,
		AllowedFormats: api.CldAPIArray{"jpg", "png"},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	// The SDK reports API-level rejections on the response, not as an error.
	if resp.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("%w: empty secure URL in response", ErrUploadFailed)
	}

	return resp.SecureURL, nil
}

// checkFormat sniffs the image content and rejects everything that is not
// JPEG or PNG before any bytes leave the process.
func checkFormat(image []byte) error {
	switch http.DetectContentType(image) {
	case "image/jpeg", "image/png":
		return nil
	default:
		return ErrUnsupportedFormat
	}
}

// publicIDFor derives the remote public ID from the uploaded filename, the
// way the original storage was configured: the name without its extension,
// plus a random suffix.
func publicIDFor(name string) string {
	base := name
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.TrimSpace(base)
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
}
