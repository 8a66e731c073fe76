package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"tourdesk/config"
)

// Uploader stores user-supplied files and returns the reference saved on the record.
type Uploader interface {
	// Save writes the file under folder and returns its public path or URL.
	Save(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	// Delete removes a file previously returned by Save. Unknown references are ignored.
	Delete(ctx context.Context, ref string) error
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true,
}

// ValidateImage rejects files that do not carry an image extension.
func ValidateImage(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return fmt.Errorf("unsupported image type %q", ext)
	}
	return nil
}

// NewUploaderFromConfig picks the backend named by UPLOAD_DRIVER.
func NewUploaderFromConfig() (Uploader, error) {
	cfg := config.AppConfig
	switch cfg.UploadDriver {
	case "", "local":
		return NewLocalStorage(cfg.UploadDir, "/"+strings.Trim(cfg.UploadDir, "/")), nil
	case "cloudinary":
		return NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.UploadDriver)
	}
}
