package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStorage uploads images to a Cloudinary account.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, cloudName: cloudName}, nil
}

func (s *CloudinaryStorage) Save(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	resp, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID: uuid.New().String(),
		Folder:   folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, ref string) error {
	publicID := PublicIDFromURL(ref)
	if publicID == "" {
		return nil
	}
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary delete failed: %w", err)
	}
	return nil
}

// PublicIDFromURL extracts "folder/name" from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1712/folder/name.jpg.
func PublicIDFromURL(url string) string {
	_, rest, ok := strings.Cut(url, "/upload/")
	if !ok {
		return ""
	}
	if first, tail, found := strings.Cut(rest, "/"); found && len(first) > 1 && first[0] == 'v' && isDigits(first[1:]) {
		rest = tail
	}
	return strings.TrimSuffix(rest, path.Ext(rest))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
