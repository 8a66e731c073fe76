package tourpackage

import (
	"context"
	"fmt"
	"mime/multipart"

	"tourdesk/models"
)

func (s *DefaultTourPackageService) addImage(ctx context.Context, packageID string, fh *multipart.FileHeader, kind string) error {
	path, err := s.Uploader.Save(ctx, fh, uploadFolder)
	if err != nil {
		return fmt.Errorf("failed to store %s image: %w", kind, err)
	}
	img := &models.TourPackageImage{PackageID: packageID, Path: path, Type: kind}
	if err := s.Packages.AddImage(ctx, img); err != nil {
		return fmt.Errorf("failed to save %s image: %w", kind, err)
	}
	return nil
}
