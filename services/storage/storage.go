package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService implements Service on top of the Cloudinary uploader.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryService creates a new CloudinaryService instance.
func NewCloudinaryService(cld *cloudinary.Cloudinary) *CloudinaryService {
	return &CloudinaryService{cld: cld}
}

// UploadFile uploads a file to Cloudinary into the specified folder and
// returns its secure URL.
func (s *CloudinaryService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", fmt.Errorf("CloudinaryService: failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryService: no URL returned")
	}
	return result.SecureURL, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *CloudinaryService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryService: failed to delete file: %w", err)
	}
	return nil
}
