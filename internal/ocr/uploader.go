// Package ocr turns menu photos into structured menu items: images are
// uploaded to the image host and run through the vision model.
package ocr

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// uploadFolder collects all menu photos under one folder on the image host.
const uploadFolder = "lunch-menus"

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, image io.Reader) (string, error)
}

// CloudinaryUploader uploads images to Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader for the given Cloudinary account.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload stores the image and returns its public HTTPS URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, image io.Reader) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:       uploadFolder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return resp.SecureURL, nil
}
