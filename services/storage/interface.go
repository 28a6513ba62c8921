package storage

import "context"

// Service abstracts media uploads so handlers and services never talk to
// the CDN client directly.
type Service interface {
	// UploadFile uploads a local file into the given folder and returns its
	// public URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a previously uploaded file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
