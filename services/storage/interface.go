package storage

import "context"

// StorageService stores identity documents and returns a permanent
// reference for them.
type StorageService interface {
	// UploadDocument stores a document (a data URI or local file path)
	// under the given folder and returns its storage URL.
	UploadDocument(ctx context.Context, source, folder string) (string, error)
	// DeleteDocument removes a stored document by its public ID.
	DeleteDocument(ctx context.Context, publicID string) error
}
