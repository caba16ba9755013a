package storage

import "context"

// PassthroughStorage keeps the submitted reference as-is. Used in tests and
// in deployments without Cloudinary credentials, where the data URI itself
// is stored on the document.
type PassthroughStorage struct{}

func NewPassthroughStorage() *PassthroughStorage {
	return &PassthroughStorage{}
}

func (s *PassthroughStorage) UploadDocument(_ context.Context, source, _ string) (string, error) {
	return source, nil
}

func (s *PassthroughStorage) DeleteDocument(_ context.Context, _ string) error {
	return nil
}
