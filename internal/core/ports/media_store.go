package ports

import (
	"context"
	"io"
)

// MediaStore is the outbound port to object storage for sketch and design
// images. Domain code only ever handles the returned URLs.
type MediaStore interface {
	// Upload stores one image and returns its public URL.
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)

	// Remove deletes a previously uploaded image by object name.
	Remove(ctx context.Context, objectName string) error
}
