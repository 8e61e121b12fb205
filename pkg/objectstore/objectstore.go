package objectstore

import (
	"context"
	"io"
)

// ObjectStore stores rendered workflow documents as objects.
type ObjectStore interface {
	PutObject(
		ctx context.Context,
		bucket string,
		key string,
		data io.ReadSeeker,
	) error
}
