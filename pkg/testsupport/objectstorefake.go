package testsupport

import (
	"bytes"
	"context"
	"io"
)

// ObjectStoreFake is an in-memory `objectstore.ObjectStore` keyed by
// (bucket, key).
type ObjectStoreFake map[[2]string][]byte

func (osf ObjectStoreFake) PutObject(
	ctx context.Context,
	bucket string,
	key string,
	data io.ReadSeeker,
) error {
	var b bytes.Buffer
	if _, err := io.Copy(&b, data); err != nil {
		return err
	}
	osf[[2]string{bucket, key}] = b.Bytes()
	return nil
}

// Object returns the data stored at (bucket, key).
func (osf ObjectStoreFake) Object(bucket, key string) ([]byte, bool) {
	data, found := osf[[2]string{bucket, key}]
	return data, found
}
