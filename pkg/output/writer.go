package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/weberc2/actionswizard/pkg/logger"
	"github.com/weberc2/actionswizard/pkg/objectstore"
)

// ErrNoObjectStore is returned when saving to an S3 location without an
// object store configured.
var ErrNoObjectStore = errors.New("no object store configured")

// Writer saves rendered workflow documents to file or S3 locations.
type Writer struct {
	// Objects receives documents saved to `s3://` locations. Optional.
	Objects objectstore.ObjectStore
}

// Save writes `data` to `location`. A file location is written in a single
// create/write/close; nothing is cleaned up if that fails.
func (w *Writer) Save(
	ctx context.Context,
	location string,
	data []byte,
) error {
	loc, err := ParseLocation(location)
	if err != nil {
		return err
	}

	if loc.IsS3() {
		if w.Objects == nil {
			return fmt.Errorf(
				"saving workflow to `%s`: %w",
				loc,
				ErrNoObjectStore,
			)
		}
		if err := w.Objects.PutObject(
			ctx,
			loc.Bucket,
			loc.Key,
			bytes.NewReader(data),
		); err != nil {
			return fmt.Errorf("saving workflow to `%s`: %w", loc, err)
		}
	} else if err := writeFile(ctx, loc.Path, data); err != nil {
		return fmt.Errorf("saving workflow to `%s`: %w", loc, err)
	}

	logger.Get(ctx).Info(
		"saved workflow",
		"location", loc.String(),
		"bytes", len(data),
	)
	return nil
}

func writeFile(ctx context.Context, path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		if err := file.Close(); err != nil {
			logger.Get(ctx).Error(
				"closing workflow file",
				"err", err.Error(),
				"path", path,
			)
		}
		return err
	}
	return file.Close()
}
