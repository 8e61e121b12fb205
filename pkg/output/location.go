package output

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Extensions holds the file extensions a workflow may be saved with.
var Extensions = [...]string{".yml", ".yaml"}

const s3Scheme = "s3://"

// Location identifies where a workflow document is saved: either a local
// file path or an S3 object.
type Location struct {
	// Path is the local file path. Empty for S3 locations.
	Path string

	// Bucket and Key identify the S3 object. Empty for file locations.
	Bucket string
	Key    string
}

// IsS3 reports whether the location is an S3 object.
func (l Location) IsS3() bool { return l.Bucket != "" }

func (l Location) String() string {
	if l.IsS3() {
		return s3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// InvalidExtensionErr is returned for locations not ending in one of
// `Extensions`.
type InvalidExtensionErr struct {
	Location string
}

func (err *InvalidExtensionErr) Error() string {
	return fmt.Sprintf(
		"invalid location `%s`: wanted a `.yml` or `.yaml` file",
		err.Location,
	)
}

// InvalidLocationErr is returned for malformed S3 locations.
type InvalidLocationErr struct {
	Location string
	Reason   string
}

func (err *InvalidLocationErr) Error() string {
	return fmt.Sprintf("invalid location `%s`: %s", err.Location, err.Reason)
}

// ParseLocation parses `s` as either `s3://<bucket>/<key>` or a file path.
func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if !hasExtension(s) {
		return Location{}, &InvalidExtensionErr{Location: s}
	}

	if !strings.HasPrefix(s, s3Scheme) {
		return Location{Path: s}, nil
	}

	bucket, key, found := strings.Cut(strings.TrimPrefix(s, s3Scheme), "/")
	if !found || bucket == "" {
		return Location{}, &InvalidLocationErr{
			Location: s,
			Reason:   "missing bucket",
		}
	}
	base := path.Base(key)
	if strings.TrimSuffix(base, path.Ext(base)) == "" {
		return Location{}, &InvalidLocationErr{
			Location: s,
			Reason:   "missing object key",
		}
	}
	return Location{Bucket: bucket, Key: key}, nil
}

func hasExtension(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	for _, allowed := range Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
