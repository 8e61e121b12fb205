package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// ContentType is the content type objects are stored with.
const ContentType = "application/yaml"

type S3ObjectStore struct {
	Client s3iface.S3API
}

// NewS3ObjectStore creates an `S3ObjectStore` for `region` using the default
// AWS credential chain. An empty region defers to the environment.
func NewS3ObjectStore(region string) (*S3ObjectStore, error) {
	config := aws.NewConfig()
	if region != "" {
		config = config.WithRegion(region)
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("creating AWS session: %w", err)
	}
	return &S3ObjectStore{Client: s3.New(sess)}, nil
}

func (os *S3ObjectStore) PutObject(
	ctx context.Context,
	bucket string,
	key string,
	data io.ReadSeeker,
) error {
	if _, err := os.Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        data,
		ContentType: aws.String(ContentType),
	}); err != nil {
		return fmt.Errorf(
			"putting object in bucket `%s` at key `%s`: %w",
			bucket,
			key,
			err,
		)
	}
	return nil
}
