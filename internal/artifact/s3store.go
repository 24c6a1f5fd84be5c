package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Metadata key holding the uploaded object's digest.
const metadataDigest = "digest"

// Subset of the S3 client used by [S3Store].
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Stores artifacts in an S3 bucket.
//
// A file uploaded as name is put at <prefix><name>/<base>. The object's
// content type and digest metadata are taken from its descriptor.
type S3Store struct {
	client PutObjectAPI // S3 client.
	bucket string       // Bucket name.
	prefix string       // Key prefix, empty or ending in "/".
}

// Creates a store that puts objects in bucket under prefix.
func NewS3Store(client PutObjectAPI, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Creates a store whose client is configured from the environment.
//
// The region comes from AWS_REGION or AWS_DEFAULT_REGION, static credentials
// from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN, and an
// optional endpoint override from AWS_ENDPOINT_URL_S3. An endpoint override
// switches to path-style addressing, as S3-compatible servers expect.
// Requests are sent once; the SDK's retryer is disabled.
func NewS3StoreFromEnv(bucket, prefix string) (*S3Store, error) {
	region := firstEnv("AWS_REGION", "AWS_DEFAULT_REGION")
	if region == "" {
		return nil, fmt.Errorf("%w: AWS_REGION is not set", ErrStore)
	}

	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
		Retryer:     aws.NopRetryer{},
	}
	if endpoint := os.Getenv("AWS_ENDPOINT_URL_S3"); endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}

	return NewS3Store(s3.New(opts), bucket, prefix), nil
}

// Puts the file at path into the bucket under name.
func (s *S3Store) Upload(ctx context.Context, name, path string) (ocispec.Descriptor, error) {
	if err := validateName(name); err != nil {
		return ocispec.Descriptor{}, err
	}

	desc, err := Describe(name, path)
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	defer f.Close()

	key := s.Key(name, path)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(desc.Size),
		ContentType:   aws.String(desc.MediaType),
		Metadata: map[string]string{
			metadataDigest: desc.Digest.String(),
			"name":         name,
		},
	})
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: s3 upload failed: %w", ErrStore, err)
	}

	desc.URLs = []string{fmt.Sprintf("s3://%s/%s", s.bucket, key)}

	slog.Info("artifact uploaded", "name", name, "bucket", s.bucket, "key", key, "digest", desc.Digest.String())
	return desc, nil
}

// Returns the object key for a file uploaded under name.
func (s *S3Store) Key(name, path string) string {
	return s.prefix + name + "/" + filepath.Base(path)
}

// Reads static credentials from the environment.
func envCredentials(ctx context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("%w: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set", ErrStore)
	}

	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}

// Returns the value of the first set environment variable.
func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
