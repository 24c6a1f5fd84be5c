package artifact

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cruciblehq/xcbuild/internal/paths"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Uploads files under an artifact name.
//
// Upload returns the descriptor of the stored file. It is attempted once;
// stores do not retry.
type Store interface {
	Upload(ctx context.Context, name, path string) (ocispec.Descriptor, error)
}

// Opens the store identified by rawURL.
//
// Supported forms:
//
//	s3://bucket/prefix   objects under prefix in bucket (see [NewS3StoreFromEnv])
//	file:///dir          files under dir
//	/dir, ./dir          files under dir
//	(empty)              files under the user data directory
func Open(rawURL string) (Store, error) {
	if rawURL == "" {
		return NewDirStore(paths.Artifacts()), nil
	}

	if !strings.Contains(rawURL, "://") {
		return NewDirStore(rawURL), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	switch u.Scheme {
	case "file":
		if u.Path == "" {
			return nil, fmt.Errorf("%w: %q has no path", ErrInvalidURL, rawURL)
		}
		return NewDirStore(u.Path), nil
	case "s3":
		if u.Host == "" {
			return nil, fmt.Errorf("%w: %q has no bucket", ErrInvalidURL, rawURL)
		}
		store, err := NewS3StoreFromEnv(u.Host, s3Prefix(u.Path))
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
}

// Normalizes a URL path into an S3 key prefix ending in "/", or empty.
func s3Prefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}
