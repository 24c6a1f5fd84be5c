package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/xcbuild/internal/paths"
	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

const (

	// Media type for zip archives.
	MediaTypeZip = "application/zip"

	// Media type for files of unknown type.
	MediaTypeOctetStream = "application/octet-stream"

	// Annotation holding the artifact name the file was uploaded under.
	AnnotationName = "dev.crucible.xcbuild.artifact.name"
)

// Computes the OCI descriptor for a file uploaded under name.
func Describe(name, path string) (ocispec.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return ocispec.Descriptor{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return ocispec.Descriptor{}, err
	}

	dgst, err := digest.Canonical.FromReader(f)
	if err != nil {
		return ocispec.Descriptor{}, err
	}

	return ocispec.Descriptor{
		MediaType: mediaType(path),
		Digest:    dgst,
		Size:      info.Size(),
		Annotations: map[string]string{
			ocispec.AnnotationTitle: filepath.Base(path),
			AnnotationName:          name,
		},
	}, nil
}

// Returns the media type for a file based on its extension.
func mediaType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return MediaTypeZip
	}
	return MediaTypeOctetStream
}

// Validates an artifact name for use as a path or key segment.
func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// Copies r to a new file at path, creating parent directories.
func writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
