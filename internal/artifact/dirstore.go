package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/xcbuild/internal/paths"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Suffix of the descriptor file written beside each stored artifact.
const descriptorSuffix = ".descriptor.json"

// Stores artifacts in a local directory.
//
// A file uploaded as name is copied to <root>/<name>/<base>, and its
// descriptor is written to <root>/<name>/<base>.descriptor.json.
type DirStore struct {
	root string // Root directory for all artifacts.
}

// Creates a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{root: dir}
}

// Returns the root directory.
func (s *DirStore) Root() string {
	return s.root
}

// Copies the file at path into the store under name.
func (s *DirStore) Upload(ctx context.Context, name, path string) (ocispec.Descriptor, error) {
	if err := validateName(name); err != nil {
		return ocispec.Descriptor{}, err
	}

	desc, err := Describe(name, path)
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	dest := filepath.Join(s.root, name, filepath.Base(path))
	if err := copyFile(dest, path); err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if err := os.WriteFile(dest+descriptorSuffix, data, paths.DefaultFileMode); err != nil {
		return ocispec.Descriptor{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	slog.Info("artifact stored", "name", name, "path", dest, "digest", desc.Digest.String())
	return desc, nil
}

// Copies the file at src to dest.
func copyFile(dest, src string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeFile(dest, f)
}
