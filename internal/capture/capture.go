package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/xcbuild/internal/artifact"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Identifies a result bundle to capture.
type Request struct {
	BundlePath string // Path to the result bundle.
	Name       string // Artifact name. Empty uses [DefaultName].
}

// Outcome of a capture.
type Result struct {
	BundlePath  string              // Absolute path to the result bundle.
	ArchivePath string              // Archive path, empty if archiving failed.
	ArchiveErr  error               // Archive failure wrapping [ErrArchive], nil if archived.
	Artifact    *ocispec.Descriptor // Uploaded artifact, nil if the upload was skipped.
}

// Archives the bundle and uploads the archive to store.
//
// Returns [ErrMissingResultBundle] if the bundle does not exist and
// [ErrUpload] if the upload fails. An archive failure is logged and
// reported in [Result.ArchiveErr], with no archive and no artifact.
func Bundle(ctx context.Context, store artifact.Store, req Request) (*Result, error) {
	abs, err := filepath.Abs(req.BundlePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingResultBundle, req.BundlePath, err)
	}

	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: could not find result bundle at %s", ErrMissingResultBundle, req.BundlePath)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingResultBundle, req.BundlePath, err)
	}

	result := &Result{BundlePath: abs}

	archivePath, err := Archive(abs)
	if err != nil {
		slog.Error("failed to archive result bundle, skipping upload", "path", abs, "error", err)
		result.ArchiveErr = err
		return result, nil
	}
	result.ArchivePath = archivePath

	name := req.Name
	if name == "" {
		name = DefaultName(abs)
	}

	desc, err := store.Upload(ctx, name, archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}
	result.Artifact = &desc

	slog.Info("result bundle captured", "name", name, "archive", archivePath, "size", desc.Size)
	return result, nil
}

// Returns the artifact name used when none is given: the bundle's base name
// without its extension.
func DefaultName(bundlePath string) string {
	base := filepath.Base(filepath.Clean(bundlePath))
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return base
}
