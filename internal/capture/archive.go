package capture

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Extension appended to the bundle path to name its archive.
const archiveExt = ".zip"

// Returns the archive path for a bundle.
func ArchivePath(bundlePath string) string {
	return filepath.Clean(bundlePath) + archiveExt
}

// Compresses the bundle into a PKZip archive beside it.
//
// Entries are rooted at the bundle's base name, so the archive of
// "build/App.xcresult" contains "App.xcresult/Info.plist" and so on.
// Symbolic links are stored as links. Returns the archive path. On failure
// the partial archive is removed and the error wraps [ErrArchive].
func Archive(bundlePath string) (string, error) {
	src := filepath.Clean(bundlePath)
	dest := ArchivePath(src)

	if err := writeArchive(dest, src); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrArchive, src, err)
	}

	return dest, nil
}

// Writes the archive of src to dest, removing dest if any step fails.
func writeArchive(dest, src string) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(f)
	err = addTree(zw, src)
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		os.Remove(dest)
	}
	return err
}

// Adds src and, if it is a directory, everything below it. Entry names are
// relative to the parent of src.
func addTree(zw *zip.Writer, src string) error {
	parent := filepath.Dir(src)

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return err
		}

		return addEntry(zw, path, filepath.ToSlash(rel), d)
	})
}

// Writes a single file, directory, or symlink entry.
func addEntry(zw *zip.Writer, path, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name

	switch {
	case info.IsDir():
		header.Name = strings.TrimSuffix(name, "/") + "/"
		header.Method = zip.Store
		_, err := zw.CreateHeader(header)
		return err

	case info.Mode()&fs.ModeSymlink != 0:
		target, err := os.Readlink(path)
		if err != nil {
			return err
		}
		header.Method = zip.Store
		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, target)
		return err

	case info.Mode().IsRegular():
		header.Method = zip.Deflate
		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err

	default:
		return fmt.Errorf("unsupported file type %s at %s", info.Mode().Type(), path)
	}
}
