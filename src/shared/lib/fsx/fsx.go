// Package fsx holds the small set of filesystem moves the curation commands
// share: idempotent directory creation, byte-for-byte copies and moves that
// survive crossing filesystems.
package fsx

import (
	"io"
	"os"
	"path/filepath"

	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
)

// swapped in tests to simulate EXDEV
var renameFunc = os.Rename

const dirPerm = 0o755

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return cerr.Field("dir", dir).Wrap(err).Error("Failed to create directory")
	}

	return nil
}

// CopyFile copies src to dst byte for byte, replacing dst if it exists. The
// copy is staged in a temp file next to dst so a failed copy never leaves a
// truncated dst behind.
func CopyFile(src string, dst string) error {
	errctx := cerr.Field("src", src).Field("dst", dst)

	in, err := os.Open(src)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to open source file")
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errctx.Wrap(err).Error("Failed to stat source file")
	}

	dstDir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dstDir, "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return errctx.Wrap(err).Error("Failed to create temp file next to destination")
	}

	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return errctx.Wrap(err).Error("Failed to copy file contents")
	}

	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return errctx.Wrap(err).Error("Failed to set permissions on copied file")
	}

	if err := tmp.Close(); err != nil {
		return errctx.Wrap(err).Error("Failed to flush copied file")
	}

	if err := os.Rename(tmpName, dst); err != nil {
		return errctx.Wrap(err).Error("Failed to put copied file in place")
	}

	return nil
}

// Move renames src to dst. When the two paths live on different filesystems
// the file is copied and the source removed afterwards.
func Move(src string, dst string) error {
	err := renameFunc(src, dst)
	if err == nil {
		return nil
	}

	errctx := cerr.Field("src", src).Field("dst", dst)

	if !isEXDEV(err) {
		return errctx.Wrap(err).Error("Failed to move file")
	}

	if err := CopyFile(src, dst); err != nil {
		return errctx.Wrap(err).Error("Failed to copy file across devices")
	}

	if err := os.Remove(src); err != nil {
		return errctx.Wrap(err).Error("Copied file across devices but failed to remove the source")
	}

	return nil
}
