package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
)

// CheckTarget verifies that dir is absent or an empty directory.
// It does not create anything.
func CheckTarget(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return wrapFSError("checking target directory", dir, err)
	}

	if !info.IsDir() {
		return oerrors.NewTargetNotEmptyError(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return wrapFSError("reading target directory", dir, err)
	}
	if len(entries) > 0 {
		return oerrors.NewTargetNotEmptyError(dir)
	}

	return nil
}

// Write writes the plan's files under dir in plan order, creating parent
// directories as needed. Writes are not transactional: files written before
// a failure stay on disk.
func Write(dir string, plan *Plan) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrapFSError("creating target directory", dir, err)
	}

	for _, f := range plan.Files {
		target := filepath.Join(dir, filepath.FromSlash(f.Path))

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return wrapFSError("creating directory", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, []byte(f.Content), 0o644); err != nil {
			return wrapFSError("writing file", target, err)
		}

		output.Debug("created file", "path", f.Path)
	}

	return nil
}

func wrapFSError(action, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &oerrors.DetailError{
			Type:     "permission denied",
			Message:  fmt.Sprintf("%s: %v", action, err),
			Location: path,
			Cause:    oerrors.ErrPermission,
		}
	}
	return fmt.Errorf("%s %s: %w", action, path, err)
}
