// Package organizer moves saved uploads into per-category folders.
//
// Organizing is best effort: a failure never aborts the upload. Organize
// reports it through Result instead, leaving the file where it was saved.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"

	"file-organizer-ai/internal/contextutil"
	"file-organizer-ai/internal/sanitize"
)

// UncategorizedDir is used when a category label has no usable characters.
const UncategorizedDir = "uncategorized"

// maxRenameAttempts bounds the search for a free name under PolicyRename.
const maxRenameAttempts = 10000

// ErrDestinationExists is returned under PolicyFail when the target file is
// already present.
var ErrDestinationExists = errors.New("destination already exists")

// ConflictPolicy decides what happens when the destination file already exists.
type ConflictPolicy string

const (
	// PolicyOverwrite replaces the existing destination file.
	PolicyOverwrite ConflictPolicy = "overwrite"
	// PolicyRename keeps both files by suffixing the new one: name_1.ext, name_2.ext, ...
	PolicyRename ConflictPolicy = "rename"
	// PolicyFail leaves the file unorganized.
	PolicyFail ConflictPolicy = "fail"
)

// ParseConflictPolicy parses a policy name (case-insensitive).
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch p := ConflictPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyOverwrite, PolicyRename, PolicyFail:
		return p, nil
	default:
		return "", fmt.Errorf("unknown conflict policy %q (want overwrite, rename or fail)", s)
	}
}

// Result is the outcome of organizing one file.
type Result struct {
	// Path is where the file is now: the category folder on success, the
	// original location otherwise.
	Path string
	// Organized reports whether the file was moved.
	Organized bool
	// Err holds the reason the file was left in place.
	Err error
}

// Organizer relocates files into category folders under a root directory.
type Organizer struct {
	fs     afero.Fs
	policy ConflictPolicy
}

// New creates an Organizer operating on fs.
func New(fs afero.Fs, policy ConflictPolicy) *Organizer {
	if policy == "" {
		policy = PolicyOverwrite
	}
	return &Organizer{
		fs:     fs,
		policy: policy,
	}
}

// CategoryDir returns the folder name used for category. Labels come from a
// model, so they are reduced to a single safe path segment.
func CategoryDir(category string) string {
	if dir := sanitize.Filename(category); dir != "" {
		return dir
	}
	return UncategorizedDir
}

// Organize moves sourcePath into root/<category>/ and returns where the file
// ended up. It never fails: errors are logged and reported in Result.
func (o *Organizer) Organize(ctx context.Context, root, sourcePath, category string) Result {
	logger := contextutil.LoggerFromContext(ctx)

	dest, err := o.move(root, sourcePath, category)
	if err != nil {
		logger.WarnContext(ctx, "failed to organize file, leaving it in place",
			"source", sourcePath,
			"category", category,
			"error", err,
		)
		return Result{Path: sourcePath, Err: err}
	}

	logger.DebugContext(ctx, "file organized", "source", sourcePath, "path", dest)
	return Result{Path: dest, Organized: true}
}

func (o *Organizer) move(root, sourcePath, category string) (string, error) {
	// Report a missing source before touching the category folder.
	if _, err := o.fs.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("failed to stat source: %w", err)
	}

	dir := filepath.Join(root, CategoryDir(category))
	if err := o.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create category folder: %w", err)
	}

	dest := filepath.Join(dir, filepath.Base(sourcePath))
	if filepath.Clean(sourcePath) == dest {
		return dest, nil
	}

	dest, err := o.resolveConflict(dest)
	if err != nil {
		return "", err
	}

	if err := o.fs.Rename(sourcePath, dest); err != nil {
		if !errors.Is(err, syscall.EXDEV) {
			return "", fmt.Errorf("failed to move file: %w", err)
		}
		if err := o.copyAndRemove(sourcePath, dest); err != nil {
			return "", fmt.Errorf("failed to move file across devices: %w", err)
		}
	}

	return dest, nil
}

// resolveConflict applies the conflict policy to dest and returns the path the
// file should be moved to.
func (o *Organizer) resolveConflict(dest string) (string, error) {
	exists, err := afero.Exists(o.fs, dest)
	if err != nil {
		return "", fmt.Errorf("failed to check destination: %w", err)
	}
	if !exists {
		return dest, nil
	}

	switch o.policy {
	case PolicyFail:
		return "", fmt.Errorf("%s: %w", dest, ErrDestinationExists)
	case PolicyRename:
		ext := filepath.Ext(dest)
		stem := strings.TrimSuffix(dest, ext)
		for i := 1; i <= maxRenameAttempts; i++ {
			candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
			exists, err := afero.Exists(o.fs, candidate)
			if err != nil {
				return "", fmt.Errorf("failed to check destination: %w", err)
			}
			if !exists {
				return candidate, nil
			}
		}
		return "", fmt.Errorf("no free name for %s after %d attempts", dest, maxRenameAttempts)
	default:
		// Rename replaces dest, so an existing file survives a failed move.
		return dest, nil
	}
}

// copyAndRemove moves src to dest when a rename cannot cross devices. The
// copy is staged next to dest and renamed over it, so dest is never left
// truncated or half written.
func (o *Organizer) copyAndRemove(src, dest string) error {
	tmp, err := afero.TempFile(o.fs, filepath.Dir(dest), "."+filepath.Base(dest)+".*.partial")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	_ = tmp.Close()

	if err := o.copyFile(src, tmpName); err != nil {
		_ = o.fs.Remove(tmpName)
		return err
	}
	if err := o.fs.Rename(tmpName, dest); err != nil {
		_ = o.fs.Remove(tmpName)
		return err
	}
	return o.fs.Remove(src)
}

func (o *Organizer) copyFile(src, dest string) error {
	in, err := o.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := o.fs.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
