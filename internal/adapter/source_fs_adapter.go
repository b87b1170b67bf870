// Package adapter contains the infrastructure adapters used by the duplicate
// scanner: filesystem access, hashing and report persistence.
package adapter

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/spf13/afero"
)

const dirPerm = 0o755

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning and resolving duplicates. It hides direct `os` access so
// the workflow logic can be tested against an in-memory filesystem.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root and calls fn for every file found. When recursive is
	// false only direct children of root are visited. A directory that cannot
	// be read is passed to fn with a non-nil error and its subtree is skipped.
	// Returning an error from fn stops the walk.
	Walk(root m.Path, recursive bool, fn WalkFunc) error

	// HashFile reads the whole file at path and returns its digest record.
	HashFile(path m.Path) (m.FileRecord, error)

	// Exists reports whether anything exists at path.
	Exists(path m.Path) (bool, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path m.Path) error

	// Move relocates src to dst, copying across devices when needed.
	Move(src, dst m.Path) error

	// Remove deletes the file at path.
	Remove(path m.Path) error
}

// WalkFunc is called by Walk for every file, or for every directory that
// could not be read (err != nil).
type WalkFunc func(path m.Path, err error) error

// LocalSourceFSAdapter is the afero-backed SourceFSAdapter.
type LocalSourceFSAdapter struct {
	fs      afero.Fs
	newHash func() hash.Hash
}

// NewLocalSourceFSAdapter constructs an adapter over the OS filesystem that
// digests files with algorithm.
func NewLocalSourceFSAdapter(algorithm m.Algorithm) (*LocalSourceFSAdapter, error) {
	return NewSourceFSAdapter(afero.NewOsFs(), algorithm)
}

// NewSourceFSAdapter constructs an adapter over fs.
func NewSourceFSAdapter(fs afero.Fs, algorithm m.Algorithm) (*LocalSourceFSAdapter, error) {
	newHash, err := HashFunc(algorithm)
	if err != nil {
		return nil, err
	}

	return &LocalSourceFSAdapter{fs: fs, newHash: newHash}, nil
}

// HashFunc returns the constructor of the digest named by algorithm. An empty
// algorithm selects SHA-256.
func HashFunc(algorithm m.Algorithm) (func() hash.Hash, error) {
	switch m.Algorithm(strings.ToLower(string(algorithm))) {
	case m.AlgorithmSHA256, "":
		return sha256.New, nil
	case m.AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, m.NewError(m.ErrHashUnavailable, "", fmt.Sprintf("unsupported digest algorithm %q", algorithm), nil)
	}
}

type walkItem struct {
	path string
	dir  bool
}

// Walk visits files depth-first with the entries of every directory taken in
// lexicographic name order, so that discovery order is reproducible. It uses
// an explicit stack rather than recursion.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn WalkFunc) error {
	info, err := a.fs.Stat(string(root))
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fn(root, nil)
	}

	stack := []walkItem{{path: string(root), dir: true}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !item.dir {
			if err := fn(m.Path(item.path), nil); err != nil {
				return err
			}

			continue
		}

		// afero.ReadDir returns entries sorted by name.
		entries, err := afero.ReadDir(a.fs, item.path)
		if err != nil {
			if err := fn(m.Path(item.path), err); err != nil {
				return err
			}

			continue
		}

		// Push in reverse so the smallest name is popped first.
		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]
			path := filepath.Join(item.path, entry.Name())

			switch {
			case entry.IsDir():
				if recursive {
					stack = append(stack, walkItem{path: path, dir: true})
				}
			case isWalkable(entry.Mode()):
				stack = append(stack, walkItem{path: path})
			}
		}
	}

	return nil
}

// isWalkable accepts regular files only. Symlinks are neither yielded nor
// descended into, so a link can never stand in for the file it points to.
func isWalkable(mode os.FileMode) bool {
	return mode.IsRegular()
}

// HashFile loads the file into memory and digests it.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (m.FileRecord, error) {
	data, err := afero.ReadFile(a.fs, string(path))
	if err != nil {
		return m.FileRecord{}, err
	}

	h := a.newHash()
	_, _ = h.Write(data)
	digest := h.Sum(nil)

	return m.FileRecord{
		Path:   path,
		Size:   int64(len(data)),
		Digest: digest,
		Hash:   strings.ToUpper(hex.EncodeToString(digest)),
	}, nil
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(path m.Path) (bool, error) {
	return afero.Exists(a.fs, string(path))
}

// MkdirAll creates a directory and its parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return a.fs.MkdirAll(string(path), dirPerm)
}

// Move renames src to dst. When the rename crosses a device boundary the file
// is copied and the source removed.
func (a *LocalSourceFSAdapter) Move(src, dst m.Path) error {
	err := a.fs.Rename(string(src), string(dst))
	if err == nil {
		return nil
	}

	if !isCrossDevice(err) {
		return err
	}

	if err := a.copyFile(string(src), string(dst)); err != nil {
		return fmt.Errorf("copy across devices: %w", err)
	}

	return a.fs.Remove(string(src))
}

// Remove deletes a single file.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	return a.fs.Remove(string(path))
}

// copyFile copies a single file, refusing to overwrite dst.
func (a *LocalSourceFSAdapter) copyFile(src, dst string) error {
	sourceFile, err := a.fs.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := a.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		_ = a.fs.Remove(dst)

		return err
	}

	return destFile.Close()
}

// SplitName splits a file name into its base and extension. Names without an
// extension, and dot-files such as ".profile", have an empty extension.
func SplitName(name string) (base, ext string) {
	ext = filepath.Ext(name)
	base = strings.TrimSuffix(name, ext)

	if base == "" {
		return name, ""
	}

	return base, ext
}
