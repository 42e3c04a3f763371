// Package fstest provides filesystems for exercising the scanner's error
// handling without relying on host permissions or timing.
package fstest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// FaultyFS wraps a billy.Filesystem and fails chosen paths on demand.
//
// A directory registered with FailDir cannot be listed at all. An entry
// registered with FailEntry disappears from its parent's ListDir result and is
// reported as skipped instead, the way a file deleted between listing and
// lstat behaves on disk. ReadDir keeps the all-or-nothing behavior of
// billy's osfs: any failing entry fails the whole directory.
type FaultyFS struct {
	fs      billy.Filesystem
	dirs    map[string]error
	entries map[string]error
}

// NewFaultyFS wraps fs with no faults registered.
func NewFaultyFS(fs billy.Filesystem) *FaultyFS {
	return &FaultyFS{
		fs:      fs,
		dirs:    make(map[string]error),
		entries: make(map[string]error),
	}
}

// FailDir makes every listing of path return err.
func (f *FaultyFS) FailDir(path string, err error) *FaultyFS {
	f.dirs[filepath.Clean(path)] = err
	return f
}

// FailEntry makes reading the metadata of path return err.
func (f *FaultyFS) FailEntry(path string, err error) *FaultyFS {
	f.entries[filepath.Clean(path)] = err
	return f
}

func (f *FaultyFS) Stat(filename string) (os.FileInfo, error) {
	if err, ok := f.entries[filepath.Clean(filename)]; ok {
		return nil, err
	}
	return f.fs.Stat(filename)
}

func (f *FaultyFS) Join(elem ...string) string {
	return f.fs.Join(elem...)
}

func (f *FaultyFS) ReadDir(path string) ([]os.FileInfo, error) {
	entries, skipped, err := f.ListDir(path)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		return nil, skipped[0]
	}
	return entries, nil
}

// ListDir lists path, leaving out and reporting entries registered with
// FailEntry.
func (f *FaultyFS) ListDir(path string) ([]os.FileInfo, []error, error) {
	if err, ok := f.dirs[filepath.Clean(path)]; ok {
		return nil, nil, err
	}

	all, err := f.fs.ReadDir(path)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]os.FileInfo, 0, len(all))
	var skipped []error
	for _, info := range all {
		full := f.fs.Join(path, info.Name())
		if err, ok := f.entries[filepath.Clean(full)]; ok {
			skipped = append(skipped, fmt.Errorf("error accessing %s: %w", full, err))
			continue
		}
		entries = append(entries, info)
	}
	return entries, skipped, nil
}
