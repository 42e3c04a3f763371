package fileutil

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// OSFilesystem is the local disk as seen by the scanner. Stat, ReadDir and
// Join come from billy's osfs; ListDir reads entries one at a time so an
// entry removed or made unreadable mid-listing does not fail its directory.
type OSFilesystem struct {
	billy.Basic
	billy.Dir
}

// NewOSFilesystem returns an OSFilesystem using raw host paths.
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{Basic: osfs.Default, Dir: osfs.Default}
}

// ListDir lists path without following symbolic links. Entries whose
// metadata cannot be read are left out and reported in skipped.
func (f *OSFilesystem) ListDir(path string) ([]os.FileInfo, []error, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]os.FileInfo, 0, len(dirEntries))
	var skipped []error
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			skipped = append(skipped, fmt.Errorf("error accessing %s: %w", f.Join(path, de.Name()), err))
			continue
		}
		entries = append(entries, info)
	}
	return entries, skipped, nil
}

var (
	_ Filesystem  = (*OSFilesystem)(nil)
	_ EntryLister = (*OSFilesystem)(nil)
)
