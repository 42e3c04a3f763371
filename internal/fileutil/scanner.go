package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/filecounter/internal/logger"
)

// ErrNotDirectory is returned when the scan root exists but is not a directory.
var ErrNotDirectory = errors.New("path is not a directory")

// Filesystem is the subset of billy.Filesystem the scanner needs.
// ReadDir must not follow symbolic links for the entries it returns.
type Filesystem interface {
	Stat(filename string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Join(elem ...string) string
}

// EntryLister is implemented by filesystems that can fail a single directory
// entry without failing the whole listing. The scanner prefers it over
// ReadDir: the entries in skipped are recorded and the rest are still walked.
type EntryLister interface {
	ListDir(path string) (entries []os.FileInfo, skipped []error, err error)
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the paths of all matched files, in enumeration order
	Files []string
	// Errors contains the per-entry errors that were skipped
	Errors []error
}

// WalkFunc is called for every regular file found by Walk.
type WalkFunc func(path string, info os.FileInfo)

// Scanner walks directories on a Filesystem.
type Scanner struct {
	fs  Filesystem
	log logger.Logger
}

// NewScanner creates a Scanner over fs. A nil log discards diagnostics.
func NewScanner(fs Filesystem, log logger.Logger) *Scanner {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Scanner{fs: fs, log: log}
}

// NewOSScanner creates a Scanner over the local disk.
func NewOSScanner(log logger.Logger) *Scanner {
	return NewScanner(NewOSFilesystem(), log)
}

// FindFiles scans the local disk under root. See Scanner.FindFiles.
func FindFiles(root string, extensions []string, recursive bool) (*ScanResult, error) {
	return NewOSScanner(nil).FindFiles(root, extensions, recursive)
}

// FindFiles returns the regular files under root whose extension is in
// extensions. Only direct children of root are considered unless recursive
// is set.
func (s *Scanner) FindFiles(root string, extensions []string, recursive bool) (*ScanResult, error) {
	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	skipped, err := s.Walk(root, recursive, func(path string, _ os.FileInfo) {
		if HasExtension(path, extensions) {
			result.Files = append(result.Files, path)
		}
	})
	if err != nil {
		return nil, err
	}

	result.Errors = append(result.Errors, skipped...)
	return result, nil
}

// CountFiles is FindFiles without retaining the matched paths. The skipped
// per-entry errors are returned alongside the count.
func (s *Scanner) CountFiles(root string, extensions []string, recursive bool) (int, []error, error) {
	count := 0
	skipped, err := s.Walk(root, recursive, func(path string, _ os.FileInfo) {
		if HasExtension(path, extensions) {
			count++
		}
	})
	if err != nil {
		return 0, nil, err
	}
	return count, skipped, nil
}

// Walk calls fn for every regular file under root. Directories, symbolic
// links and special files are never passed to fn.
//
// The returned error is non-nil only when root itself is unusable. Errors for
// entries below root are skipped and returned in the slice.
func (s *Scanner) Walk(root string, recursive bool, fn WalkFunc) ([]error, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	w := &walk{
		scanner:   s,
		recursive: recursive,
		fn:        fn,
		visited:   map[string]bool{filepath.Clean(root): true},
	}

	entries, err := w.list(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}
	w.visit(root, entries)

	return w.errors, nil
}

// walk holds the state of a single Walk call.
type walk struct {
	scanner   *Scanner
	recursive bool
	fn        WalkFunc
	visited   map[string]bool
	errors    []error
}

// list reads dir, recording entries that failed individually.
func (w *walk) list(dir string) ([]os.FileInfo, error) {
	lister, ok := w.scanner.fs.(EntryLister)
	if !ok {
		return w.scanner.fs.ReadDir(dir)
	}

	entries, skipped, err := lister.ListDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range skipped {
		w.errors = append(w.errors, e)
		w.scanner.log.LogDebug(fmt.Sprintf("skipping unreadable entry: %v", e))
	}
	return entries, nil
}

func (w *walk) visit(dir string, entries []os.FileInfo) {
	for _, entry := range entries {
		path := w.scanner.fs.Join(dir, entry.Name())

		switch {
		case entry.IsDir():
			if w.recursive {
				w.descend(path)
			}
		case entry.Mode().IsRegular():
			w.fn(path, entry)
		default:
			w.scanner.log.LogTrace(fmt.Sprintf("skipping non-regular entry %s (%s)", path, entry.Mode().Type()))
		}
	}
}

func (w *walk) descend(dir string) {
	key := filepath.Clean(dir)
	if w.visited[key] {
		w.scanner.log.LogDebug(fmt.Sprintf("directory already visited, skipping %s", dir))
		return
	}
	w.visited[key] = true

	entries, err := w.list(dir)
	if err != nil {
		w.errors = append(w.errors, fmt.Errorf("error accessing %s: %w", dir, err))
		w.scanner.log.LogDebug(fmt.Sprintf("skipping unreadable directory %s: %v", dir, err))
		return
	}

	w.visit(dir, entries)
}
