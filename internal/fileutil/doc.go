// Package fileutil provides the directory traversal and extension filtering
// used by filecounter.
//
// # Purpose
//
// The fileutil package is designed for:
//   - Deciding whether a file name carries one of a set of extensions
//   - Walking a directory either one level deep or recursively
//   - Composing the built-in default extension list with user extensions
//   - Error-tolerant scanning that records and skips unreadable entries
//
// # Main Components
//
// HasExtension - the extension predicate:
//   - The extension is the text after the last "." of the final path segment
//   - Names without a ".", dotfiles such as ".bashrc" and names ending in "."
//     have no extension and never match
//   - Matching is case-insensitive; "JPG", ".jpg" and "jpg" are equivalent
//   - An empty extension set matches nothing
//
// Scanner - walks a Filesystem:
//   - FindFiles collects matching paths into a ScanResult
//   - CountFiles counts matches without retaining paths
//   - Walk streams every regular file to a callback
//
// OSFilesystem - the local disk. Its ListDir reads each entry's metadata
// separately, so one entry that vanishes or cannot be read mid-listing is
// skipped instead of failing its whole directory.
//
// CombineExtensions - merges defaults and user extensions, defaults first,
// without deduplication.
//
// # Usage Examples
//
// Count images below a directory on the local disk:
//
//	result, err := fileutil.FindFiles("/path/to/photos", []string{"jpg", "png"}, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Files))
//
// Scan an in-memory tree (go-billy memfs):
//
//	fs := memfs.New()
//	util.WriteFile(fs, "/root/a.txt", nil, 0644)
//	scanner := fileutil.NewScanner(fs, nil)
//	n, skipped, err := scanner.CountFiles("/root", []string{"txt"}, false)
//
// # Error Tolerance
//
// Only problems with the root are fatal: a root that does not exist, is not a
// directory or cannot be listed returns an error. Failures below the root
// (permission denied on a subdirectory, an entry removed mid-scan) are logged
// at debug level, appended to ScanResult.Errors and skipped.
//
// # Symbolic Links
//
// Directory listings are lstat-based, so symbolic links are reported as links
// and never followed. A link to a file is not a regular file and is not
// counted. The scanner additionally tracks visited directories by cleaned path
// so a Filesystem that reports links as directories still terminates.
package fileutil
