package fileutil

import (
	"path/filepath"
	"strings"
)

// HasExtension reports whether the final segment of path has an extension
// that appears in extensions. Comparison is case-insensitive and ignores a
// leading dot on the entries of extensions.
func HasExtension(path string, extensions []string) bool {
	ext, ok := Extension(path)
	if !ok {
		return false
	}

	for _, candidate := range extensions {
		if NormalizeExtension(candidate) == ext {
			return true
		}
	}
	return false
}

// Extension returns the lowercased extension of the final path segment
// without its dot. ok is false when the name has no extension: no dot at
// all, a leading dot only (".bashrc"), or a trailing dot ("file.").
func Extension(path string) (ext string, ok bool) {
	name := filepath.Base(path)

	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", false
	}

	return strings.ToLower(name[idx+1:]), true
}

// NormalizeExtension lowercases ext and strips one leading dot.
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// NormalizeExtensions applies NormalizeExtension to every entry.
// Length and order are preserved.
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, len(exts))
	for i, ext := range exts {
		normalized[i] = NormalizeExtension(ext)
	}
	return normalized
}

// CombineExtensions returns defaults followed by user. The inputs are not
// modified and duplicates are kept, so the result always has
// len(user)+len(defaults) entries.
func CombineExtensions(user, defaults []string) []string {
	combined := make([]string, 0, len(defaults)+len(user))
	combined = append(combined, defaults...)
	return append(combined, user...)
}
