// Package display provides user-facing terminal messages for the filecounter CLI.
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Skipped 1 unreadable entry",
//	    Files:      []string{"error accessing /data/private: permission denied"},
//	    Suggestion: "Check the directory permissions and run again",
//	}
//	warning.Display(os.Stderr, true)
//
// Or build one straight from the skipped errors of a scan:
//
//	display.WarnSkippedEntries(result.Errors).Display(os.Stderr, false)
//
// Colors come from fatih/color and are only applied when the caller asks for
// them, so output written to files or buffers stays plain.
package display
