package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, in yellow when colored is set.
func (w Warning) Display(out io.Writer, colored bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected entry:\n")
		} else {
			b.WriteString("    Affected entries:\n")
		}

		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !colored {
		fmt.Fprint(out, b.String())
		return
	}

	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	yellow.Fprint(out, b.String())
}

// WarnSkippedEntries creates a warning for entries a scan could not read.
func WarnSkippedEntries(errs []error) Warning {
	files := make([]string, len(errs))
	for i, err := range errs {
		files[i] = err.Error()
	}

	noun := "entries"
	if len(errs) == 1 {
		noun = "entry"
	}

	return Warning{
		Title:      fmt.Sprintf("Skipped %d unreadable %s", len(errs), noun),
		Message:    "Files inside these entries were not counted",
		Files:      files,
		Suggestion: "Check the directory permissions and run again",
	}
}
