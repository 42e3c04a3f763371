package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/filecounter/internal/config"
	"github.com/harrison/filecounter/internal/display"
	"github.com/harrison/filecounter/internal/fileutil"
	"github.com/harrison/filecounter/internal/logger"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "0.1.0"

// newFilesystem returns the filesystem scanned by the command.
var newFilesystem = func() fileutil.Filesystem {
	return fileutil.NewOSFilesystem()
}

// NewRootCommand creates and returns the root cobra command for filecounter
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filecounter [flags] <directory>",
		Short: "Command line tool to count files by extension",
		Long: `Command line tool to count files in a directory by extension.

Files are matched case-insensitively against the default image and video
extensions (jpg, jpeg, png, gif, bmp, mp4, avi, mkv, mov, wmv) plus any
extensions given with --extensions. Only direct children of the directory
are counted unless --recursive is set.`,
		Example: `  filecounter ~/Pictures
  filecounter -r -e txt -e md ./docs`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, args[0])
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Registered before cobra adds its own so the shorthand is -V.
	cmd.Flags().BoolP("version", "V", false, "Print version information and exit")
	cmd.Flags().StringArrayP("extensions", "e", nil, "Additional extension to count (repeatable, e.g. -e txt -e md)")
	cmd.Flags().BoolP("recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolP("list", "l", false, "Print each matching file before the total")
	cmd.Flags().String("config", "", "Path to a YAML config file overriding the default extensions")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity on stderr: trace, debug, info, warn, error")

	return cmd
}

// runCount loads configuration, merges flags over it and prints the count.
func runCount(cmd *cobra.Command, dir string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	userExtensions, _ := cmd.Flags().GetStringArray("extensions")
	for _, ext := range userExtensions {
		if fileutil.NormalizeExtension(ext) == "" {
			return fmt.Errorf("invalid --extensions value %q: must not be empty", ext)
		}
	}
	recursive := cfg.Recursive
	if cmd.Flags().Changed("recursive") {
		recursive, _ = cmd.Flags().GetBool("recursive")
	}
	list, _ := cmd.Flags().GetBool("list")

	extensions := fileutil.CombineExtensions(
		fileutil.NormalizeExtensions(userExtensions),
		fileutil.NormalizeExtensions(cfg.DefaultExtensions),
	)
	log.LogDebug(fmt.Sprintf("scanning %s (recursive=%t) for extensions %v", dir, recursive, extensions))

	scanner := fileutil.NewScanner(newFilesystem(), log)

	var (
		count   int
		files   []string
		skipped []error
	)
	if list {
		result, err := scanner.FindFiles(dir, extensions, recursive)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		count, files, skipped = len(result.Files), result.Files, result.Errors
	} else {
		count, skipped, err = scanner.CountFiles(dir, extensions, recursive)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", dir, err)
		}
	}

	if len(skipped) > 0 && log.Enabled("info") {
		display.WarnSkippedEntries(skipped).Display(cmd.ErrOrStderr(), log.ColorOutput())
	}

	return printResult(cmd.OutOrStdout(), count, files)
}

// loadConfig returns the built-in defaults, or the file named by --config,
// with --log-level applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// printResult prints files, one per line, followed by the total.
func printResult(out io.Writer, count int, files []string) error {
	for _, path := range files {
		if _, err := fmt.Fprintln(out, path); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "Total files found: %d\n", count)
	return err
}
