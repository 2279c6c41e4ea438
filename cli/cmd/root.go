// Package cmd provides the CLI commands for tagwriter.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tagwriter/core"
	"tagwriter/core/config"
	"tagwriter/core/engine"
)

var (
	flagExifTool string
	flagTimeout  int
	flagJSON     bool
	flagVerbose  bool

	cfg *config.Config
	sup *engine.Supervisor
	mgr *core.Manager
)

var rootCmd = &cobra.Command{
	Use:   "tagwriter",
	Short: "Inspect and rewrite descriptive tags embedded in photo files",
	Long: `tagwriter reads and writes IPTC/XMP/EXIF descriptive tags
(headline, caption, credit, creator, dates, copyright) in photo files,
driving a resident ExifTool process as the read/write engine.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagExifTool, "exiftool", "", "path to the exiftool executable")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "per-call timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "JSON output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	if cfg, err = config.Load(path); err != nil {
		return err
	}
	if flagExifTool != "" {
		cfg.ExifToolPath = flagExifTool
	}
	if flagTimeout > 0 {
		cfg.TimeoutSeconds = flagTimeout
	}

	sup = engine.New(engine.Options{
		Path:    cfg.ExifToolPath,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	mgr = core.NewManager(sup)
	return nil
}

// rememberFile records path in the recent-files preference.
func rememberFile(path string) {
	cfg.AddRecentFile(path)
	if err := cfg.Save(); err != nil {
		slog.Warn("could not save preferences", "error", err)
	}
}

// Execute runs the root command, stopping the engine process on the way
// out regardless of outcome.
func Execute() {
	err := rootCmd.Execute()
	if sup != nil {
		sup.Stop()
	}
	if err != nil {
		core.PrintError(err.Error())
		os.Exit(1)
	}
}

// loadInto loads file metadata into the manager, tolerating a file with
// no readable tags.
func loadInto(path string) error {
	if _, err := mgr.LoadFromFile(path); err != nil {
		return fmt.Errorf("loading metadata: %w", err)
	}
	return nil
}
