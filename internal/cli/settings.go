package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modu-ai/namelint/internal/config"
	"github.com/modu-ai/namelint/internal/report"
	"github.com/modu-ai/namelint/pkg/models"
)

// getStringFlag retrieves a string flag value, including inherited flags.
func getStringFlag(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}

// getBoolFlag retrieves a bool flag value, including inherited flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	if f == nil {
		return false
	}
	v, err := strconv.ParseBool(f.Value.String())
	return err == nil && v
}

// flagChanged reports whether the user set the flag on the command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// commandContext returns the command context, or Background when the
// command runs without Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// configPath picks the file or directory the loader starts from: the
// --config flag, else the first scan root (its directory for a file root).
func configPath(cmd *cobra.Command, roots []string) string {
	if p := getStringFlag(cmd, "config"); p != "" {
		return p
	}
	root := "."
	if len(roots) > 0 {
		root = roots[0]
	}
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return filepath.Dir(root)
	}
	return root
}

// loadSettings loads the configuration for roots with command-line flags
// as the top layer and validates the merged result. The log level takes effect
// immediately.
func loadSettings(cmd *cobra.Command, roots []string) (*config.Config, error) {
	d := getDeps()
	if flagChanged(cmd, "log-level") {
		d.SetLogLevel(getStringFlag(cmd, "log-level"))
	}

	loader := config.NewLoader(d.Logger).WithLookup(d.LookupEnv)
	cfg, err := loader.LoadWith(configPath(cmd, roots), func(cfg *config.Config) {
		applyFlags(cmd, cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if src := loader.Source(); src != "" {
		d.Logger.Debug("configuration loaded", "path", src, "sections", loader.LoadedSections())
	}
	d.SetLogLevel(cfg.Output.LogLevel)
	return cfg, nil
}

// applyFlags overlays explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if flagChanged(cmd, "allow-pascal-filenames") {
		cfg.Rules.AllowPascalFilenames = getBoolFlag(cmd, "allow-pascal-filenames")
	}
	if flagChanged(cmd, "max-exports-per-file") {
		if n, err := cmd.Flags().GetInt("max-exports-per-file"); err == nil {
			cfg.Rules.MaxExportsPerFile = n
		}
	}
	if flagChanged(cmd, "disable") {
		ids, _ := cmd.Flags().GetStringSlice("disable")
		for _, id := range ids {
			cfg.Rules.Disabled = append(cfg.Rules.Disabled, models.RuleID(id))
		}
	}
	if flagChanged(cmd, "ignore") {
		patterns, _ := cmd.Flags().GetStringSlice("ignore")
		cfg.Scan.Ignore = append(cfg.Scan.Ignore, patterns...)
	}
	if flagChanged(cmd, "format") {
		cfg.Output.Format = getStringFlag(cmd, "format")
		if f, err := report.ParseFormat(cfg.Output.Format); err == nil {
			cfg.Output.Format = string(f)
		}
	}
	if flagChanged(cmd, "no-color") {
		cfg.Output.NoColor = getBoolFlag(cmd, "no-color")
	}
	if flagChanged(cmd, "log-level") {
		cfg.Output.LogLevel = getStringFlag(cmd, "log-level")
	}
}
