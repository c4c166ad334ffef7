package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/namelint/internal/config"
	"github.com/modu-ai/namelint/internal/convention"
	"github.com/modu-ai/namelint/internal/manifest"
	"github.com/modu-ai/namelint/internal/report"
	"github.com/modu-ai/namelint/internal/scanner"
	"github.com/modu-ai/namelint/internal/ui"
	"github.com/modu-ai/namelint/pkg/models"
)

// ErrViolationsFound is returned by check when the report is not clean. It
// makes the process exit 1 without being printed as an error.
var ErrViolationsFound = errors.New("naming violations found")

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Check naming conventions of a source tree",
	Long: `Check scans each path (default: the current directory) and reports
every naming convention violation.

Configuration is read from .namelint.yaml in the first path (or --config),
then NAMELINT_* environment variables and a .env file, then flags.

Examples:
  namelint check src
  namelint check --format json src > report.json
  namelint check --allow-pascal-filenames --disable barrel-reexport src
  namelint scan src | namelint check --manifest -`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	addConfigFlags(checkCmd)
	checkCmd.Flags().String("format", "", "Report format: text, json or markdown (default: text)")
	checkCmd.Flags().String("manifest", "", "Read file records from a manifest JSON file (\"-\" for stdin) instead of scanning")
	checkCmd.Flags().Bool("allow-pascal-filenames", false, "Accept PascalCase file names for component and class files")
	checkCmd.Flags().Int("max-exports-per-file", convention.DefaultMaxExportsPerFile, "Maximum components or classes exported by one file")
	checkCmd.Flags().StringSlice("disable", nil, "Disable a rule by id (repeatable)")
}

// addConfigFlags registers the flags shared by commands that read a tree.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to the configuration file or its directory")
	cmd.Flags().StringSlice("ignore", nil, "Additional ignore glob, relative to each path (repeatable)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	d := getDeps()
	cfg, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	var files []models.FileEntry
	if m := getStringFlag(cmd, "manifest"); m != "" {
		files, err = manifest.Load(m, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("load manifest: %w", err)
		}
		d.Logger.Debug("manifest loaded", "source", m, "files", len(files))
	} else {
		files, err = scanTree(cmd, cfg, args)
		if err != nil {
			return err
		}
	}

	checker := convention.NewChecker(cfg.CheckerOptions(), d.Logger)
	rep := report.New(len(files), checker.Check(files))

	out := cmd.OutOrStdout()
	renderer, err := report.NewRenderer(report.Options{
		Format: format,
		Color:  ui.ColorEnabled(out, cfg.Output.NoColor),
	})
	if err != nil {
		return err
	}
	if err := renderer.Render(out, rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if rep.ExitCode() != 0 {
		return ErrViolationsFound
	}
	return nil
}

// scanTree runs the scanner over roots with an activity indicator on stderr.
func scanTree(cmd *cobra.Command, cfg *config.Config, roots []string) ([]models.FileEntry, error) {
	d := getDeps()
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: cfg.Output.NoColor})
	activity := ui.NewActivity(theme, cmd.ErrOrStderr(), "Scanning")
	defer activity.Stop()

	s, err := scanner.New(scanner.Options{
		Extensions:  cfg.Scan.Extensions,
		Ignore:      cfg.Scan.Ignore,
		Concurrency: cfg.Scan.Concurrency,
		Logger:      d.Logger,
		Progress:    activity.Advance,
	})
	if err != nil {
		return nil, err
	}

	files, err := s.Scan(commandContext(cmd), roots...)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return files, nil
}
