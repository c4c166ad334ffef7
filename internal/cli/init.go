package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/namelint/internal/config"
	"github.com/modu-ai/namelint/internal/convention"
	"github.com/modu-ai/namelint/internal/report"
	"github.com/modu-ai/namelint/internal/ui"
	"github.com/modu-ai/namelint/pkg/models"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a .namelint.yaml configuration file",
	Long: `Init writes a .namelint.yaml file into dir (default: the current
directory). In a terminal it asks for each setting; with --yes, or when
stdin is not a terminal, the defaults are written as is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("yes", "y", false, "Write the defaults without asking")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	d := getDeps()
	out := cmd.OutOrStdout()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	path := filepath.Join(dir, config.FileName)

	force := getBoolFlag(cmd, "force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", config.ErrConfigExists, path)
	}

	cfg := config.NewDefaultConfig()
	noColor := getBoolFlag(cmd, "no-color")
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: noColor || !ui.ColorEnabled(out, false)})

	if !getBoolFlag(cmd, "yes") {
		answers, err := askInit(theme, d.Headless, cfg)
		switch {
		case errors.Is(err, ui.ErrCancelled):
			_, _ = fmt.Fprintln(out, "init cancelled")
			return nil
		case errors.Is(err, ui.ErrHeadless):
			d.Logger.Info("no terminal on stdin; writing defaults")
		case err != nil:
			return err
		default:
			applyAnswers(cfg, answers)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.WriteFile(path, cfg, force); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, initSummary(theme, path, cfg))
	return nil
}

// askInit runs the interactive form seeded with cfg.
func askInit(theme *ui.Theme, hm *ui.HeadlessManager, cfg *config.Config) (*ui.InitAnswers, error) {
	rules := convention.Rules()
	ruleChoices := make([]ui.Choice, len(rules))
	for i, r := range rules {
		ruleChoices[i] = ui.Choice{Label: string(r.ID), Value: string(r.ID)}
	}
	var formatChoices []ui.Choice
	for _, f := range report.Formats() {
		formatChoices = append(formatChoices, ui.Choice{Label: string(f), Value: string(f)})
	}

	form := ui.NewInitForm(theme, hm, ruleChoices, formatChoices)
	return form.Run(ui.InitAnswers{
		AllowPascalFilenames: cfg.Rules.AllowPascalFilenames,
		MaxExportsPerFile:    cfg.Rules.MaxExportsPerFile,
		Format:               cfg.Output.Format,
	})
}

func applyAnswers(cfg *config.Config, a *ui.InitAnswers) {
	cfg.Rules.AllowPascalFilenames = a.AllowPascalFilenames
	cfg.Rules.MaxExportsPerFile = a.MaxExportsPerFile
	cfg.Rules.Disabled = nil
	for _, id := range a.Disabled {
		cfg.Rules.Disabled = append(cfg.Rules.Disabled, models.RuleID(id))
	}
	if a.Format != "" {
		cfg.Output.Format = a.Format
	}
}

// initSummary renders the written settings as a bordered card.
func initSummary(theme *ui.Theme, path string, cfg *config.Config) string {
	st := theme.Styles()

	disabled := "none"
	if len(cfg.Rules.Disabled) > 0 {
		ids := make([]string, len(cfg.Rules.Disabled))
		for i, id := range cfg.Rules.Disabled {
			ids[i] = string(id)
		}
		disabled = strings.Join(ids, ", ")
	}

	lines := []string{
		st.Success.Render("Created " + path),
		"",
		"allow_pascal_filenames: " + strconv.FormatBool(cfg.Rules.AllowPascalFilenames),
		"max_exports_per_file:   " + strconv.Itoa(cfg.Rules.MaxExportsPerFile),
		"disabled rules:         " + disabled,
		"format:                 " + cfg.Output.Format,
	}
	return st.Card.Render(strings.Join(lines, "\n"))
}
