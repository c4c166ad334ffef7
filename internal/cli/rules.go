package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/namelint/internal/convention"
	"github.com/modu-ai/namelint/internal/ui"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the naming rules and their ids",
	Long: `Rules lists every naming rule in evaluation order. The ids can be
passed to --disable or listed under rules.disabled in .namelint.yaml.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().Bool("json", false, "Output as JSON")
}

func runRules(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	rules := convention.Rules()

	if getBoolFlag(cmd, "json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	}

	noColor := getBoolFlag(cmd, "no-color") || !ui.ColorEnabled(out, false)
	st := ui.NewTheme(ui.ThemeConfig{NoColor: noColor}).Styles()

	width := 0
	for _, r := range rules {
		width = max(width, len(r.ID))
	}
	for _, r := range rules {
		id := fmt.Sprintf("%-*s", width, r.ID)
		_, _ = fmt.Fprintf(out, "%s  %s\n", st.Rule.Render(id), r.Description)
	}
	return nil
}
