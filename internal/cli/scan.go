package cli

import (
	"github.com/spf13/cobra"

	"github.com/modu-ai/namelint/internal/manifest"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Write the file manifest of a source tree as JSON",
	Long: `Scan classifies every file under each path, extracts the exports of
JavaScript/TypeScript modules and writes the result as a manifest document.
The manifest can be inspected, edited or fed back with "check --manifest".`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	addConfigFlags(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	files, err := scanTree(cmd, cfg, args)
	if err != nil {
		return err
	}
	return manifest.Write(cmd.OutOrStdout(), files)
}
