package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/modu-ai/namelint/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "namelint",
	Short: "Naming convention checker for web front-end source trees",
	Long: `namelint checks folder, file and exported identifier names of a
JavaScript/TypeScript front-end tree against a fixed naming convention:
kebab-case files and folders, PascalCase components, classes and types,
camelCase functions and variables, SCREAMING_SNAKE_CASE constants and enum
members, one component or class per file, and named-only barrel re-exports.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes dependencies and runs the root command. Errors other
// than ErrViolationsFound are printed to stderr; any error means exit 1.
func Execute() error {
	InitDependencies()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrViolationsFound) {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("namelint %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output (also NO_COLOR)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default: warn)")
}
