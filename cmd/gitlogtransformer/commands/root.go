// SPDX-License-Identifier: AGPL-3.0-or-later

/*
GitLogTransformer - reads a file produced by

	git log --compact-summary --format="%H %ad %s"

and consolidates it into a delimited report that is easy to analyse in a
spreadsheet: one row per commit with its change counts, date and month.

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ChrisFewtrell/GitLogTransformer/cmd/gitlogtransformer/internal/clierr"
)

// NewRootCmd constructs the gitlogtransformer root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("GITLOGTRANSFORMER_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:   "gitlogtransformer <git-log-file>",
		Short: "Convert a git log into a TSV report",
		Long: `Reads a log generated with

  git log --compact-summary --format="%H %ad %s" > git.log

and writes git.log.tsv with one row per commit: hash, files changed,
insertions, deletions, their sum, date, month and subject.`,
		Version:       version,
		Args:          exactlyOneInput,
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().String("config", "", "YAML file with report settings")
	cmd.Flags().StringP("output", "o", "", "output path (default: <git-log-file> + output_suffix)")
	cmd.Flags().String("separator", "", "column separator (default: tab)")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	return cmd
}

func exactlyOneInput(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return clierr.Newf(clierr.ExitUsage,
			"you must provide the path to the git log file (got %d arguments)", len(args))
	}
	return nil
}
