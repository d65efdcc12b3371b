// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisFewtrell/GitLogTransformer/cmd/gitlogtransformer/internal/clierr"
	"github.com/ChrisFewtrell/GitLogTransformer/internal/config"
	"github.com/ChrisFewtrell/GitLogTransformer/internal/gitlog"
	"github.com/ChrisFewtrell/GitLogTransformer/internal/input"
	"github.com/ChrisFewtrell/GitLogTransformer/internal/logging"
	"github.com/ChrisFewtrell/GitLogTransformer/internal/output"
	"github.com/ChrisFewtrell/GitLogTransformer/internal/tsv"
)

// runConvert parses the log named by args[0] and writes the report.
// Nothing is written unless the whole log parses.
func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logging.New(cmd.ErrOrStderr(), verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return clierr.Wrap(clierr.ExitUsage, "invalid configuration", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log.Info("processing file", "path", inputPath)
	recs, err := parseFile(ctx, inputPath)
	if err != nil {
		log.Error("processing failed", "path", inputPath, "err", err)
		return err
	}
	logRecords(log, recs)

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		outPath = output.DefaultPath(inputPath, cfg.OutputSuffix)
	}

	log.Info("finished processing, writing output", "records", len(recs), "output", outPath)
	err = output.AtomicWrite(outPath, func(w io.Writer) error {
		return tsv.WriteAll(w, cfg.Formatter(), recs)
	})
	if err != nil {
		return clierr.Wrap(clierr.ExitFailure, "writing report", err)
	}

	log.Info("finished", "output", outPath)
	return nil
}

// loadConfig reads --config, if given, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("separator") {
		sep, _ := cmd.Flags().GetString("separator")
		// Shells pass a typed \t through literally.
		cfg.Separator = strings.ReplaceAll(sep, `\t`, "\t")
	}
	return cfg, cfg.Validate()
}

// parseFile opens and assembles the log, mapping failures to exit codes.
func parseFile(ctx context.Context, path string) (recs []gitlog.CommitRecord, err error) {
	f, err := input.Open(path)
	if errors.Is(err, input.ErrNotFound) {
		return nil, clierr.Wrap(clierr.ExitNotFound, "reading input", err)
	}
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitFailure, "reading input", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = clierr.Wrap(clierr.ExitFailure, "closing input", cerr)
		}
	}()

	recs, err = gitlog.Parse(ctx, f)
	if err != nil {
		return nil, clierr.Wrap(parseExitCode(err), "parsing "+path, err)
	}
	return recs, nil
}

func parseExitCode(err error) int {
	var mde *gitlog.MalformedDateError
	switch {
	case errors.As(err, &mde):
		return clierr.ExitMalformedDate
	case errors.Is(err, gitlog.ErrOrphanStats):
		return clierr.ExitOrphanStats
	default:
		return clierr.ExitFailure
	}
}

func logRecords(log *slog.Logger, recs []gitlog.CommitRecord) {
	var missing int
	for _, rec := range recs {
		if rec.HasStats() {
			continue
		}
		missing++
		log.Debug("commit has no stats line", "commit", rec.CommitID, "line", rec.LineNumber)
	}
	if missing > 0 {
		log.Info("commits without stats are reported with zero changes", "count", missing)
	}
}
