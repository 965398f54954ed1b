package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"srtcheck/internal/config"
	"srtcheck/internal/failure"
	"srtcheck/internal/render"
	"srtcheck/internal/report"
)

type diffFlags struct {
	limit    int
	all      bool
	inline   bool
	workers  int
	asJSON   bool
	summary  bool
	htmlPath string
	jsonPath string
}

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var flags diffFlags

	cmd := &cobra.Command{
		Use:   "diff ORIGINAL CORRECTED",
		Short: "Show text changes between an original and a corrected file",
		Long: "Pair entries by index and list every entry whose text changed, optionally\n" +
			"with token level markup. Entries present in only one file are reported\n" +
			"with an empty counterpart. Always exits 0 once both files are read.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, _, err := ctx.session(cmd)
			if err != nil {
				return err
			}
			opts, err := resolveDiffOptions(cmd, cfg, flags)
			if err != nil {
				return err
			}

			original, corrected, err := loadPair(logger, args[0], args[1])
			if err != nil {
				return err
			}
			doc := report.Build(cfg.Report.Title, original, corrected, report.Options{
				IncludeUnchanged: opts.all,
				Workers:          opts.workers,
				Logger:           logger,
			})

			notice := cmd.ErrOrStderr()
			if path := strings.TrimSpace(flags.htmlPath); path != "" {
				if err := writeReportFile(cfg, logger, notice, path, "HTML", func(w io.Writer) error {
					return render.HTML(w, doc)
				}); err != nil {
					return err
				}
			}
			if path := strings.TrimSpace(flags.jsonPath); path != "" {
				if err := writeReportFile(cfg, logger, notice, path, "JSON", func(w io.Writer) error {
					return render.JSON(w, doc)
				}); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if flags.asJSON {
				err = render.JSON(out, doc)
			} else {
				err = render.Diff(out, doc.Report, render.DiffOptions{
					Limit:   opts.limit,
					Inline:  opts.inline,
					Summary: flags.summary,
					Style:   render.StyleFor(out),
				})
			}
			if err != nil {
				return failure.Wrap(failure.ErrOutput, "cli", "write diff", "", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Entries to list before truncating (0 lists all; default from config)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "List unchanged and unmatched entries too")
	cmd.Flags().BoolVar(&flags.inline, "inline", false, "Add a token level markup line under each change")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Parallel alignment workers (default from config)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print the report document as JSON")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "Append a table of entry counts")
	cmd.Flags().StringVar(&flags.htmlPath, "html", "", "Also write an HTML report to this path")
	cmd.Flags().StringVar(&flags.jsonPath, "output", "", "Also write the JSON report document to this path")
	return cmd
}

type diffOptions struct {
	limit   int
	all     bool
	inline  bool
	workers int
}

func resolveDiffOptions(cmd *cobra.Command, cfg *config.Config, flags diffFlags) (diffOptions, error) {
	opts := diffOptions{
		limit:   intFlag(cmd, "limit", flags.limit, cfg.Diff.Limit),
		all:     boolFlag(cmd, "all", flags.all, cfg.Diff.ShowAll),
		inline:  boolFlag(cmd, "inline", flags.inline, cfg.Diff.Inline),
		workers: intFlag(cmd, "workers", flags.workers, cfg.Diff.Workers),
	}
	if err := nonNegative("limit", opts.limit); err != nil {
		return diffOptions{}, err
	}
	if opts.workers < 1 {
		return diffOptions{}, failure.Wrap(failure.ErrConfiguration, "cli", "parse flags", "--workers must be >= 1", nil)
	}
	return opts, nil
}
