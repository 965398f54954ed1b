package main

import (
	"strings"

	"github.com/spf13/cobra"

	"srtcheck/internal/analysis"
	"srtcheck/internal/config"
	"srtcheck/internal/failure"
	"srtcheck/internal/logging"
	"srtcheck/internal/render"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var terms string
	var patternsFile string
	var noDefaults bool
	var limit int
	var asJSON bool
	var summary bool

	cmd := &cobra.Command{
		Use:   "analyze INPUT",
		Short: "Flag likely speech recognition errors in a subtitle file",
		Long: "Run the pattern table over every entry and list the entries with at least\n" +
			"one hit together with the suggested replacement. Always exits 0 once the\n" +
			"file is read.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, _, err := ctx.session(cmd)
			if err != nil {
				return err
			}
			shown := intFlag(cmd, "limit", limit, cfg.Analyze.Limit)
			if err := nonNegative("limit", shown); err != nil {
				return err
			}

			effective := *cfg
			if path := strings.TrimSpace(patternsFile); path != "" {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return failure.Wrap(failure.ErrConfiguration, "cli", "resolve patterns file", path, err)
				}
				effective.Analyze.PatternsFile = expanded
			}
			effective.Analyze.DisableDefaultPatterns = boolFlag(cmd, "no-defaults", noDefaults, cfg.Analyze.DisableDefaultPatterns)
			table, err := analysis.TableFromConfig(&effective)
			if err != nil {
				return err
			}
			if len(table) == 0 {
				logging.WarnWithContext(logger, "pattern table is empty", "analysis_table_empty",
					logging.String(logging.FieldErrorHint, "enable the built-in table or set analyze.patterns_file"),
				)
			}

			doc, err := loadSubtitle(logger, args[0])
			if err != nil {
				return err
			}
			res := analysis.New(table, logger).Analyze(doc.Records, analysis.ParseTerms(terms))

			out := cmd.OutOrStdout()
			if asJSON {
				err = render.JSON(out, res)
			} else {
				err = render.Analysis(out, res, render.AnalysisOptions{
					Limit:        shown,
					PreviewWidth: cfg.Analyze.PreviewWidth,
					Summary:      summary,
					Style:        render.StyleFor(out),
				})
			}
			if err != nil {
				return failure.Wrap(failure.ErrOutput, "cli", "write analysis", "", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&terms, "terms", "", "Comma separated list of expected terms")
	cmd.Flags().StringVar(&patternsFile, "patterns", "", "Extra pattern table (.toml, .json, .yaml)")
	cmd.Flags().BoolVar(&noDefaults, "no-defaults", false, "Skip the built-in pattern table")
	cmd.Flags().IntVar(&limit, "limit", 0, "Entries to list before truncating (0 lists all; default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print findings as JSON")
	cmd.Flags().BoolVar(&summary, "summary", false, "Append a table of hits per pattern")
	return cmd
}
