package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"srtcheck/internal/failure"
	"srtcheck/internal/integrity"
	"srtcheck/internal/logging"
	"srtcheck/internal/render"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var summary bool
	var maxIssues int

	cmd := &cobra.Command{
		Use:   "validate ORIGINAL CORRECTED",
		Short: "Check that a corrected file keeps the original's entries and timing",
		Long: "Compare entry count, indices, start and end times and the exact timing line\n" +
			"of every entry. Text changes are allowed. Exits 1 when any check fails.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, _, err := ctx.session(cmd)
			if err != nil {
				return err
			}
			limit := intFlag(cmd, "max-issues", maxIssues, cfg.Validation.MaxIssues)
			if err := nonNegative("max-issues", limit); err != nil {
				return err
			}

			original, corrected, err := loadPair(logger, args[0], args[1])
			if err != nil {
				return err
			}
			res := integrity.NewValidator(logger).Validate(original.Records, corrected.Records)

			out := cmd.OutOrStdout()
			if asJSON {
				err = render.JSON(out, res)
			} else {
				err = render.Validation(out, res, render.ValidationOptions{
					OriginalPath:  args[0],
					CorrectedPath: args[1],
					MaxIssues:     limit,
					Summary:       summary,
					Style:         render.StyleFor(out),
				})
			}
			if err != nil {
				return failure.Wrap(failure.ErrOutput, "cli", "write validation result", "", err)
			}

			if !res.Passed {
				logger.Info("validation failed",
					logging.Int("issues", len(res.Issues)),
					logging.String(logging.FieldEventType, "validation_failed"),
				)
				return failure.Wrap(failure.ErrValidation, "validate", "compare",
					fmt.Sprintf("%d issue(s) found", len(res.Issues)), nil)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&summary, "summary", false, "Append a table of issue counts by kind")
	cmd.Flags().IntVar(&maxIssues, "max-issues", 0, "Issues to list before truncating (0 lists all; default from config)")
	return cmd
}
