package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/stonesplit/internal/application"
	"github.com/spf13/cobra"
)

type checkJSON struct {
	Source     string          `json:"source"`
	Valid      int             `json:"valid"`
	Rejections []rejectionJSON `json:"rejections"`
}

func newCheckCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [input-file]",
		Short: "Validate an input file without computing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.inputPath(args)
			svc := app.service(sourceFor(path), nil, nil)

			result, err := svc.Check(cmd.Context(), application.CheckCommand{InputPath: path})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(checkJSON{
					Source:     result.Source,
					Valid:      len(result.Valid),
					Rejections: toRejectionsJSON(result.Rejections),
				}); err != nil {
					return err
				}
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "source: %s\n", result.Source)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d\n", len(result.Valid))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rejected: %d\n", len(result.Rejections))
				for _, rejection := range result.Rejections {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "line %d: %q: %s\n", rejection.Line, rejection.Raw, rejection.Reason)
				}
			}

			if !result.OK() {
				return fmt.Errorf("%d invalid record(s) in %s", len(result.Rejections), result.Source)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
