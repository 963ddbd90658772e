package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swiftkit/internal/loader"
	"swiftkit/internal/report"
)

func (a *app) batchValidateCmd() *cobra.Command {
	var (
		filePath   string
		kind       string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "batch-validate",
		Short: "Validate a file of BICs or IBANs, one per line or in the first column of a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := loader.ReadIdentifiersFile(filePath)
			if err != nil {
				return err
			}

			r, err := a.service.ValidateBatch(cmd.Context(), kind, inputs)
			if err != nil {
				return err
			}

			switch {
			case outputPath != "":
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create report file: %w", err)
				}
				if err := report.Write(f, r, report.FormatFromPath(outputPath)); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("failed to close report file: %w", err)
				}
				fmt.Fprintf(a.out, "Report written to %s\n", outputPath)
				fmt.Fprintln(a.out, report.Summary(r))
			case a.asJSON:
				if err := report.Write(a.out, r, report.FormatJSON); err != nil {
					return err
				}
			default:
				if err := report.Write(a.out, r, report.FormatText); err != nil {
					return err
				}
			}

			if r.InvalidCount > 0 {
				return ErrRejected
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "file with one identifier per line, or an .xlsx workbook")
	cmd.Flags().StringVarP(&kind, "type", "t", "", "identifier type (bic or iban)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "report file; .xlsx, .txt or .json")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
