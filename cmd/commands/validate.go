package commands

import (
	"github.com/spf13/cobra"

	httpHandler "swiftkit/internal/http"
)

func (a *app) validateBICCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-bic <bic>",
		Short: "Validate a BIC (8 or 11 characters)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := httpHandler.NewBICResponse(a.service.CheckBIC(cmd.Context(), args[0]))

			fields := [][2]any{
				{"input", resp.Input},
				{"valid", resp.Valid},
				{"message", resp.Message},
			}
			if resp.Valid {
				fields = append(fields,
					[2]any{"bank_code", resp.BankCode},
					[2]any{"country_code", resp.CountryCode},
					[2]any{"country_name", resp.CountryName},
					[2]any{"location_code", resp.LocationCode},
					[2]any{"branch_code", resp.BranchCode},
					[2]any{"is_primary_office", resp.IsPrimaryOffice},
				)
				if resp.Institution != "" {
					fields = append(fields, [2]any{"institution", resp.Institution})
				}
			}

			if err := a.printFields(resp, fields); err != nil {
				return err
			}
			if !resp.Valid {
				return ErrRejected
			}

			return nil
		},
	}
}

func (a *app) validateIBANCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-iban <iban>",
		Short: "Validate an IBAN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := httpHandler.NewIBANResponse(args[0], a.service.CheckIBAN(cmd.Context(), args[0]))

			fields := [][2]any{
				{"input", resp.Input},
				{"formatted", resp.Formatted},
				{"valid", resp.Valid},
				{"message", resp.Message},
			}
			if resp.Valid {
				fields = append(fields,
					[2]any{"country_code", resp.CountryCode},
					[2]any{"country_name", resp.CountryName},
					[2]any{"check_digits", resp.CheckDigits},
					[2]any{"bban", resp.BBAN},
				)
			}

			if err := a.printFields(resp, fields); err != nil {
				return err
			}
			if !resp.Valid {
				return ErrRejected
			}

			return nil
		},
	}
}
