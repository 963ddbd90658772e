package commands

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"swiftkit/internal/core"
	"swiftkit/internal/loader"
	"swiftkit/internal/mt103"
)

// paymentFlags describe a single payment on the command line when no
// configuration file is given.
type paymentFlags struct {
	amount         string
	currency       string
	debtorName     string
	debtorIBAN     string
	debtorBIC      string
	creditorName   string
	creditorIBAN   string
	creditorBIC    string
	remittanceInfo string
}

func (f *paymentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.amount, "amount", "", "payment amount")
	cmd.Flags().StringVar(&f.currency, "currency", loader.DefaultCurrency, "currency")
	cmd.Flags().StringVar(&f.debtorName, "debtor-name", "", "debtor name")
	cmd.Flags().StringVar(&f.debtorIBAN, "debtor-iban", "", "debtor IBAN")
	cmd.Flags().StringVar(&f.debtorBIC, "debtor-bic", "", "debtor BIC")
	cmd.Flags().StringVar(&f.creditorName, "creditor-name", "", "creditor name")
	cmd.Flags().StringVar(&f.creditorIBAN, "creditor-iban", "", "creditor IBAN")
	cmd.Flags().StringVar(&f.creditorBIC, "creditor-bic", "", "creditor BIC")
	cmd.Flags().StringVar(&f.remittanceInfo, "remittance-info", loader.DefaultRemittanceInfo, "remittance information")
}

func (f *paymentFlags) amountValue() (*loader.Amount, error) {
	if f.amount == "" {
		return nil, nil
	}
	return loader.NewAmount(f.amount)
}

func (f *paymentFlags) parties() (*loader.PartyConfig, *loader.PartyConfig) {
	return &loader.PartyConfig{Name: f.debtorName, IBAN: f.debtorIBAN, BIC: f.debtorBIC},
		&loader.PartyConfig{Name: f.creditorName, IBAN: f.creditorIBAN, BIC: f.creditorBIC}
}

// flagsError points the user at --config when the flags leave out required
// payment data.
func flagsError(err error) error {
	if errors.Is(err, core.ErrMissingData) {
		return fmt.Errorf("use --config or provide every payment flag: %w", err)
	}
	return err
}

func (a *app) generatePain001Cmd() *cobra.Command {
	var (
		configPath string
		outputPath string
		messageID  string
		initiator  string
		payment    paymentFlags
	)

	cmd := &cobra.Command{
		Use:   "generate-pain001",
		Short: "Generate an ISO 20022 pain.001 credit transfer initiation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()

			var cfg loader.PaymentConfig
			if configPath != "" {
				loaded, err := loader.LoadFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				amount, err := payment.amountValue()
				if err != nil {
					return err
				}
				debtor, creditor := payment.parties()
				cfg.Payments = []loader.PaymentEntry{{
					InstructionID:  "INSTR-" + now.Format("20060102150405"),
					Amount:         amount,
					Currency:       payment.currency,
					Debtor:         debtor,
					Creditor:       creditor,
					RemittanceInfo: payment.remittanceInfo,
				}}
			}

			if messageID != "" {
				cfg.MessageID = messageID
			}
			if cmd.Flags().Changed("initiator") || cfg.Initiator == "" {
				cfg.Initiator = initiator
			}

			req, err := cfg.Pain001Request(now)
			if err != nil {
				if configPath == "" {
					return flagsError(err)
				}
				return err
			}

			out, err := a.service.GeneratePain001(cmd.Context(), req)
			if err != nil {
				return err
			}

			return a.writeMessage(outputPath, "pain.001", out)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "payment configuration file (JSON or YAML)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output XML file (default: stdout)")
	cmd.Flags().StringVar(&messageID, "message-id", "", "message identifier (generated when empty)")
	cmd.Flags().StringVar(&initiator, "initiator", "CLI User", "initiating party name")
	payment.register(cmd)

	return cmd
}

func (a *app) generateMT103Cmd() *cobra.Command {
	var (
		configPath string
		outputPath string
		reference  string
		charges    string
		payment    paymentFlags
	)

	cmd := &cobra.Command{
		Use:   "generate-mt103",
		Short: "Generate an MT103 single customer credit transfer",
		Long: "Generate an MT103 single customer credit transfer from --config or from flags.\n\n" +
			codeTable("Bank operation codes (:23B:)", mt103.BankOperationCodes) + "\n" +
			codeTable("Charges (:71A:)", mt103.ChargeTypes),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg loader.PaymentConfig
			if configPath != "" {
				loaded, err := loader.LoadFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				amount, err := payment.amountValue()
				if err != nil {
					return err
				}
				debtor, creditor := payment.parties()
				debtor.Name = core.Truncate(strings.ToUpper(debtor.Name), core.PartyLineWidth)
				creditor.Name = core.Truncate(strings.ToUpper(creditor.Name), core.PartyLineWidth)

				cfg = loader.PaymentConfig{
					Reference:      reference,
					Charges:        charges,
					Currency:       payment.currency,
					Amount:         amount,
					Debtor:         debtor,
					Creditor:       creditor,
					RemittanceInfo: strings.ToUpper(payment.remittanceInfo),
				}
			}

			msg, err := cfg.MT103Message(a.now())
			if err != nil {
				if configPath == "" {
					return flagsError(err)
				}
				return err
			}

			out, err := a.service.GenerateMT103(cmd.Context(), msg)
			if err != nil {
				return err
			}

			return a.writeMessage(outputPath, "MT103", []byte(out+"\n"))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "payment configuration file (JSON or YAML)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&reference, "reference", "", "sender reference, at most 16 characters (generated when empty)")
	cmd.Flags().StringVar(&charges, "charges", mt103.DefaultCharges, "charges (SHA, OUR or BEN)")
	payment.register(cmd)

	return cmd
}

// codeTable lists codes and their descriptions sorted by code.
func codeTable(title string, codes map[string]string) string {
	var b strings.Builder
	b.WriteString(title + ":\n")
	for _, code := range slices.Sorted(maps.Keys(codes)) {
		fmt.Fprintf(&b, "  %s  %s\n", code, codes[code])
	}
	return b.String()
}

func (a *app) writeMessage(path, kind string, data []byte) error {
	if path == "" {
		_, err := a.out.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s message: %w", kind, err)
	}
	fmt.Fprintf(a.out, "%s message written to %s\n", kind, path)

	return nil
}
