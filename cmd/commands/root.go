package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"swiftkit/config"
	"swiftkit/internal/core"
	httpHandler "swiftkit/internal/http"
	"swiftkit/internal/mt103"
	"swiftkit/internal/pain001"
	"swiftkit/internal/service"
)

const version = "1.0.0"

// ErrRejected is returned once a command has printed a negative outcome. It
// only drives the exit status.
var ErrRejected = errors.New("rejected")

type app struct {
	out    io.Writer
	errOut io.Writer
	now    func() time.Time

	asJSON  bool
	verbose bool

	config  config.Config
	logger  *slog.Logger
	service service.Service
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		now:    time.Now,
	}
}

func Execute() error {
	return newApp(os.Stdout, os.Stderr).run(os.Args[1:])
}

func (a *app) run(args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.Execute()
	if err != nil && !errors.Is(err, ErrRejected) {
		a.printError(err)
	}

	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "swiftkit",
		Short:         "BIC/IBAN validation and pain.001/MT103 payment message generation",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().BoolVarP(&a.asJSON, "json", "j", false, "print results as JSON")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "log service activity to stderr")

	root.AddCommand(
		a.serveCmd(),
		a.validateBICCmd(),
		a.validateIBANCmd(),
		a.generatePain001Cmd(),
		a.generateMT103Cmd(),
		a.batchValidateCmd(),
		a.versionCmd(),
	)

	return root
}

// setup loads the environment configuration and builds the service shared by
// every subcommand.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.config = cfg

	logOut := io.Discard
	if a.verbose {
		logOut = a.errOut
	}
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))

	a.service = service.NewService(pain001.NewEncoder(), mt103.Generator{}, a.logger, cfg.Service)

	return nil
}

// printFields writes keys and values one per line, or a JSON object when
// --json is set.
func (a *app) printFields(v any, fields [][2]any) error {
	if a.asJSON {
		return a.printJSON(a.out, v)
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(a.out, "%v: %v\n", f[0], f[1]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}

func (a *app) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}

// printError reports err on stderr. Message violations are listed one per
// line.
func (a *app) printError(err error) {
	var violations []core.FieldConstraintError
	var validationErr *core.ValidationError
	if errors.As(err, &validationErr) {
		violations = validationErr.Violations
	}

	if a.asJSON {
		_ = a.printJSON(a.errOut, httpHandler.NewErrorResponse(err, violations))
		return
	}

	if len(violations) == 0 {
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
		return
	}
	for _, v := range violations {
		fmt.Fprintf(a.errOut, "Error: %v\n", v)
	}
}
