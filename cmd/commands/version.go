package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.asJSON {
				return a.printJSON(a.out, map[string]string{"version": version})
			}
			_, err := fmt.Fprintf(a.out, "swiftkit v%s\n", version)
			return err
		},
	}
}
