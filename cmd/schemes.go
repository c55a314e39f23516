package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/pid/scheme"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the known identifier schemes",
	Long: `List every identifier scheme this build knows about, in detection
order: built-in schemes first, then any custom schemes loaded via
--schemes.`,
	RunE: runSchemes,
}

func runSchemes(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	for _, s := range scheme.Builtin {
		fmt.Fprintln(cmd.OutOrStdout(), s.Name)
	}
	for _, name := range reg.Names() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t(custom)\n", name)
	}
	return nil
}
