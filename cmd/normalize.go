package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/pid/detect"
	"github.com/lehigh-university-libraries/pid/normalize"
)

var normalizeScheme string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [identifier...]",
	Short: "Normalize persistent identifiers to their canonical form",
	Long: `Rewrite each identifier into its canonical textual form.

The scheme is detected automatically; pass --scheme to normalize under a
specific scheme instead. Identifiers are read from the arguments, or line
by line from stdin when no arguments are given.

Examples:
  pid normalize doi:10.1234/foo.bar
  pid normalize --scheme isbn 0-9752298-0-X
  cat identifiers.txt | pid normalize`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeScheme, "scheme", "s", "", "Scheme to normalize under (default: first detected)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	values, err := inputValues(args)
	if err != nil {
		return err
	}

	detector := detect.New(reg)
	normalizer := normalize.New(reg)
	for _, value := range values {
		schemeName := normalizeScheme
		if schemeName == "" {
			schemes := detector.Schemes(value)
			if len(schemes) == 0 {
				return fmt.Errorf("no scheme matched %q; pass --scheme to force one", value)
			}
			schemeName = schemes[0]
		}
		fmt.Fprintln(cmd.OutOrStdout(), normalizer.PID(value, schemeName))
	}
	return nil
}
