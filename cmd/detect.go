package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/pid/detect"
)

var detectCmd = &cobra.Command{
	Use:   "detect [identifier...]",
	Short: "Detect the schemes of persistent identifiers",
	Long: `Detect which persistent-identifier schemes each value matches.

Identifiers are read from the arguments, or line by line from stdin when
no arguments are given. Each output line holds the value and its matching
schemes, most specific first, separated by a tab.

Examples:
  pid detect 10.1234/foo.bar
  pid detect 0000-0002-1825-0097 arXiv:1310.2590
  cat identifiers.txt | pid detect`,
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	values, err := inputValues(args)
	if err != nil {
		return err
	}

	detector := detect.New(reg)
	for _, value := range values {
		schemes := detector.Schemes(value)
		if len(schemes) == 0 {
			slog.Warn("no scheme matched", "value", value)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", value, strings.Join(schemes, ","))
	}
	return nil
}
