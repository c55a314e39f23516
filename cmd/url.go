package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/pid/detect"
	"github.com/lehigh-university-libraries/pid/normalize"
)

var (
	urlSchemeName string
	urlProtocol   string
)

var urlCmd = &cobra.Command{
	Use:   "url [identifier...]",
	Short: "Render landing-page URLs for persistent identifiers",
	Long: `Render the landing-page URL of each resolvable identifier.

The scheme is detected automatically; pass --scheme to resolve under a
specific scheme instead. Identifiers without a known resolver produce an
error. Identifiers are read from the arguments, or line by line from
stdin when no arguments are given.

Examples:
  pid url 10.1234/foo.bar
  pid url --url-scheme https 0000-0002-1825-0097
  cat identifiers.txt | pid url`,
	RunE: runURL,
}

func init() {
	urlCmd.Flags().StringVarP(&urlSchemeName, "scheme", "s", "", "Scheme to resolve under (default: first detected)")
	urlCmd.Flags().StringVar(&urlProtocol, "url-scheme", "http", "URL scheme of the rendered link (http or https)")
}

func runURL(cmd *cobra.Command, args []string) error {
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
		schemeName := urlSchemeName
		if schemeName == "" {
			schemes := detector.Schemes(value)
			if len(schemes) == 0 {
				return fmt.Errorf("no scheme matched %q; pass --scheme to force one", value)
			}
			schemeName = schemes[0]
		}
		u := normalizer.ToURL(value, schemeName, urlProtocol)
		if u == "" {
			return fmt.Errorf("%q has no landing page under scheme %q", value, schemeName)
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
	}
	return nil
}
