package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/marcus/pdp/internal/catalog"
	"github.com/marcus/pdp/internal/pricing"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List the available sizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSizes(cmd.OutOrStdout(), resolveLang(cmd))
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show additional product information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printInfo(cmd.OutOrStdout(), resolveLang(cmd))
	},
}

func printSizes(w io.Writer, lang string) error {
	for _, s := range catalog.Product(lang).Sizes {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func printInfo(w io.Writer, lang string) error {
	p := catalog.Product(lang)
	_, err := fmt.Fprintf(w, "%s (%s)\n\n%s\n\n%s\n", p.Title, pricing.Format(p.Price), p.InfoTitle, p.InfoText)
	return err
}

func init() {
	rootCmd.AddCommand(sizesCmd)
	rootCmd.AddCommand(infoCmd)
}
