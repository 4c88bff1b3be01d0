package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/pdp/internal/catalog"
	"github.com/marcus/pdp/internal/models"
	"github.com/marcus/pdp/internal/selection"
)

var (
	buySize sizeValue
	buyJSON bool
)

// sizePrompter asks the user for a size when none was given
type sizePrompter func(sizes []models.Size, labels catalog.Labels) (models.Size, error)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Select a size and add the product to the cart",
	Long: `Select a size and confirm the purchase without opening the screen.

Without --size, an interactive prompt is shown when stdin is a terminal.`,
	Example: `  pdp buy --size M
  pdp buy --size xl --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var prompt sizePrompter
		if term.IsTerminal(int(os.Stdin.Fd())) {
			prompt = promptSize
		}
		return runBuy(cmd.OutOrStdout(), resolveLang(cmd), models.Size(buySize), buyJSON, prompt)
	},
}

func runBuy(w io.Writer, lang string, size models.Size, asJSON bool, prompt sizePrompter) error {
	product := catalog.Product(lang)
	labels := catalog.LabelsFor(lang)
	ctrl := selection.New(product,
		selection.WithLabels(labels),
		selection.WithLogger(logger()),
	)

	if size == "" && prompt != nil {
		var err error
		if size, err = prompt(ctrl.Sizes(), labels); err != nil {
			return err
		}
	}

	if size != "" {
		if err := ctrl.SelectSize(size); err != nil {
			if errors.Is(err, selection.ErrUnknownSize) {
				if hint := suggestSizes(size, ctrl.Sizes()); hint != "" {
					return fmt.Errorf("%w; did you mean %s?", err, hint)
				}
			}
			return err
		}
	}

	intent, err := ctrl.ConfirmPurchase()
	if err != nil {
		return fmt.Errorf("%s: %w", ctrl.PurchaseActionState().Label, err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(intent)
	}

	_, err = fmt.Fprintf(w, "%s: %s - %s %s (%s)\n",
		labels.Added, intent.Product, labels.SizeHeading, intent.Size, ctrl.BasePrice())
	return err
}

func promptSize(sizes []models.Size, labels catalog.Labels) (models.Size, error) {
	options := make([]huh.Option[models.Size], len(sizes))
	for i, s := range sizes {
		options[i] = huh.NewOption(string(s), s)
	}

	var choice models.Size
	err := huh.NewSelect[models.Size]().
		Title(labels.SelectSize).
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		return "", fmt.Errorf("size prompt: %w", err)
	}
	return choice, nil
}

func init() {
	buyCmd.Flags().Var(&buySize, "size", "size to buy (XS, S, M, L, XL)")
	buyCmd.Flags().BoolVar(&buyJSON, "json", false, "print the purchase as JSON")
	rootCmd.AddCommand(buyCmd)
}
