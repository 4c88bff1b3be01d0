package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/pdp/internal/models"
	"github.com/marcus/pdp/pkg/screen"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open the interactive product screen (default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd)
	},
}

func runScreen(cmd *cobra.Command) error {
	log, closeLog := screenLogger()
	defer closeLog()

	var purchases []models.PurchaseIntent
	lang := resolveLang(cmd)
	mouse := mouseEnabled(cmd)

	m := screen.New(screen.Options{
		Lang:         lang,
		MouseEnabled: mouse,
		Logger:       log,
		OnPurchase: func(p models.PurchaseIntent) {
			purchases = append(purchases, p)
		},
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Info("screen started", "lang", lang, "mouse", mouse)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		log.Error("screen", "err", err)
		return fmt.Errorf("run screen: %w", err)
	}

	// The cart lives outside this screen; report what was handed over
	for _, p := range purchases {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s - %s %s\n", m.Labels.Added, p.Product, m.Labels.SizeHeading, p.Size)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
