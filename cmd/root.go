package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/pdp/internal/catalog"
	"github.com/marcus/pdp/internal/config"
)

var (
	baseDir string

	langFlag    langValue
	noMouseFlag bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "pdp",
	Short: "Product detail screen for the terminal",
	Long: `pdp - A product detail screen: pick a size, then add the product to the cart.

Run without a subcommand to open the interactive screen.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().Var(&langFlag, "lang", fmt.Sprintf("display language %v", catalog.Languages()))
	rootCmd.PersistentFlags().BoolVar(&noMouseFlag, "no-mouse", false, "disable mouse support")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory holding .pdp/config.json
func getBaseDir() string {
	return baseDir
}

// resolveLang returns the --lang flag if given, else the configured language
func resolveLang(cmd *cobra.Command) string {
	if cmd.Flags().Changed("lang") {
		return langFlag.String()
	}
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		logger().Warn("load config", "err", err)
		return ""
	}
	return cfg.Lang
}

// mouseEnabled combines --no-mouse with the configured preference
func mouseEnabled(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("no-mouse") {
		return !noMouseFlag
	}
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return true
	}
	return !cfg.NoMouse
}
