package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/pdp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or change saved preferences",
	Long: fmt.Sprintf(`Read or change preferences stored in .pdp/config.json.

Keys: %v`, config.Keys()),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range config.Keys() {
			v, err := config.Get(getBaseDir(), k)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, v)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.Get(getBaseDir(), args[0])
		if err != nil {
			return withKeyHint(args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(getBaseDir(), args[0], args[1]); err != nil {
			return withKeyHint(args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
