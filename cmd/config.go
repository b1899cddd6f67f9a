package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yeisme/zipling/pkg/configs"
)

var (
	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage zipling configuration",
		Long:    `zipling config allows you to view and validate your zipling configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate zipling configuration",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := ziplingCtx.Viper.ReadInConfig(); err != nil {
				cmd.PrintErrf("Config file error: %v\n", err)
				os.Exit(1)
			}

			log.Info().Msgf("Config file used: %s", ziplingCtx.Viper.ConfigFileUsed())
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List zipling configuration",
		Long: `zipling config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - linguist: Classifier settings

Examples:
  zipling config list                    # Show all configuration
  zipling config list linguist           # Show only classifier settings
  zipling config list --format json      # Output in JSON format
  zipling config list --toml             # Output in TOML format (shorthand)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd)

			data, err := configs.GetConfigSection(ziplingCtx.Viper, section)
			if err != nil {
				return err
			}

			return configs.OutputData(data, format, cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configListCmd)

	configListCmd.Flags().String("format", "", "output format: yaml, json, toml or text")
	configListCmd.Flags().Bool("yaml", false, "output in YAML format")
	configListCmd.Flags().Bool("json", false, "output in JSON format")
	configListCmd.Flags().Bool("toml", false, "output in TOML format")
}
