// Package cmd 提供 zipling 的命令行入口与子命令编排
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yeisme/zipling/pkg/context"
	log2 "github.com/yeisme/zipling/pkg/utils/log"
	"github.com/yeisme/zipling/pkg/utils/version"
)

var (
	ziplingCtx *context.ZiplingContext
	log        log2.Logger

	// Global flags
	configPathFlag    string
	debugFlag         bool
	verboseFlag       bool
	quietFlag         bool
	versionEnableFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zipling",
	Short: "zipling analyzes the language composition of ZIP archives",
	Long: `zipling extracts a ZIP archive, prepares a transient git repository and
runs github-linguist (locally or inside a container) against the detected
project root, reporting per-language percentages and line counts.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionEnableFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return nil
		}
		return cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		ctx, err := context.InitZiplingContext(configPathFlag, debugFlag, verboseFlag, quietFlag)
		if err != nil {
			return err
		}

		ziplingCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "zipling", strings.Join(os.Args[1:], " "))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "suppress all output except errors")
	rootCmd.Flags().BoolVarP(&versionEnableFlag, "version", "v", false, "show version information")
}
