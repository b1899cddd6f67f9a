package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yeisme/zipling/pkg/utils/schema"
)

var schemaOutputDir string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the configuration and the report",
	Long: `Generate JSON schemas describing the zipling configuration file and the
analysis report document. Without --output the schemas are written to stdout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaOutputDir == "" {
			if err := schema.GenConfigSchema(cmd.OutOrStdout()); err != nil {
				return err
			}
			return schema.GenReportSchema(cmd.OutOrStdout())
		}

		if err := os.MkdirAll(schemaOutputDir, 0o755); err != nil {
			return err
		}

		if err := writeSchemaFile(filepath.Join(schemaOutputDir, "config_schema.json"), schema.GenConfigSchema); err != nil {
			return err
		}
		return writeSchemaFile(filepath.Join(schemaOutputDir, "report_schema.json"), schema.GenReportSchema)
	},
}

func writeSchemaFile(path string, gen func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return gen(f)
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(&schemaOutputDir, "output", "o", "", "directory to write schema files to")
}
