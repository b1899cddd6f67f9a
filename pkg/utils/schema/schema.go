// Package schema provides utilities for working with JSON schemas.
package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"

	"github.com/yeisme/zipling/pkg/analyzer"
	"github.com/yeisme/zipling/pkg/configs"
)

// GenConfigSchema generates the JSON schema for the application configuration
// and writes it to the provided writer.
func GenConfigSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	configSchema := reflector.Reflect(configs.Config{})
	return writeSchema(out, configSchema)
}

// GenReportSchema generates the JSON schema for the analysis report
// (language → {percent, lines}) and writes it to the provided writer.
func GenReportSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	reportSchema := reflector.Reflect(analyzer.Result{})
	return writeSchema(out, reportSchema)
}

func writeSchema(out io.Writer, s *jsonschema.Schema) error {
	schemaJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(schemaJSON))
	return err
}
