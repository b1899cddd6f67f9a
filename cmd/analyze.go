package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/yeisme/zipling/pkg/analyzer"
	"github.com/yeisme/zipling/pkg/configs"
	"github.com/yeisme/zipling/pkg/style"
)

// analyzeOptions 存放 analyze 命令的可配置参数
type analyzeOptions struct {
	docker bool
	format string
	output string
	only   string
}

var analyzeOpts = analyzeOptions{
	format: "table",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <archive.zip>",
	Short: "Analyze the language composition of a ZIP archive",
	Long: `Analyze extracts the archive into a private temporary directory, detects
the project root, prepares a transient git repository and runs the external
classifier against it, reporting per-language percentage and line count.

Examples:
  # Analyze with the local github-linguist executable
  zipling analyze project.zip

  # Run the classifier inside a container instead
  zipling analyze project.zip --docker

  # Machine-readable output, additionally exported to a file
  zipling analyze project.zip --format json --output result.json

  # Only display languages fuzzy-matching a query
  zipling analyze project.zip --only script`,
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(analyzeOpts.format))
		switch format {
		case "table", "json", "yaml", "markdown":
		default:
			return errors.New("unsupported format, allowed values: table, json, yaml, markdown")
		}

		opts := ziplingCtx.Config.Linguist.ToOptions()
		if analyzeOpts.docker {
			opts.Mode = analyzer.ModeDocker
		}

		log.Debug().Str("archive", args[0]).Str("mode", string(opts.Mode)).Msg("starting analysis")

		result, err := analyzer.Analyze(args[0], opts)
		if err != nil {
			return err
		}

		display := result
		if q := strings.TrimSpace(analyzeOpts.only); q != "" {
			display = filterLanguages(result, q)
		}

		if err := renderResult(cmd, display, format); err != nil {
			return err
		}

		if out := strings.TrimSpace(analyzeOpts.output); out != "" {
			if err := exportJSON(out, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", out)
		}
		return nil
	},
}

// filterLanguages 按模糊查询过滤展示的语言，仅影响输出，不影响分析结果
func filterLanguages(result analyzer.Result, query string) analyzer.Result {
	filtered := make(analyzer.Result)
	q := strings.ToLower(query)
	for language, stat := range result {
		if fuzzy.Match(q, strings.ToLower(language)) {
			filtered[language] = stat
		}
	}
	return filtered
}

// sortedLanguages 按百分比降序（相同时按名称）返回语言列表
func sortedLanguages(result analyzer.Result) []string {
	languages := make([]string, 0, len(result))
	for language := range result {
		languages = append(languages, language)
	}
	sort.Slice(languages, func(i, j int) bool {
		a, b := result[languages[i]], result[languages[j]]
		if a.Percent != b.Percent {
			return a.Percent > b.Percent
		}
		return languages[i] < languages[j]
	})
	return languages
}

func renderResult(cmd *cobra.Command, result analyzer.Result, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return style.PrintJSON(w, result)
	case "yaml":
		return renderYAML(w, result)
	case "markdown":
		return style.RenderMarkdown(w, markdownReport(result), 0, "")
	default:
		rows := make([][]string, 0, len(result))
		for _, language := range sortedLanguages(result) {
			stat := result[language]
			rows = append(rows, []string{
				language,
				fmt.Sprintf("%.2f", stat.Percent),
				fmt.Sprintf("%d", stat.Lines),
			})
		}
		return style.PrintTable(w, []string{"language", "percent", "lines"}, rows, 0)
	}
}

func renderYAML(w io.Writer, result analyzer.Result) error {
	return configs.OutputData(result, configs.FormatYAML, w)
}

// markdownReport 把结果排版成 Markdown 表格供 glamour 渲染
func markdownReport(result analyzer.Result) string {
	var b strings.Builder
	b.WriteString("# Language Breakdown\n\n")
	b.WriteString("| Language | Percent | Lines |\n")
	b.WriteString("| --- | ---: | ---: |\n")
	for _, language := range sortedLanguages(result) {
		stat := result[language]
		fmt.Fprintf(&b, "| %s | %.2f%% | %d |\n", language, stat.Percent, stat.Lines)
	}
	return b.String()
}

// exportJSON 将原始结果写入文件（不着色、不过滤）
func exportJSON(path string, result analyzer.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeOpts.docker, "docker", false, "run the classifier inside a container")
	analyzeCmd.Flags().StringVar(&analyzeOpts.format, "format", analyzeOpts.format, "output format: table, json, yaml or markdown")
	analyzeCmd.Flags().StringVarP(&analyzeOpts.output, "output", "o", "", "export raw JSON result to `file`")
	analyzeCmd.Flags().StringVar(&analyzeOpts.only, "only", "", "only display languages fuzzy-matching this query")
}
