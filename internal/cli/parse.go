package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfsum/internal/plan"
	"tfsum/internal/render"
)

var (
	parseDetailed bool
	parseFormat   string
	parseOutput   string
)

var parseCmd = &cobra.Command{
	Use:   "parse <plan.json>",
	Short: "Parse a plan JSON file and print its summary",
	Long: `Parse a Terraform plan JSON file (produced with terraform show -json)
and print a summary of the planned changes.

Examples:
  # Default text summary
  tfsum parse plan.json

  # Detailed listing grouped by action
  tfsum parse plan.json --detailed

  # Machine-readable output
  tfsum parse plan.json --format json

  # Natural-language narration, saved to a file
  tfsum parse plan.json --format natural --output summary.txt
`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseDetailed, "detailed", "d", false, "Show detailed resource changes")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Output format: text, table, json, natural, styled")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Save output to file instead of stdout")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig()

	name := parseFormat
	if name == "" {
		name = cfg.Output.Format
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return err
	}
	// Styled output is ANSI-only; degrade to the plain table grid.
	if noColor && format == render.FormatStyled {
		format = render.FormatTable
	}

	doc, err := plan.LoadFile(args[0])
	if err != nil {
		return err
	}
	summary := plan.Analyze(doc)

	out, err := render.Render(summary, format, render.Options{
		Detailed: parseDetailed || cfg.Output.Detailed,
		NoColor:  noColor || parseOutput != "",
	})
	if err != nil {
		return err
	}

	if parseOutput != "" {
		if err := os.WriteFile(parseOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("error saving output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Output saved to %s\n", parseOutput)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
