package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	apperrors "tfsum/internal/errors"
	"tfsum/internal/plan"
	"tfsum/internal/render"
	"tfsum/internal/terraform"
	"tfsum/internal/ui"
)

var (
	generateDir      string
	generateOut      string
	generateParse    bool
	generateDetailed bool
	generateYes      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [-- terraform-plan-args]",
	Short: "Run terraform plan and write the plan as JSON",
	Long: `Run terraform plan in the given working directory, convert the result
with terraform show -json, and write it to a plan JSON file that the parse
command understands.

Examples:
  # Generate plan.json in the current directory
  tfsum generate

  # Generate and summarize in one step
  tfsum generate --parse --detailed

  # Pass variables through to terraform plan
  tfsum generate -- -var="environment=production"
`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateDir, "chdir", "C", "", "Terraform working directory")
	generateCmd.Flags().StringVarP(&generateOut, "out", "p", "plan.json", "Output plan file name")
	generateCmd.Flags().BoolVar(&generateParse, "parse", false, "Parse the plan after generating it")
	generateCmd.Flags().BoolVar(&generateDetailed, "detailed", false, "Show detailed output when parsing")
	generateCmd.Flags().BoolVarP(&generateYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := terraform.LookPath(); err != nil {
		return apperrors.NewConfigurationError(
			"dependencies",
			"Terraform executable not found in PATH",
			err,
		)
	}

	if !generateYes {
		if err := confirmGenerate(); err != nil {
			return err
		}
	}

	executor := terraform.NewCommandExecutor(generateDir)
	generator := terraform.NewGenerator(executor, generateDir)

	if err := generator.GenerateJSON(cmd.Context(), generateOut, args); err != nil {
		return fmt.Errorf("Planning failed: %w", err)
	}

	fmt.Printf("%s%sTerraform plan has been saved to %s%s\n",
		ui.ColorSuccess, ui.TextBold, generateOut, ui.ColorReset)

	if !generateParse {
		return nil
	}

	doc, err := plan.LoadFile(generateOut)
	if err != nil {
		return err
	}
	summary := plan.Analyze(doc)

	out, err := render.Render(summary, render.FormatText, render.Options{
		Detailed: generateDetailed,
		NoColor:  noColor,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// confirmGenerate asks before shelling out to terraform. Declining is a
// user abort, not a failure of the command itself.
func confirmGenerate() error {
	dir := generateDir
	if dir == "" {
		dir = "."
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Run terraform plan in %s", dir),
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		// promptui.ErrAbort on "n", EOF or interrupt otherwise; all mean stop.
		return apperrors.ErrUserAborted
	}
	return nil
}
