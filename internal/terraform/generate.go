package terraform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"tfsum/internal/models"
)

// Generator produces plan JSON files by shelling out to terraform.
type Generator struct {
	executor models.Executor
	dir      string
}

// NewGenerator creates a new plan generator using the given executor.
func NewGenerator(executor models.Executor, dir string) *Generator {
	return &Generator{
		executor: executor,
		dir:      dir,
	}
}

// GenerateJSON runs `terraform plan -out` against a temporary plan file,
// converts it with `terraform show -json`, and writes the result to
// outputPath. Extra arguments are passed through to terraform plan.
func (g *Generator) GenerateJSON(ctx context.Context, outputPath string, args []string) error {
	tempDir, err := os.MkdirTemp("", "tfsum")
	if err != nil {
		return fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	binaryPlan := filepath.Join(tempDir, "terraform.tfplan")

	planArgs := []string{"plan", "-out", binaryPlan}
	planArgs = append(planArgs, args...)
	if err := g.executor.RunCommand(ctx, planArgs, "Creating terraform plan", false); err != nil {
		return fmt.Errorf("error executing terraform plan: %w", err)
	}

	tfshow := exec.CommandContext(ctx, "terraform", "show", "-json", binaryPlan)
	tfshow.Dir = g.dir
	tfshow.Stderr = os.Stderr
	output, err := tfshow.Output()
	if err != nil {
		return fmt.Errorf("error showing plan in JSON format: %w", err)
	}

	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("error writing plan JSON: %w", err)
	}

	return nil
}

// Ensure Generator implements the models.PlanGenerator interface
var _ models.PlanGenerator = (*Generator)(nil)
