// Package models contains the domain interfaces shared across the application.
package models

import "context"

// Executor defines the interface for executing Terraform commands.
type Executor interface {
	// RunCommand executes a terraform command with the given arguments.
	// If redirectOutput is true, the command's output will be redirected to stdout/stderr.
	RunCommand(ctx context.Context, args []string, spinnerMsg string, redirectOutput bool) error
}

// PlanGenerator defines operations for producing plan JSON files.
type PlanGenerator interface {
	// GenerateJSON runs terraform plan and writes the plan as JSON to outputPath.
	// Extra arguments are passed through to terraform plan.
	GenerateJSON(ctx context.Context, outputPath string, args []string) error
}
