package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/schemalens/schemalens"
	"github.com/schemalens/schemalens/pipeline"
	"github.com/schemalens/schemalens/schemamodel"
	"github.com/schemalens/schemalens/schemasource"
	"github.com/schemalens/schemalens/validator"
)

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Schema string `short:"s" help:"Schema document file (JSON or YAML)" required:"" type:"path"`
	Views  string `arg:"" help:"View specifications file (JSON or YAML)" type:"path"`
	Output string `short:"o" help:"Write the full analysis result to a JSON file" type:"path"`
	SQL    bool   `help:"Print compiled SQL for valid views"`
}

// Run executes the validate command
func (cmd *ValidateCmd) Run(ctx *Context) error {
	config, err := schemalens.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	doc, err := schemasource.LoadDocument(cmd.Schema)
	if err != nil {
		return err
	}

	model, err := schemamodel.Build(doc)
	if err != nil {
		return fmt.Errorf("failed to build schema model: %w", err)
	}

	if ctx.Verbose {
		for _, warning := range model.Warnings() {
			color.Yellow("schema: %s", warning)
		}

		color.Blue("Loaded schema: %d tables, %d foreign keys",
			len(model.TableNames()), model.Graph().EdgeCount())
	}

	views, err := schemasource.LoadViews(cmd.Views)
	if err != nil {
		return err
	}

	p := pipeline.New(model, pipeline.Static(views), validator.OptionsFromConfig(config))

	result, err := p.Run(context.Background(), len(views))
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		cmd.printResult(result)
	}

	if cmd.Output != "" {
		outputPath := cmd.Output
		if filepath.Dir(outputPath) == "." && config.Output.Dir != "" {
			outputPath = filepath.Join(config.Output.Dir, outputPath)
		}

		if err := pipeline.WriteResults(outputPath, result); err != nil {
			return err
		}

		if !ctx.Quiet {
			color.Blue("Results written to %s", outputPath)
		}
	}

	return nil
}

func (cmd *ValidateCmd) printResult(result *pipeline.AnalysisResult) {
	for _, view := range result.Views {
		if view.IsValid {
			color.Green("✓ %s", view.ViewName)
		} else {
			color.Red("✗ %s", view.ViewName)
		}

		for _, msg := range view.Errors {
			color.Red("    error: %s", msg)
		}

		for _, msg := range view.Warnings {
			color.Yellow("    warning: %s", msg)
		}

		if cmd.SQL && view.IsValid {
			fmt.Println(view.SQL)
		}
	}

	summary := result.Summary
	fmt.Printf("\nGenerated: %d\n", summary.TotalGenerated)
	fmt.Printf("After deduplication: %d (removed %d)\n",
		summary.AfterDeduplication, summary.DuplicatesRemoved)
	fmt.Printf("Valid: %d\n", summary.Valid)
	fmt.Printf("Invalid: %d\n", summary.Invalid)
	fmt.Printf("Success rate: %s\n", summary.SuccessRate)
}
