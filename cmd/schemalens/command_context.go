package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/schemalens/schemalens/schemamodel"
	"github.com/schemalens/schemalens/schemasource"
)

// ContextCmd represents the context command
type ContextCmd struct {
	Schema string `arg:"" help:"Schema document file (JSON or YAML)" type:"path"`
}

// Run executes the context command
func (cmd *ContextCmd) Run(ctx *Context) error {
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
	}

	fmt.Println(model.SemanticContext())

	return nil
}
