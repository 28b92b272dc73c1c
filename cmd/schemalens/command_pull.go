package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/schemalens/schemalens"
	"github.com/schemalens/schemalens/schemasource"
)

// PullCmd represents the pull command
type PullCmd struct {
	Environment string `short:"e" help:"Database environment from config" default:"development"`
	Output      string `short:"o" help:"Output schema document file" default:"schema.json" type:"path"`
}

// Run executes the pull command
func (cmd *PullCmd) Run(ctx *Context) error {
	config, err := schemalens.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, ok := config.Databases[cmd.Environment]
	if !ok {
		return fmt.Errorf("%w: %s", schemalens.ErrEnvironmentNotConfigured, cmd.Environment)
	}

	runCtx := context.Background()

	db, err := schemasource.Open(runCtx, dbConfig.Driver, dbConfig.Connection)
	if err != nil {
		return err
	}
	defer db.Close()

	if ctx.Verbose {
		color.Blue("Connected to %s database", dbConfig.Driver)
	}

	doc, err := schemasource.Extract(runCtx, db, dbConfig.Driver)
	if err != nil {
		return fmt.Errorf("schema extraction failed: %w", err)
	}

	if err := schemasource.WriteDocument(cmd.Output, doc); err != nil {
		return err
	}

	if !ctx.Quiet {
		color.Green("Extracted %d tables to %s", len(doc.Tables), cmd.Output)
	}

	return nil
}
