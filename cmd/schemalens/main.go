package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("schemalens v0.1.0")
	return nil
}

// CLI represents the command-line interface
var CLI struct {
	Config   string      `help:"Configuration file path" default:"schemalens.yaml"`
	Verbose  bool        `help:"Enable verbose output" short:"v"`
	Quiet    bool        `help:"Suppress output" short:"q"`
	Validate ValidateCmd `cmd:"" help:"Validate view specifications against a schema"`
	Context  ContextCmd  `cmd:"" help:"Render the schema as generator context text"`
	Pull     PullCmd     `cmd:"" help:"Extract a schema document from a database"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
