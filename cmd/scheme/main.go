// Command scheme runs Scheme sources and hosts an interactive REPL.
//
//	scheme run <file>   evaluate a file, print the final result
//	scheme repl         interactive session (the default)
//	scheme version      print the interpreter version
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	"github.com/JouleJ/scheme"
)

type cli struct {
	Config  string `help:"Path to the REPL config file." type:"path" placeholder:"FILE"`
	Profile bool   `help:"Write a CPU profile to the working directory."`

	Run     runCmd     `cmd:"" help:"Evaluate a source file."`
	Repl    replCmd    `cmd:"" default:"1" help:"Start an interactive session."`
	Version versionCmd `cmd:"" help:"Print the interpreter version."`
}

type runCmd struct {
	Path string `arg:"" type:"existingfile" help:"Scheme source file."`
}

func (c *runCmd) Run(cfg *config) error {
	src, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	ip := scheme.NewInterpreter()
	out, err := ip.RunProgram(string(src))
	if err != nil {
		return scheme.WrapErrorWithSource(err, string(src))
	}
	fmt.Println(out)
	return nil
}

type replCmd struct{}

func (c *replCmd) Run(cfg *config) error {
	return repl(cfg)
}

type versionCmd struct{}

func (c *versionCmd) Run(cfg *config) error {
	fmt.Println(scheme.Version)
	return nil
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("scheme"),
		kong.Description("A small Scheme interpreter."),
		kong.UsageOnError(),
	)

	if args.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg, err := loadConfig(args.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := ctx.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, cfg.red(err.Error()))
		os.Exit(1)
	}
}
