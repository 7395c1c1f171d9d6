package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/minicc-lang/minicc/pkg/arm"
	"github.com/minicc-lang/minicc/pkg/examples"
	"github.com/minicc-lang/minicc/pkg/ir"
	"github.com/minicc-lang/minicc/pkg/translate"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Debug flags for dumping intermediate representations, one per
// pipeline stage, collapsed here to the two stages this core has.
var (
	dIR  bool
	emit string
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists the single-dash CompCert-style spellings this
// CLI accepts alongside pflag's own double-dash form.
var debugFlagNames = []string{"dir", "example"}

func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, name := range debugFlagNames {
			if arg == "-"+name {
				result[i] = "--" + name
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minicc -example NAME",
		Short: "minicc compiles a MiniC translation unit to ARM32 assembly",
		Long: `minicc is a MiniC-to-ARM32 translation core CLI. It follows the
CompCert design: a typed intermediate representation sits between the
syntax and the target, and each stage can be inspected independently.

This build has no lexer or parser: -example selects a translation unit
from a small built-in registry standing in for that external frontend.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVar(&exampleName, "example", "", "name of the built-in example translation unit to compile")
	rootCmd.Flags().BoolVarP(&dIR, "dir", "", false, "dump the translated IR module instead of assembly")
	rootCmd.Flags().StringVar(&emit, "emit", "asm", `output kind: "ir" or "asm"`)

	return rootCmd
}

var exampleName string

func runCompile(out, errOut io.Writer) error {
	if exampleName == "" {
		names := make([]string, 0, len(examples.Registry))
		for n := range examples.Registry {
			names = append(names, n)
		}
		sort.Strings(names)
		fmt.Fprintf(errOut, "minicc: -example is required (available: %v)\n", names)
		return fmt.Errorf("no example selected")
	}
	unit, ok := examples.Registry[exampleName]
	if !ok {
		fmt.Fprintf(errOut, "minicc: unknown example %q\n", exampleName)
		return fmt.Errorf("unknown example %q", exampleName)
	}

	m := ir.NewModule()
	m.DeclareBuiltins()

	t := translate.TranslateProgram(m, unit)
	if !t.Ok() {
		for _, e := range t.Diags.Errors() {
			fmt.Fprintln(errOut, e)
		}
		return fmt.Errorf("translation failed with %d diagnostics", len(t.Diags.Errors()))
	}

	if dIR || emit == "ir" {
		ir.NewPrinter(out).PrintModule(m)
		return nil
	}

	prog := arm.SelectModule(m)
	arm.NewPrinter(out).PrintProgram(prog)
	return nil
}
