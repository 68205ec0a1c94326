// Command gryphonc drives the translator core end to end: it loads a
// serialized AST, runs it through the emitter, and reports the result
// plus any accumulated diagnostics. This is the ambient CLI the core
// specification scopes out as an external collaborator.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/go-strftime"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gryphon/internal/ast"
	"gryphon/internal/astio"
	"gryphon/internal/diag"
	"gryphon/internal/emit"
	"gryphon/internal/registry"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gryphonc",
		Short: "Translate a GryphonAST fixture into TargetLang source",
	}
	cmd.AddCommand(newTranslateCommand())
	return cmd
}

func newTranslateCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "translate <ast-file.json|.yaml>",
		Short: "Load an AST fixture and emit its translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], quiet)
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the run header and summary line")
	return cmd
}

func runTranslate(cmd *cobra.Command, path string, quiet bool) error {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var tree, decodeErr = decode(path, data)
	if decodeErr != nil {
		return decodeErr
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	sink := diag.NewSink(logger)
	adapter := diag.NewAdapter(sink)
	ctx := registry.New()
	ctx.RunID = sink.RunID

	emitter := emit.New(ctx, adapter)
	out := cmd.OutOrStdout()
	colorize := isatty.IsTerminal(os.Stdout.Fd())

	if !quiet {
		header := strftime.Format("%Y-%m-%d %H:%M:%S", start)
		fmt.Fprintf(out, "gryphonc run %s at %s\n", sink.RunID, header)
	}

	translated := emitter.Translate(tree)
	if colorize && strings.Contains(translated, diag.Sentinel) {
		translated = strings.ReplaceAll(translated, diag.Sentinel, "\x1b[31m"+diag.Sentinel+"\x1b[0m")
	}
	fmt.Fprint(out, translated)

	if sink.HasDiagnostics() {
		sink.PrintDiagnostics(cmd.ErrOrStderr())
	}

	if !quiet {
		elapsed := time.Since(start)
		fmt.Fprintf(out, "\n# emitted %s in %s across %d diagnostics\n",
			humanize.Bytes(uint64(len(translated))), elapsed.Round(time.Millisecond), len(sink.Diagnostics()))
	}

	if sink.HasDiagnostics() {
		return fmt.Errorf("translation completed with %d diagnostics", len(sink.Diagnostics()))
	}
	return nil
}

func decode(path string, data []byte) (*ast.GryphonAST, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return astio.DecodeJSON(data)
	case ".yaml", ".yml":
		return astio.DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unrecognized AST fixture extension %q (want .json, .yaml, .yml)", filepath.Ext(path))
	}
}
