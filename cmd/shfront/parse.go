package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/programmerjake/quick-shell/internal/pretty"
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/parse"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

func newParseCommand(flags *rootFlags) *cobra.Command {
	var printAST bool
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a file (or stdin) into words, reporting the first error found",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags, printAST)
		},
	}
	cmd.Flags().BoolVar(&printAST, "print-ast", true, "print each parsed word's AST dump")
	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *rootFlags, printAST bool) error {
	style, err := flags.resolveStyle()
	if err != nil {
		return err
	}
	name, src, retryAfterEOF, closer, err := openSource(args)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	in := textinput.New(name, style, src, retryAfterEOF)
	arena := ast.NewArena()
	p := parse.NewParser(arena)
	logger.Debug("parsing", "name", name, "dialect", flags.dialectName)

	tokens, tokErr := tokenize(p, in, style)
	styles := pretty.NewStyles(pretty.IsColorEnabled(flags.colorMode, cmd.OutOrStdout()))
	if printAST {
		for _, tok := range tokens {
			switch {
			case tok.Word != nil:
				fmt.Fprintln(cmd.OutOrStdout(), pretty.DumpAST(styles, tok.Word))
			case tok.Comment != nil:
				fmt.Fprintf(cmd.OutOrStdout(), "Comment %s\n", tok.Comment.Span())
			}
		}
	}
	logger.Debug("parsed", "tokens", len(tokens))

	if tokErr != nil {
		reportParseError(cmd, styles, tokErr)
		return errParseFailed
	}
	return nil
}

func reportParseError(cmd *cobra.Command, styles *pretty.Styles, err error) {
	if perr, ok := err.(*parse.Error); ok {
		pretty.Diagnostic(cmd.ErrOrStderr(), styles, perr.Location, perr.Message)
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err)
}
