package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/programmerjake/quick-shell/internal/pretty"
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/parse"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

func newTokensCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Parse a file (or stdin) and print one compact line per word or comment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, flags)
		},
	}
}

func runTokens(cmd *cobra.Command, args []string, flags *rootFlags) error {
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

	tokens, tokErr := tokenize(p, in, style)
	for _, tok := range tokens {
		printToken(cmd, tok)
	}

	if tokErr != nil {
		styles := pretty.NewStyles(pretty.IsColorEnabled(flags.colorMode, cmd.OutOrStdout()))
		reportParseError(cmd, styles, tokErr)
		return errParseFailed
	}
	return nil
}

func printToken(cmd *cobra.Command, tok token) {
	switch {
	case tok.Word != nil:
		fmt.Fprintf(cmd.OutOrStdout(), "word    %-16s %q\n", tok.Word.Span(), tok.Word.Span().Bytes())
	case tok.Comment != nil:
		fmt.Fprintf(cmd.OutOrStdout(), "comment %-16s %q\n", tok.Comment.Span(), tok.Comment.Span().Bytes())
	}
}
