package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"src.elv.sh/pkg/sys"

	"github.com/programmerjake/quick-shell/internal/pretty"
	"github.com/programmerjake/quick-shell/pkg/ast"
	"github.com/programmerjake/quick-shell/pkg/byteinput"
	"github.com/programmerjake/quick-shell/pkg/parse"
	"github.com/programmerjake/quick-shell/pkg/textinput"
)

func newReplCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read lines from stdin and print the parsed word tree for each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, flags)
		},
	}
}

// runRepl reads stdin line by line, following elves-posixsh main.go's
// repl() shape, feeding each line through tokenize independently. Unlike
// a real shell REPL it never carries state between lines — there is no
// evaluator behind this front end to carry state for.
func runRepl(cmd *cobra.Command, flags *rootFlags) error {
	style, err := flags.resolveStyle()
	if err != nil {
		return err
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(flags.colorMode, cmd.OutOrStdout()))
	interactive := sys.IsATTY(os.Stdin.Fd())
	stdin := bufio.NewReader(os.Stdin)

	for i := 1; ; i++ {
		if interactive {
			fmt.Fprint(cmd.OutOrStdout(), "shfront> ")
		}
		line, readErr := stdin.ReadString('\n')
		if line == "" && readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return readErr
		}

		name := fmt.Sprintf("<repl:%d>", i)
		in := textinput.New(name, style, byteinput.FromBytes([]byte(line)), false)
		arena := ast.NewArena()
		p := parse.NewParser(arena)

		tokens, tokErr := tokenize(p, in, style)
		for _, tok := range tokens {
			printToken(cmd, tok)
		}
		if tokErr != nil {
			reportParseError(cmd, styles, tokErr)
		}

		if readErr == io.EOF {
			return nil
		}
	}
}
