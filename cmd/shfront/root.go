package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/programmerjake/quick-shell/pkg/dialect"
)

// rootFlags holds the dialect/tab-size/bug-compat/color/debug flags shared
// by every subcommand, following elves-posixsh main.go's single flag.Bool
// var promoted here to a struct since cobra gives each subcommand its own
// flag set.
type rootFlags struct {
	dialectName   string
	tabSize       int
	bashBugCompat bool
	colorMode     string
	debug         bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{
		dialectName: "quickshell",
		tabSize:     dialect.DefaultTabSize,
		colorMode:   "auto",
	}

	cmd := &cobra.Command{
		Use:   "shfront",
		Short: "Tokenize POSIX-family shell input and dump the resulting word tree",
		Long: `shfront drives this module's word/escape/comment parser over a file or
stdin and prints what it found. It never executes anything, and has no
command, pipeline, or redirection grammar behind it — it only recognizes
words, their escape sequences and quoting, and comments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.debug {
				logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.dialectName, "dialect", flags.dialectName,
		"newline/quoting dialect: posix, bash, securebash, quickshell")
	cmd.PersistentFlags().IntVar(&flags.tabSize, "tab-size", flags.tabSize,
		"tab stop width used for column computation (0 = a tab counts as one column)")
	cmd.PersistentFlags().BoolVar(&flags.bashBugCompat, "bash-bug-compat", false,
		"reproduce bash's two documented $'...' parsing anomalies")
	cmd.PersistentFlags().StringVar(&flags.colorMode, "color", flags.colorMode,
		"colorize output: auto, always, never")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug tracing")

	cmd.AddCommand(newParseCommand(flags))
	cmd.AddCommand(newTokensCommand(flags))
	cmd.AddCommand(newReplCommand(flags))

	return cmd
}

// resolveStyle turns the flags into a dialect.Config, starting from the
// named preset and then applying the tab-size/bug-compat overrides.
func (f *rootFlags) resolveStyle() (dialect.Config, error) {
	var style dialect.Config
	switch f.dialectName {
	case "posix":
		style = dialect.Posix
	case "bash":
		style = dialect.Bash
	case "securebash":
		style = dialect.SecureBash
	case "quickshell", "":
		style = dialect.QuickShell
	default:
		return dialect.Config{}, fmt.Errorf("unknown dialect %q (want posix, bash, securebash, or quickshell)", f.dialectName)
	}
	style.TabSize = f.tabSize
	if f.bashBugCompat {
		style.DuplicateDollarSingleQuoteStringBashParsingFlaws = true
	}
	return style, nil
}
