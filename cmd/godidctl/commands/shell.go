package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive godidctl session",
		Long:  "Launches a REPL that dispatches each typed line as a godidctl subcommand invocation. Type 'help' to list them, 'exit' or 'quit' to leave.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd.Root(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runREPL reads lines from in and executes each as an argument vector
// against root, until the user types "exit"/"quit" or input runs out.
func runREPL(root *cobra.Command, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "godidctl interactive session. Type 'help' to list commands, 'exit' to quit.")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "godidctl> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "exit" || line == "quit":
			return nil
		case line == "help" || line == "?":
			listCommands(root, out)
		case line != "":
			root.SetArgs(strings.Fields(line))
			if err := root.Execute(); err != nil {
				fmt.Fprintln(out, "Error:", err)
			}
		}

		fmt.Fprint(out, "godidctl> ")
	}

	return scanner.Err()
}

// listCommands prints every registered subcommand's usage line and
// one-line description, read straight from the cobra tree -- including
// one level of nested subcommands, e.g. "pack unpack" -- so the help
// output can never drift from what root.go actually registers.
func listCommands(root *cobra.Command, out io.Writer) {
	fmt.Fprintln(out, "Available commands:")
	fmt.Fprintln(out)

	for _, sub := range root.Commands() {
		switch sub.Name() {
		case "help", "completion", "shell":
			continue
		}
		fmt.Fprintf(out, "  %-38s %s\n", sub.UseLine(), sub.Short)
		for _, nested := range sub.Commands() {
			fmt.Fprintf(out, "  %-38s %s\n", nested.UseLine(), nested.Short)
		}
	}
	fmt.Fprintln(out, "  exit / quit                           Leave the interactive session")
}
