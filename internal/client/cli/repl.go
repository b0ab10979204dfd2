package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	Status(ctx context.Context) error
	Refresh(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Star(ctx context.Context, args []string, on bool) error
	Starred(ctx context.Context) error
	Links(ctx context.Context, args []string) error
	Gates(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Vote(ctx context.Context, args []string) error
	Channels(ctx context.Context) error
	Components(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: signin, status, refresh [query], search [query] [@category], show <id>, " +
		"links <id>, gates <id>, comments <id> [gate], channels, components, exit"
	helpSignedIn = "Available commands: signout, status, refresh [query], search [query] [@category], show <id>, " +
		"star <id>, unstar <id>, starred, links <id>, gates <id>, comments <id> [gate], comment <id> <gate>, " +
		"vote <id> <gate> <state>, channels, components, exit"
)

// runREPL starts a simple read-eval-print loop for the ChromeStatus CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments. The
// loop exits at end of input or when the user types "exit" or "quit".
// Commands that prompt for more input read from the same reader, so reader
// must be the only buffer over the input.
//
// A failing command prints its error and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cs %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "signin":
			err = a.SignIn(ctx)
		case "signout":
			err = a.SignOut(ctx)
		case "status":
			err = a.Status(ctx)

		case "refresh":
			err = a.Refresh(ctx, args)
		case "s", "search":
			err = a.Search(ctx, args)
		case "show":
			err = a.Show(ctx, args)

		case "star":
			err = a.Star(ctx, args, true)
		case "unstar":
			err = a.Star(ctx, args, false)
		case "starred":
			err = a.Starred(ctx)

		case "links":
			err = a.Links(ctx, args)
		case "gates":
			err = a.Gates(ctx, args)
		case "comments":
			err = a.Comments(ctx, args)
		case "comment":
			err = a.Comment(ctx, args)
		case "vote":
			err = a.Vote(ctx, args)

		case "channels":
			err = a.Channels(ctx)
		case "components":
			err = a.Components(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
