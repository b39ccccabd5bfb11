package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func newStdinScanner() *bufio.Scanner {
	return bufio.NewScanner(os.Stdin)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Toggle(ctx context.Context, name string) error
	Save(ctx context.Context) error
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, id string) error
	Check(ctx context.Context, fileNames []string) error
	Reload(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the fileblock CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("fb> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, toggle <name>, save, add <name>, rm <id>, check <file>..., reload, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "toggle":
			if len(args) != 1 {
				printlnFn("usage: toggle <name>")
				continue
			}
			_ = a.Toggle(ctx, args[0])

		case "save":
			_ = a.Save(ctx)

		case "add":
			if len(args) != 1 {
				printlnFn("usage: add <name>")
				continue
			}
			_ = a.Add(ctx, args[0])

		case "rm":
			if len(args) != 1 {
				printlnFn("usage: rm <id>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "check":
			if len(args) == 0 {
				printlnFn("usage: check <file>...")
				continue
			}
			_ = a.Check(ctx, args)

		case "reload":
			_ = a.Reload(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
