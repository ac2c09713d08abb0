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
	isLoggedIn(ctx context.Context) bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Gallery(ctx context.Context, args []string) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, id string) error
	Submit(ctx context.Context) error
	Draft(ctx context.Context) error
	Mine(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// runREPL starts a simple read–eval–print loop for the gallerie CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands work without an account; submitting, drafts and
// deleting require a login.
//
//	Anyone:
//	  - help                       — show available commands
//	  - signup                     — create an account
//	  - login                      — authenticate
//	  - gallery [filter] [sort]    — browse the collection
//	  - search <query>             — free-text search
//	  - show <id>                  — show a single artwork
//	  - exit | quit                — leave the program
//
//	Logged in, additionally:
//	  - submit                     — submit an artwork (resumes a saved draft)
//	  - draft                      — show the saved draft
//	  - mine                       — list your submissions
//	  - delete <id>                — remove one of your submissions
//	  - whoami                     — show the active account
//	  - logout                     — end the session
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gallerie %s> ", statusFn()))
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
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: gallery [filter] [sort], search <query>, show <id>, submit, draft, mine, delete <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: gallery [filter] [sort], search <query>, show <id>, signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "g", "gallery":
			_ = a.Gallery(ctx, args)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "submit":
			_ = a.Submit(ctx)

		case "draft":
			_ = a.Draft(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
