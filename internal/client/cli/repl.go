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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Activity(ctx context.Context) error
	Filter(ctx context.Context, kind string) error
	Search(ctx context.Context, term string) error
	Page(ctx context.Context, arg string) error
	PageSize(ctx context.Context, arg string) error
	Refresh(ctx context.Context) error
	VerifyText(ctx context.Context) error
	VerifyImage(ctx context.Context) error
	VerifyVideo(ctx context.Context) error
	Profile(ctx context.Context) error
	SetName(ctx context.Context) error
	Passwd(ctx context.Context) error
	Contact(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the veriscan CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  - help           — show available commands
//	  - register       — create an account (signs in on success)
//	  - login          — authenticate
//	  - contact        — send a message to the service
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - dashboard | d  — aggregate statistics and usage insights
//	  - activity | a   — current page of past verifications
//	  - filter <kind>  — restrict activity to text, image, video, or all
//	  - search [term]  — match activity content; no term clears the search
//	  - page <n>       — jump to a page of the activity view
//	  - pagesize <n>   — records per page (10, 20, 50, 100)
//	  - refresh        — re-fetch the activity snapshot
//	  - verifytext | verifyimage | verifyvideo — submit content
//	  - profile, setname, passwd, whoami, logout
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("veriscan %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard (d), activity (a), filter, search, page, pagesize, refresh,")
				printlnFn("  verifytext, verifyimage, verifyvideo, profile, setname, passwd, whoami, contact, logout, exit")
			} else {
				printlnFn("Available commands: register, login, contact, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "a", "activity":
			_ = a.Activity(ctx)

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <all|text|image|video>")
				continue
			}
			_ = a.Filter(ctx, args[0])

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <number>")
				continue
			}
			_ = a.Page(ctx, args[0])

		case "pagesize":
			if len(args) == 0 {
				printlnFn("Usage: pagesize <10|20|50|100>")
				continue
			}
			_ = a.PageSize(ctx, args[0])

		case "refresh":
			_ = a.Refresh(ctx)

		case "verifytext":
			_ = a.VerifyText(ctx)

		case "verifyimage":
			_ = a.VerifyImage(ctx)

		case "verifyvideo":
			_ = a.VerifyVideo(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "setname":
			_ = a.SetName(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
