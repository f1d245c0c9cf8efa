package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Signup(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
	Resend(ctx context.Context, args []string) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context, args []string) error
	Analyze(ctx context.Context, save bool) error
	Dashboard(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	DeleteAccount(ctx context.Context) error
	Dismiss(ctx context.Context) error
	Home(ctx context.Context) error
	Status(ctx context.Context) error
	Ping(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: analyze, signup, verify <email> <code>, resend <email>, login, ping, exit"
	helpLoggedIn  = "Available commands: analyze, save, (d)ashboard, (l)ist, show <id>, delete <id>, export <id>, " +
		"clear, dismiss, whoami, profile [refresh], delete-account, status, home, ping, logout, exit"
)

// runREPL reads a line from reader, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on EOF or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn).
//
// Errors returned by command handlers come from reading input; they are
// reported and the loop continues, except for EOF, which ends it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ats %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "signup", "register":
			err = a.Signup(ctx)
		case "verify":
			err = a.Verify(ctx, args)
		case "resend":
			err = a.Resend(ctx, args)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.Whoami(ctx)
		case "profile":
			err = a.Profile(ctx, args)
		case "analyze":
			err = a.Analyze(ctx, false)
		case "save":
			err = a.Analyze(ctx, true)
		case "d", "dashboard":
			err = a.Dashboard(ctx)
		case "l", "list":
			err = a.List(ctx)
		case "show":
			err = a.Show(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)
		case "clear":
			err = a.Clear(ctx)
		case "export":
			err = a.Export(ctx, args)
		case "delete-account":
			err = a.DeleteAccount(ctx)
		case "dismiss":
			err = a.Dismiss(ctx)
		case "home":
			err = a.Home(ctx)
		case "status":
			err = a.Status(ctx)
		case "ping":
			err = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
