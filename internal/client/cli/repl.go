package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	prompt() string
	report(err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Feed(ctx context.Context, args []string) error
	Post(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error

	Profile(ctx context.Context) error
	Bio(ctx context.Context) error
	Avatar(ctx context.Context, args []string) error
	Whoami(ctx context.Context) error
	Refresh(ctx context.Context) error
}

const (
	guestHelp = "Available commands: login, register, help, exit"
	userHelp  = "Available commands: feed [page], post, edit <id>, delete <id>, like <id>, " +
		"comments <id>, comment <id>, profile, bio, avatar <file>, whoami, refresh, logout, help, exit"
)

var usages = map[string]string{
	"edit":     "Usage: edit <id>",
	"delete":   "Usage: delete <id>",
	"like":     "Usage: like <id>",
	"comments": "Usage: comments <id>",
	"comment":  "Usage: comment <id>",
	"avatar":   "Usage: avatar <image file>",
}

// runREPL starts the read–eval–print loop of the minired CLI.
//
// It reads a line from rl, parses the first token as the command, and
// dispatches to methods on 'a'. The prompt reflects the session on every
// turn. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - login, register, help, exit | quit
//
//	Logged in:
//	  - feed [page]       show the feed
//	  - post              publish a post
//	  - edit <id>         edit own post
//	  - delete <id>       delete own post
//	  - like <id>         like / unlike
//	  - comments <id>     show comments
//	  - comment <id>      add a comment
//	  - profile, bio, avatar <file>, whoami, refresh, logout
//	  - help, exit | quit
//
// Errors returned by command handlers are reported through a.report and
// never stop the loop.
func runREPL(ctx context.Context, a execIface, rl LineReader, out io.Writer) {
	for {
		rl.SetPrompt(a.prompt())
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Fprintln(out, "Use 'exit' or 'quit' to leave.")
				continue
			}
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(out, "Bye!")
			return
		}

		err = dispatch(ctx, a, cmd, args, out)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(out, usages[cmd])
			continue
		}
		a.report(err)
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string, out io.Writer) error {
	if cmd == "help" {
		if a.isLoggedIn() {
			fmt.Fprintln(out, userHelp)
		} else {
			fmt.Fprintln(out, guestHelp)
		}
		return nil
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "login":
			return a.Login(ctx)
		case "register":
			return a.Register(ctx)
		case "feed", "post", "edit", "delete", "like", "comments", "comment",
			"profile", "bio", "avatar", "whoami", "refresh", "logout":
			fmt.Fprintln(out, "Please log in first (type 'login' or 'register').")
			return nil
		}
		fmt.Fprintln(out, "Unknown command:", cmd)
		return nil
	}

	switch cmd {
	case "feed":
		return a.Feed(ctx, args)
	case "post":
		return a.Post(ctx)
	case "edit":
		return a.Edit(ctx, args)
	case "delete":
		return a.Delete(ctx, args)
	case "like":
		return a.Like(ctx, args)
	case "comments":
		return a.Comments(ctx, args)
	case "comment":
		return a.Comment(ctx, args)
	case "profile":
		return a.Profile(ctx)
	case "bio":
		return a.Bio(ctx)
	case "avatar":
		return a.Avatar(ctx, args)
	case "whoami":
		return a.Whoami(ctx)
	case "refresh":
		return a.Refresh(ctx)
	case "logout":
		return a.Logout(ctx)
	case "login", "register":
		fmt.Fprintln(out, "Already logged in. Use 'logout' first.")
		return nil
	default:
		fmt.Fprintln(out, "Unknown command:", cmd)
		return nil
	}
}
