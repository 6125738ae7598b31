package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/peterh/liner"

	"github.com/benfleis/lisk"
	"github.com/benfleis/lisk/internal/repl"
)

const (
	appName     = "lisk"
	historyFile = ".lisk_history"
	historyEnv  = "LISK_HISTORY"
)

var banner = fmt.Sprintf("lisk %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.", lisk.Version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl(nil))
	}

	cmd := os.Args[1]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "eval":
		os.Exit(cmdEval(os.Args[2:]))
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "version":
		fmt.Println(lisk.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`lisk %s

Usage:
  %s repl [-no-color] [-history path]    Start the REPL (default).
  %s eval <expr> [expr ...]              Evaluate each expression and print its value.
  %s run <file>                          Evaluate every form in a file.
  %s fmt                                 Read forms from stdin, print them canonically.
  %s version                             Print the version.

`, lisk.Version, appName, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	noColor := fs.Bool("no-color", false, "disable ANSI colours")
	histFlag := fs.String("history", "", "history file (default $"+historyEnv+" or ~/"+historyFile+")")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath(*histFlag)
	loadHistory(ln, hist)
	defer saveHistory(ln, hist)
	defer exitOnHangup(ln)()

	fmt.Println(banner)
	ip := lisk.NewInterpreter()
	opts := repl.Options{Color: !*noColor}
	if err := repl.Run(ln, os.Stdout, os.Stderr, ip, opts); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	fmt.Println()
	return 0
}

// loadHistory and saveHistory are best effort: a missing or unwritable
// history file never stops the REPL.
func loadHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Open(path); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
}

func saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}

// exitOnHangup restores the terminal and exits when the session is killed.
// Ctrl-C is left to liner, which aborts the current prompt. The returned
// func stops listening.
func exitOnHangup(ln *liner.State) func() {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		if _, ok := <-sigc; ok {
			ln.Close()
			os.Exit(130)
		}
	}()
	return func() {
		signal.Stop(sigc)
		close(sigc)
	}
}

func historyPath(flagVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if p := os.Getenv(historyEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// -----------------------------------------------------------------------------
// eval
// -----------------------------------------------------------------------------

func cmdEval(args []string) int {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s eval <expr> [expr ...]\n", appName)
		return 2
	}
	ip := lisk.NewInterpreter()
	for _, src := range args {
		v, err := ip.EvalPersistentSource(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		fmt.Println(lisk.ToSource(v))
	}
	return 0
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file>\n", appName)
		return 2
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}
	// A file runs only if all of it parses.
	if _, err := lisk.ParseAll(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, lisk.WrapErrorWithName(err, args[0], string(src)).Error())
		return 1
	}
	ip := lisk.NewInterpreter()
	if _, err := ip.EvalAll(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, lisk.WrapErrorWithName(err, args[0], string(src)).Error())
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func cmdFmt(args []string) int {
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "usage: %s fmt < input\n", appName)
		return 2
	}
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	out, err := lisk.Pretty(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	fmt.Print(out)
	return 0
}
