// Package repl is the interactive read-eval-print loop around the lisk core.
//
// The loop reads a line, keeps reading continuation lines while the input is
// an unterminated expression, evaluates every form in the interpreter's
// Global scope and prints each result. A failing line is reported and the
// loop moves on; bindings made earlier (including by earlier forms on the
// failing line) stay as they are.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/benfleis/lisk"
)

const (
	PromptMain = "lisk> "
	PromptCont = "...   "
)

const helpText = `REPL commands:
  :env     List global bindings
  :help    Show this help
  :quit    Exit the REPL`

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// historian is the optional part of a Prompter that records history.
type historian interface {
	AppendHistory(item string)
}

// Options tunes the loop. The zero value uses the default prompts without
// colour.
type Options struct {
	Prompt   string
	Continue string
	Color    bool
}

// Run drives the loop until the prompter reports io.EOF or the user types
// :quit. Errors from the prompter other than io.EOF and an aborted prompt
// end the loop and are returned.
func Run(p Prompter, out, errOut io.Writer, ip *lisk.Interpreter, opts Options) error {
	if opts.Prompt == "" {
		opts.Prompt = PromptMain
	}
	if opts.Continue == "" {
		opts.Continue = PromptCont
	}
	for {
		src, ok, err := readInput(p, opts)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		code := strings.TrimSpace(src)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			if quit := command(out, errOut, ip, code, opts); quit {
				return nil
			}
			continue
		}

		vals, err := ip.EvalAll(src)
		for _, v := range vals {
			fmt.Fprintln(out, paint(opts, colorBlue, lisk.ToSource(v)))
		}
		if err != nil {
			fmt.Fprintln(errOut, paint(opts, colorRed, err.Error()))
			continue
		}
		if h, ok := p.(historian); ok {
			h.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		}
	}
}

// readInput collects lines until they parse or fail for a reason other than
// running out of input. The bool is false at end of input.
func readInput(p Prompter, opts Options) (string, bool, error) {
	var b strings.Builder
	for {
		prompt := opts.Prompt
		if b.Len() > 0 {
			prompt = opts.Continue
		}
		line, err := p.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true, nil
		}
		if err != nil {
			return "", false, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := lisk.ParseAll(src); perr != nil && lisk.IsIncomplete(perr) {
			continue
		}
		return src, true, nil
	}
}

func command(out, errOut io.Writer, ip *lisk.Interpreter, code string, opts Options) (quit bool) {
	switch strings.ToLower(code) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(out, helpText)
	case ":env":
		for _, name := range ip.Global.Names() {
			v, _ := ip.Global.Lookup(name)
			fmt.Fprintf(out, "%s => %s\n", name, paint(opts, colorBlue, lisk.ToSource(v)))
		}
	default:
		fmt.Fprintln(errOut, paint(opts, colorRed, "unknown command. Type :help for a list."))
	}
	return false
}

const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
	colorBlue  = "\x1b[94m"
)

func paint(opts Options, color, s string) string {
	if !opts.Color {
		return s
	}
	return color + s + colorReset
}
