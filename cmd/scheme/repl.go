// Interactive session: liner-backed line editing with history, fuzzy tab
// completion over visible symbols, and multi-line input driven by the
// reader itself — when an expression is syntactically incomplete (an open
// list, a dangling quote) the REPL prompts for continuation lines instead
// of reporting the error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/sahilm/fuzzy"

	"github.com/JouleJ/scheme"
)

var banner = fmt.Sprintf("Scheme %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", scheme.Version)

func repl(cfg *config) error {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(cfg.History); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()
	if f, err := os.Open(cfg.History); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	ip := scheme.NewInterpreter()
	ln.SetCompleter(completer(ip))

	for {
		code, ok := readExpression(ln, ip, cfg.Prompt, cfg.ContPrompt)
		if !ok {
			fmt.Println()
			return nil
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		out, err := ip.Run(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, cfg.red(scheme.WrapErrorWithSource(err, code).Error()))
			continue
		}
		fmt.Println(cfg.blue(out))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readExpression collects lines until they form a syntactically complete
// expression (probing with Run's reader via IsIncomplete). Returns false
// on EOF.
func readExpression(ln *liner.State, ip *scheme.Interpreter, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil { // Ctrl+C: drop the partial input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		code := b.String()
		if strings.TrimSpace(code) == "" {
			return code, true
		}
		if _, err := probe(code); scheme.IsIncomplete(err) {
			continue
		}
		return code, true
	}
}

// probe parses (without evaluating) to decide whether more input is needed.
func probe(code string) (v scheme.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	return scheme.Read(scheme.NewTokenizer(code)), nil
}

// completer completes the word under the cursor against every visible
// symbol, fuzzy-ranked.
func completer(ip *scheme.Interpreter) liner.Completer {
	return func(line string) []string {
		start := strings.LastIndexAny(line, " \t()'") + 1
		word := line[start:]
		if word == "" {
			return nil
		}
		var out []string
		for _, m := range fuzzy.Find(word, ip.Symbols()) {
			out = append(out, line[:start]+m.Str)
		}
		return out
	}
}
