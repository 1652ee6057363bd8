package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/amp-labs/automaat/automaton"
	"github.com/amp-labs/automaat/cli"
	"github.com/amp-labs/automaat/logger"
	"github.com/amp-labs/automaat/regex"
	"github.com/amp-labs/automaat/sortable"
	"github.com/amp-labs/automaat/visualizer"
)

const usage = `automaat - finite automata and regular expression trees.

Usage:
  automaat <command> [options] [arguments]

Commands:
  check        report whether an automaton is a DFA
  accept       run words through an automaton
  print        list the transitions of an automaton
  graph        draw an automaton as DOT, Mermaid, or an image
  interactive  test words typed at a prompt
  language     enumerate the bounded language of an expression

Run 'automaat <command> -h' for the options of a command.
`

type prompter interface {
	PromptWord(label string, alphabet []rune) (string, error)
	PromptConfirm(label string) (bool, error)
}

type renderer interface {
	Render(ctx context.Context, dot, format, path string) error
}

type app struct {
	out      io.Writer
	prompter prompter
	renderer renderer
}

type command func(ctx context.Context, args []string) error

func (a *app) commands() map[string]command {
	return map[string]command{
		"check":       a.check,
		"accept":      a.accept,
		"print":       a.print,
		"graph":       a.graph,
		"interactive": a.interactive,
		"language":    a.language,
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 || slices.Contains([]string{"-h", "-help", "--help", "help"}, args[0]) {
		fmt.Fprint(a.out, usage)

		return nil
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q\n\n%s", args[0], usage)}
	}

	ctx = logger.With(ctx, "command", args[0])

	return cmd(ctx, args[1:])
}

// flags builds a subcommand flag set that prints to the app output.
func (a *app) flags(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() {
		fmt.Fprintf(a.out, "Usage:\n  automaat %s %s\n\nOptions:\n", name, args)
		fs.PrintDefaults()
	}

	return fs
}

// parse turns -h into a clean exit and bad flags into exit code 2.
func parse(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}

		return false, &ExitError{Code: 2, Message: err.Error()}
	}

	return false, nil
}

func loadAutomaton(path string) (*automaton.Definition, *automaton.Automaton[sortable.String], error) {
	if path == "" {
		return nil, nil, &ExitError{Code: 2, Message: "-f is required"}
	}

	def, err := automaton.LoadDefinition(path)
	if err != nil {
		return nil, nil, err
	}

	a, err := def.Build()
	if err != nil {
		return nil, nil, err
	}

	return def, a, nil
}

func kind(a *automaton.Automaton[sortable.String]) string {
	if a.IsDfa() {
		return "dfa"
	}

	return "nfa"
}

func verdict(ok bool) string {
	if ok {
		return "accept"
	}

	return "reject"
}

func (a *app) check(_ context.Context, args []string) error {
	fs := a.flags("check", "-f def.yaml")
	file := fs.String("f", "", "automaton definition file")

	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	def, m, err := loadAutomaton(*file)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s\n", def.Name, kind(m))

	return nil
}

func (a *app) accept(ctx context.Context, args []string) error {
	fs := a.flags("accept", "-f def.yaml [-strict] WORD...")
	file := fs.String("f", "", "automaton definition file")
	strict := fs.Bool("strict", false, "exit with status 1 if any word is rejected")

	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	_, m, err := loadAutomaton(*file)
	if err != nil {
		return err
	}

	rejected := 0

	for _, word := range fs.Args() {
		ok := m.AcceptContext(ctx, word)
		if !ok {
			rejected++
		}

		fmt.Fprintf(a.out, "%q\t%s\n", word, verdict(ok))
	}

	if *strict && rejected > 0 {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d words rejected", rejected, fs.NArg())}
	}

	return nil
}

func (a *app) print(_ context.Context, args []string) error {
	fs := a.flags("print", "-f def.yaml")
	file := fs.String("f", "", "automaton definition file")

	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	_, m, err := loadAutomaton(*file)
	if err != nil {
		return err
	}

	return m.PrintTransitions(a.out)
}

func (a *app) graph(ctx context.Context, args []string) error {
	fs := a.flags("graph", "-f def.yaml [-mermaid] [-o out -T format]")
	file := fs.String("f", "", "automaton definition file")
	mermaid := fs.Bool("mermaid", false, "emit a Mermaid state diagram instead of DOT")
	output := fs.String("o", "", "render an image to this path with Graphviz")
	format := fs.String("T", "jpg", "image format: "+strings.Join(visualizer.Formats, ", "))
	direction := fs.String("dir", "LR", "diagram direction: LR or TD")
	highlight := fs.String("highlight", "", "comma separated states to emphasize")
	yes := fs.Bool("y", false, "overwrite the output file without asking")

	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	if *mermaid && *output != "" {
		return &ExitError{Code: 2, Message: "-o renders DOT and cannot be combined with -mermaid"}
	}

	def, m, err := loadAutomaton(*file)
	if err != nil {
		return err
	}

	opts := visualizer.DefaultOptions().WithName(def.Name).WithDirection(*direction)
	if *highlight != "" {
		opts = opts.WithHighlight(strings.Split(*highlight, ",")...)
	}

	if *mermaid {
		text, err := visualizer.GenerateMermaidWithOptions(m, opts)
		if err != nil {
			return err
		}

		fmt.Fprint(a.out, text)

		return nil
	}

	dot, err := visualizer.GenerateDOTWithOptions(m, opts)
	if err != nil {
		return err
	}

	if *output == "" {
		fmt.Fprint(a.out, dot)

		return nil
	}

	if _, err := os.Stat(*output); err == nil && !*yes {
		ok, err := a.prompter.PromptConfirm(fmt.Sprintf("Overwrite %s", *output))
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}
	}

	if err := a.renderer.Render(ctx, dot, *format, *output); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "wrote %s\n", *output)

	return nil
}

func (a *app) interactive(ctx context.Context, args []string) error {
	fs := a.flags("interactive", "-f def.yaml")
	file := fs.String("f", "", "automaton definition file")

	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	def, m, err := loadAutomaton(*file)
	if err != nil {
		return err
	}

	summary := fmt.Sprintf("%s\nalphabet: %s\n%s, %d states", def.Name, string(m.GetAlphabet()), kind(m), len(m.States()))
	fmt.Fprint(a.out, cli.BannerAutoWidth(ctx, summary, cli.AlignCenter))

	for {
		word, err := a.prompter.PromptWord("word", m.GetAlphabet())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		fmt.Fprintf(a.out, "%q\t%s\n", word, verdict(m.AcceptContext(ctx, word)))
	}
}

func (a *app) language(ctx context.Context, args []string) error {
	fs := a.flags("language", "-f exprs.yaml [-steps N] [NAME]")
	file := fs.String("f", "", "expression definition file")
	steps := fs.Int("steps", 3, "derivation depth bound") //nolint:mnd

	if done, err := parse(fs, args); done || err != nil {
		return err
	}

	if *file == "" {
		return &ExitError{Code: 2, Message: "-f is required"}
	}

	defs, err := regex.LoadDefinitions(*file)
	if err != nil {
		return err
	}

	if fs.NArg() == 0 {
		for _, name := range defs.Names() {
			fmt.Fprintln(a.out, name)
		}

		return nil
	}

	e, err := defs.Build(fs.Arg(0))
	if err != nil {
		return err
	}

	logger.Get(ctx).Debug("enumerating language", "expression", e.String(), "steps", *steps)

	for _, word := range e.LanguageContext(ctx, *steps) {
		if word == "" {
			word = "ε"
		}

		fmt.Fprintln(a.out, word)
	}

	return nil
}
