package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"regexnfa/internal/automaton"
	"regexnfa/internal/interpreter"
	"regexnfa/internal/regex"
)

var cli struct {
	Verbose bool `help:"Log pipeline details to stderr." env:"REGEXNFA_VERBOSE"`

	Tokenize tokenizeCmd `cmd:"" help:"Print the tokens of a regular expression."`
	Parse    parseCmd    `cmd:"" help:"Print the syntax tree of a regular expression."`
	Compile  compileCmd  `cmd:"" help:"Compile a regular expression into an NFA."`
	Match    matchCmd    `cmd:"" help:"Check inputs against a regular expression."`
	Run      runCmd      `cmd:"" help:"Execute session scripts."`
	Grammar  grammarCmd  `cmd:"" help:"Print the regular expression grammar."`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("regexnfa: ")
	kctx := kong.Parse(&cli,
		kong.Description(`Compile restricted regular expressions to NFAs and simulate them.`),
	)
	if !cli.Verbose {
		log.SetOutput(io.Discard)
	}
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}

type tokenizeCmd struct {
	Regex string `arg:"" help:"Regular expression."`
}

func (c *tokenizeCmd) Run() error {
	tokens, err := regex.Tokenize(c.Regex)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Printf("%s\t%s\n", tok.Pos, tok)
	}
	return nil
}

type parseCmd struct {
	Regex string `arg:"" help:"Regular expression."`
}

func (c *parseCmd) Run() error {
	ast, err := regex.Parse(c.Regex)
	if err != nil {
		return err
	}
	fmt.Println(ast)
	return nil
}

type compileCmd struct {
	Regex  string `arg:"" help:"Regular expression."`
	Format string `help:"Output format (${enum})." enum:"summary,dot,repr" default:"summary" env:"REGEXNFA_FORMAT"`
}

func (c *compileCmd) Run() error {
	n, err := compile(c.Regex)
	if err != nil {
		return err
	}
	switch c.Format {
	case "dot":
		return automaton.WriteDOT(os.Stdout, n)
	case "repr":
		repr.Println(struct {
			Start       automaton.State
			Accept      []automaton.State
			States      []automaton.State
			Transitions []automaton.Transition
		}{n.Start(), n.AcceptStates(), n.States(), n.Transitions()}, repr.Indent("  "))
	default:
		fmt.Println(n)
		for _, t := range n.Transitions() {
			fmt.Printf("  %s\n", t)
		}
	}
	return nil
}

type matchCmd struct {
	Regex  string   `arg:"" help:"Regular expression."`
	Inputs []string `arg:"" optional:"" help:"Inputs to simulate."`
	Strict bool     `help:"Exit with an error if any input is rejected."`
}

func (c *matchCmd) Run() error {
	n, err := compile(c.Regex)
	if err != nil {
		return err
	}
	rejected := 0
	for _, in := range c.Inputs {
		verdict := "accepted"
		if !n.Accepts(in) {
			verdict = "rejected"
			rejected++
		}
		fmt.Printf("%q: %s\n", in, verdict)
	}
	if c.Strict && rejected > 0 {
		return fmt.Errorf("%d of %d inputs rejected", rejected, len(c.Inputs))
	}
	return nil
}

type runCmd struct {
	Scripts []string `arg:"" type:"existingfile" help:"Session scripts to execute."`
}

func (c *runCmd) Run() error {
	for _, path := range c.Scripts {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		script, err := interpreter.ParseFile(path, string(data))
		if err != nil {
			return err
		}
		log.Printf("%s: %d statements", path, len(script.Statements))
		if err := script.Exec(interpreter.NewSession(os.Stdout)); err != nil {
			return err
		}
	}
	return nil
}

type grammarCmd struct{}

func (grammarCmd) Run() error {
	fmt.Print(regex.Grammar)
	return nil
}

func compile(pattern string) (*automaton.NFA, error) {
	ast, err := regex.Parse(pattern)
	if err != nil {
		return nil, err
	}
	log.Printf("parsed %q: %s", pattern, ast)
	n := automaton.Compile(ast)
	log.Printf("compiled %q: %d states, %d transitions", pattern, len(n.States()), n.NumTransitions())
	return n, nil
}
