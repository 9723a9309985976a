package main

import (
	"io"
	"os"
	"text/scanner"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/parsec"
	"github.com/alecthomas/parsec/lexer"
)

type quotedCmd struct {
	Config string `short:"c" type:"existingfile" help:"TOML or YAML file with open, close and escape settings."`
	Open   string `help:"Opening delimiter."`
	Close  string `help:"Closing delimiter."`
	Escape string `help:"Escape character."`
	Trace  bool   `help:"Trace the parse to stderr."`
	Input  string `arg:"" help:"Input to parse."`
}

func (c *quotedCmd) Help() string {
	return `
Parses INPUT as a single delimited string, by default double quoted with
backslash escapes, and prints the content between the delimiters. Escape
sequences are printed as they appear in the input.
`
}

func (c *quotedCmd) Run(ctx *kong.Context) error {
	config := &delimiterConfig{}
	if c.Config != "" {
		var err error
		config, err = loadConfig(c.Config)
		if err != nil {
			return err
		}
	}
	config.merge(delimiterConfig{Open: c.Open, Close: c.Close, Escape: c.Escape})
	options, err := config.options()
	if err != nil {
		return err
	}
	p := parsec.Delimited(options...)
	if c.Trace {
		p = parsec.Trace(ctx.Stderr, "delimited", p)
	}
	value, err := parsec.ParseString(p, "", c.Input)
	if err != nil {
		return err
	}
	repr.New(ctx.Stdout).Println(value)
	return nil
}

type literalCmd struct {
	Literal string `arg:"" help:"Literal to match."`
	Input   string `arg:"" help:"Input to match against."`
}

func (c *literalCmd) Run(ctx *kong.Context) error {
	rest := parsec.Map(parsec.ZeroOrMore(parsec.Any[rune]()), func(r []rune) string { return string(r) })
	value, err := parsec.ParseString(parsec.ThenPair(parsec.String(c.Literal), rest), "", c.Input)
	if err != nil {
		return err
	}
	repr.New(ctx.Stdout).Println(value.Left, value.Right)
	return nil
}

type identsCmd struct {
	File string `arg:"" default:"-" help:"File to parse (read from stdin if omitted)."`
}

func (c *identsCmd) Run(ctx *kong.Context) error {
	var r io.Reader = os.Stdin
	filename := "<stdin>"
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
		filename = c.File
	}
	idents := parsec.SepBy1(parsec.Text(parsec.Type(scanner.Ident)), parsec.Value(","))
	value, err := parsec.ParseLexer(idents, lexer.Lex(filename, r))
	if err != nil {
		return err
	}
	repr.New(ctx.Stdout).Println(value)
	return nil
}
