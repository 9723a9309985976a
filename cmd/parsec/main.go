package main

import "github.com/alecthomas/kong"

var version = "dev"

// CLI is the command-line grammar of parsec.
type CLI struct {
	Version kong.VersionFlag
	Quoted  quotedCmd  `cmd:"" help:"Parse a delimited string and print its raw content."`
	Literal literalCmd `cmd:"" help:"Match a literal prefix and print it with the remaining input."`
	Idents  identsCmd  `cmd:"" help:"Parse a comma separated list of identifiers."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Description(`Exercise parsec combinators from the command line.`),
		kong.Vars{"version": version},
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
