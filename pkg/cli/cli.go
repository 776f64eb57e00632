package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/wordtrie/pkg/logger"
)

// Context carries what every command needs at run time.
type Context struct {
	Log logger.Logger
	Out io.Writer // enumerated words go here and nowhere else
}

// CLI is the root of the command tree.
type CLI struct {
	LogLevel string          `help:"Log level (${enum})" enum:"trace,debug,info,warn,error" default:"warn"`
	LogFile  string          `help:"Also write JSON logs to this file, rotated by size" type:"path"`
	Config   kong.ConfigFlag `help:"YAML file providing defaults for any flag"`

	Words WordsCmd `cmd:"" default:"withargs" help:"Insert words into a trie and print them sorted"`
}

// Options returns the kong options the binary parses with.
func Options() []kong.Option {
	return []kong.Option{
		kong.Name("wordtrie"),
		kong.Description("Store lowercase words in a prefix tree and list them in sorted order."),
		kong.UsageOnError(),
		kong.Configuration(YAML),
	}
}
