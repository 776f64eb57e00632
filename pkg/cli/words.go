package cli

import (
	"errors"
	"fmt"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// DemoWords is inserted when no word source is given.
var DemoWords = []string{"iphone", "samsung", "samsang", "oneplus", "xiaomi", "huawei", "sony", "soney", "motorola", "moto"}

// WordsCmd builds a trie from the given words and prints it.
type WordsCmd struct {
	Words        []string `arg:"" optional:"" help:"Words to insert"`
	Files        []string `name:"file" short:"f" type:"existingfile" help:"Read words from a .txt (one per line), .json or .yaml file; repeatable"`
	AlphabetSize int      `help:"Number of letters starting at 'a' the trie accepts" default:"26"`
	Format       string   `help:"Output format (${enum})" enum:"lines,json,yaml" default:"lines"`
	SkipInvalid  bool     `help:"Log and skip words with characters outside the alphabet instead of failing"`
	Stats        bool     `help:"Log the number of stored words and nodes"`
}

// Run executes the words command.
func (cmd *WordsCmd) Run(ctx *Context) error {
	if cmd.AlphabetSize <= 0 {
		return fmt.Errorf("alphabet size must be positive, got %d", cmd.AlphabetSize)
	}
	writer, err := newWriter(cmd.Format)
	if err != nil {
		return err
	}

	words, err := cmd.collectWords(ctx)
	if err != nil {
		return err
	}

	t := trie.New(cmd.AlphabetSize)
	if err := insertWords(ctx, t, words, cmd.SkipInvalid); err != nil {
		return err
	}

	if cmd.Stats {
		ctx.Log.Info("trie built", "words", t.Len(), "nodes", t.NodeCount(), "alphabet", t.AlphabetSize())
	}
	return writer.Write(ctx.Out, t)
}

// collectWords gathers the positional words followed by the words of each file,
// or the demo list when neither is given.
func (cmd *WordsCmd) collectWords(ctx *Context) ([]string, error) {
	words := append([]string{}, cmd.Words...)
	for _, file := range cmd.Files {
		fileWords, err := readWords(file)
		if err != nil {
			return nil, err
		}
		ctx.Log.Debug("loaded word file", "file", file, "words", len(fileWords))
		words = append(words, fileWords...)
	}

	if len(cmd.Words) == 0 && len(cmd.Files) == 0 {
		ctx.Log.Debug("no word source given, using demo words")
		return DemoWords, nil
	}
	return words, nil
}

// insertWords inserts words in order. A rejected word aborts unless skipInvalid
// is set; either way the nodes of its valid prefix are already in the trie.
func insertWords(ctx *Context, t *trie.Trie, words []string, skipInvalid bool) error {
	for _, word := range words {
		err := t.Insert(word)
		switch {
		case err == nil:
			ctx.Log.Trace("inserted", "word", word)
		case skipInvalid && errors.Is(err, trie.ErrInvalidCharacter):
			ctx.Log.Warn("skipping word", "word", word, "reason", err.Error())
		default:
			return fmt.Errorf("insert %q: %w", word, err)
		}
	}
	return nil
}
