package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
	"gopkg.in/yaml.v3"
)

// Writer prints the words of a trie in sorted order.
type Writer interface {
	Write(out io.Writer, t *trie.Trie) error
}

// newWriter returns the writer for a --format value.
func newWriter(format string) (Writer, error) {
	switch format {
	case "", "lines":
		return LinesWriter{}, nil
	case "json":
		return JsonWriter{}, nil
	case "yaml":
		return YamlWriter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// LinesWriter prints one word per line.
type LinesWriter struct{}

func (LinesWriter) Write(out io.Writer, t *trie.Trie) error {
	var err error
	t.ForEachWord(func(word string) {
		if err == nil {
			_, err = fmt.Fprintln(out, word)
		}
	})
	return err
}

// JsonWriter prints the words as a single JSON array.
type JsonWriter struct{}

func (JsonWriter) Write(out io.Writer, t *trie.Trie) error {
	return json.NewEncoder(out).Encode(t.CollectAllWords())
}

// YamlWriter prints the words as a YAML sequence.
type YamlWriter struct{}

func (YamlWriter) Write(out io.Writer, t *trie.Trie) error {
	encoder := yaml.NewEncoder(out)
	if err := encoder.Encode(t.CollectAllWords()); err != nil {
		return err
	}
	return encoder.Close()
}
