package trie

import (
	"errors"
	"unicode/utf8"
)

// DefaultAlphabetSize covers the letters 'a' to 'z'.
const DefaultAlphabetSize = 26

// Trie owns the root node and the alphabet size shared by every node.
// It has no internal locking: callers that insert from one goroutine while
// others read must serialize access themselves.
type Trie struct {
	root         *Node
	alphabetSize int
}

// New creates an empty trie whose nodes branch on the letters
// 'a' to 'a'+alphabetSize-1.
func New(alphabetSize int) *Trie {
	if alphabetSize <= 0 {
		panic("[BUG] New: alphabet size must be positive")
	}
	return &Trie{
		root:         newNode(alphabetSize),
		alphabetSize: alphabetSize,
	}
}

// Root returns the root node, which exists for the whole life of the trie.
func (t *Trie) Root() *Node {
	return t.root
}

func (t *Trie) AlphabetSize() int {
	return t.alphabetSize
}

// Insert stores word, creating the missing nodes along its path.
//
// Inserting a word twice is a no-op, and the empty word marks the root itself.
// On the first character outside the alphabet it returns an *InvalidCharacterError
// (matching ErrInvalidCharacter); the nodes already created for the valid prefix
// stay in the trie and nothing is marked as a word.
func (t *Trie) Insert(word string) error {
	current := t.root
	for offset, letter := range word {
		if !current.HasChild(letter) {
			if err := current.SetChild(letter, newNode(t.alphabetSize)); err != nil {
				var invalid *InvalidCharacterError
				if errors.As(err, &invalid) {
					invalid.Offset = offset
				}
				return err
			}
		}
		current = current.GetChild(letter)
	}
	current.SetTerminalWord(true)
	return nil
}

// InsertAll inserts words in order and stops at the first failure.
func (t *Trie) InsertAll(words ...string) error {
	for _, word := range words {
		if err := t.Insert(word); err != nil {
			return err
		}
	}
	return nil
}

// ForEachWord calls f with every stored word in ascending lexicographic order.
// Children are visited in letter order, so a depth-first walk yields the words
// already sorted: a word is always visited before the longer words it prefixes.
func (t *Trie) ForEachWord(f func(word string)) {
	t.root.forEachWord(nil, f)
}

// is a helper for ForEachWord to implement the recursive walk,
// depth is bounded by the longest stored word.
func (n *Node) forEachWord(prefix []byte, f func(word string)) {
	if n.terminal {
		f(string(prefix))
	}
	n.ForEachChild(func(letter rune, child *Node) {
		child.forEachWord(utf8.AppendRune(prefix, letter), f)
	})
}

// CollectAllWords returns every stored word once, sorted ascending.
// It never modifies the trie.
func (t *Trie) CollectAllWords() []string {
	words := []string{}
	t.ForEachWord(func(word string) {
		words = append(words, word)
	})
	return words
}

// Len returns the number of distinct stored words.
func (t *Trie) Len() int {
	count := 0
	t.ForEachWord(func(string) {
		count++
	})
	return count
}

// NodeCount returns the number of nodes, root included.
func (t *Trie) NodeCount() int {
	count := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		count++
		n.ForEachChild(func(_ rune, child *Node) {
			walk(child)
		})
	}
	walk(t.root)
	return count
}
